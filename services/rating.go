package services

import (
	"sync"

	"github.com/edasenturkk/term-project-backend/cache"
	"github.com/edasenturkk/term-project-backend/models"
	"github.com/edasenturkk/term-project-backend/monitoring"
	"github.com/edasenturkk/term-project-backend/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PlaytimeEntry is the slice of the ledger the rating formula needs.
type PlaytimeEntry struct {
	UserID  uint
	Minutes int
}

// WeightedRating computes a game's public rating as the playtime-weighted
// average of per-user ratings: sum(minutes_u * rating_u) / sum(minutes_u)
// over every user who has played the game. A player without a positive
// rating still counts in the denominator. Zero total playtime means 0.
// Ratings by users with no ledger entry contribute nothing; that happens
// after their playtime was removed and is not an error.
func WeightedRating(playtimes []PlaytimeEntry, ratings map[uint]int) float64 {
	var total, weighted int64
	for _, pt := range playtimes {
		if pt.Minutes <= 0 {
			continue
		}
		total += int64(pt.Minutes)
		if r, ok := ratings[pt.UserID]; ok && r > 0 {
			weighted += int64(pt.Minutes) * int64(r)
		}
	}
	if total == 0 {
		return 0
	}
	return float64(weighted) / float64(total)
}

// RatingAggregator recomputes game ratings off the request path. Play and
// review handlers enqueue a game id and respond immediately; a single
// worker goroutine drains the queue. The rating is therefore briefly
// stale after a write, and a failed recompute is only logged: the next
// play or review event re-triggers it.
type RatingAggregator struct {
	db    *gorm.DB
	queue chan uint
	wg    sync.WaitGroup
}

func NewRatingAggregator(db *gorm.DB) *RatingAggregator {
	return &RatingAggregator{
		db:    db,
		queue: make(chan uint, 256),
	}
}

// Start launches the worker. Call once.
func (a *RatingAggregator) Start() {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		for gameID := range a.queue {
			if err := a.Recompute(gameID); err != nil {
				monitoring.AggregationFailures.Inc()
				utils.Log.WithFields(logrus.Fields{
					"game_id": gameID,
					"error":   err.Error(),
				}).Error("Rating recompute failed")
			}
		}
	}()
}

// Stop drains the queue and waits for the worker to exit.
func (a *RatingAggregator) Stop() {
	close(a.queue)
	a.wg.Wait()
}

// Enqueue hands a game to the worker without blocking the caller. A full
// queue drops the request; the aggregate self-corrects on the next event.
func (a *RatingAggregator) Enqueue(gameID uint) {
	select {
	case a.queue <- gameID:
	default:
		utils.Log.WithField("game_id", gameID).Warn("Rating queue full, recompute dropped")
	}
}

// Recompute loads the ledger and review entries for a game, applies
// WeightedRating and persists the result. Idempotent with unchanged
// inputs.
func (a *RatingAggregator) Recompute(gameID uint) error {
	var rows []models.PlayTime
	if err := a.db.Where("game_id = ?", gameID).Find(&rows).Error; err != nil {
		return err
	}

	var reviews []models.Review
	if err := a.db.Where("game_id = ?", gameID).Find(&reviews).Error; err != nil {
		return err
	}

	playtimes := make([]PlaytimeEntry, 0, len(rows))
	for _, row := range rows {
		playtimes = append(playtimes, PlaytimeEntry{UserID: row.UserID, Minutes: row.Minutes})
	}
	ratings := make(map[uint]int)
	for _, rv := range reviews {
		if rv.Rating != nil {
			ratings[rv.UserID] = *rv.Rating
		}
	}

	rating := WeightedRating(playtimes, ratings)
	if err := a.db.Model(&models.Game{}).Where("id = ?", gameID).Update("rating", rating).Error; err != nil {
		return err
	}

	monitoring.RatingRecomputes.Inc()
	cache.InvalidateGame(gameID)
	cache.InvalidateGamesList()
	return nil
}
