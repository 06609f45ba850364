package services

import (
	"errors"

	"github.com/edasenturkk/term-project-backend/cache"
	"github.com/edasenturkk/term-project-backend/models"
	"github.com/edasenturkk/term-project-backend/monitoring"

	"gorm.io/gorm"
)

type PlaytimeService struct {
	db  *gorm.DB
	agg *RatingAggregator
}

func NewPlaytimeService(db *gorm.DB, agg *RatingAggregator) *PlaytimeService {
	return &PlaytimeService{db: db, agg: agg}
}

// RecordPlay appends minutes to the (user, game) ledger entry, creating
// it on first play, and returns the new cumulative total. The rating
// recompute is queued, not awaited.
func (s *PlaytimeService) RecordPlay(userID, gameID uint, minutes int) (int, error) {
	if minutes <= 0 {
		return 0, NewValidationError("time must be a positive number of minutes")
	}

	var game models.Game
	if err := s.db.First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	var entry models.PlayTime
	err := s.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&entry).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = models.PlayTime{UserID: userID, GameID: gameID}
		applyPlay(&entry, minutes)
		if err := s.db.Create(&entry).Error; err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	default:
		applyPlay(&entry, minutes)
		if err := s.db.Save(&entry).Error; err != nil {
			return 0, err
		}
	}

	monitoring.PlaysRecorded.Inc()
	s.agg.Enqueue(gameID)
	cache.InvalidateGame(gameID)

	return entry.Minutes, nil
}

// applyPlay folds one play event into a ledger entry; totals only grow.
func applyPlay(entry *models.PlayTime, minutes int) {
	entry.Minutes += minutes
}

// MinutesFor returns the accumulated minutes for a (user, game) pair,
// zero when the user never played the game.
func (s *PlaytimeService) MinutesFor(userID, gameID uint) (int, error) {
	var entry models.PlayTime
	err := s.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return entry.Minutes, nil
}
