package services

import (
	"sort"
	"time"

	"github.com/edasenturkk/term-project-backend/models"

	"gorm.io/gorm"
)

// Read-only projections joining the playtime ledger with review entries.
// The assembly functions are pure over loaded rows; ProjectionService only
// does the loading.

type UserStats struct {
	GamesPlayed    int     `json:"gamesPlayed"`
	TotalMinutes   int     `json:"totalMinutes"`
	ReviewsWritten int     `json:"reviewsWritten"`
	RatingsGiven   int     `json:"ratingsGiven"`
	AverageRating  float64 `json:"averageRating"`
}

type MostPlayedEntry struct {
	GameID  uint   `json:"gameId"`
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}

type UserComment struct {
	GameID    uint      `json:"gameId"`
	GameName  string    `json:"gameName"`
	Comment   string    `json:"comment"`
	Rating    *int      `json:"rating,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserDashboard struct {
	Stats      UserStats         `json:"stats"`
	MostPlayed []MostPlayedEntry `json:"mostPlayed"`
	Comments   []UserComment     `json:"comments"`
}

type ProfilePage struct {
	User      models.User   `json:"user"`
	Dashboard UserDashboard `json:"dashboard"`
}

// BuildUserStats folds a user's ledger and reviews into totals.
// AverageRating averages only the ratings the user actually gave.
func BuildUserStats(playtimes []models.PlayTime, reviews []models.Review) UserStats {
	stats := UserStats{
		GamesPlayed:    len(playtimes),
		ReviewsWritten: len(reviews),
	}
	for _, pt := range playtimes {
		stats.TotalMinutes += pt.Minutes
	}
	var ratingSum int
	for _, rv := range reviews {
		if rv.Rating != nil {
			stats.RatingsGiven++
			ratingSum += *rv.Rating
		}
	}
	if stats.RatingsGiven > 0 {
		stats.AverageRating = float64(ratingSum) / float64(stats.RatingsGiven)
	}
	return stats
}

// RankMostPlayed orders a user's ledger by minutes, most played first.
// Ties break on game id to keep the order stable.
func RankMostPlayed(playtimes []models.PlayTime, names map[uint]string, limit int) []MostPlayedEntry {
	entries := make([]MostPlayedEntry, 0, len(playtimes))
	for _, pt := range playtimes {
		entries = append(entries, MostPlayedEntry{
			GameID:  pt.GameID,
			Name:    names[pt.GameID],
			Minutes: pt.Minutes,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Minutes != entries[j].Minutes {
			return entries[i].Minutes > entries[j].Minutes
		}
		return entries[i].GameID < entries[j].GameID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// CollectUserComments picks the reviews that carry a comment and joins in
// the game names.
func CollectUserComments(reviews []models.Review, names map[uint]string) []UserComment {
	comments := make([]UserComment, 0, len(reviews))
	for _, rv := range reviews {
		if rv.Comment == nil {
			continue
		}
		comments = append(comments, UserComment{
			GameID:    rv.GameID,
			GameName:  names[rv.GameID],
			Comment:   *rv.Comment,
			Rating:    rv.Rating,
			UpdatedAt: rv.UpdatedAt,
		})
	}
	return comments
}

type ProjectionService struct {
	db *gorm.DB
}

func NewProjectionService(db *gorm.DB) *ProjectionService {
	return &ProjectionService{db: db}
}

func (s *ProjectionService) Stats(userID uint) (UserStats, error) {
	playtimes, reviews, err := s.loadUserRows(userID)
	if err != nil {
		return UserStats{}, err
	}
	return BuildUserStats(playtimes, reviews), nil
}

func (s *ProjectionService) MostPlayed(userID uint, limit int) ([]MostPlayedEntry, error) {
	var playtimes []models.PlayTime
	if err := s.db.Where("user_id = ?", userID).Find(&playtimes).Error; err != nil {
		return nil, err
	}
	names, err := s.gameNames(gameIDsOf(playtimes, nil))
	if err != nil {
		return nil, err
	}
	return RankMostPlayed(playtimes, names, limit), nil
}

func (s *ProjectionService) Comments(userID uint) ([]UserComment, error) {
	var reviews []models.Review
	if err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	names, err := s.gameNames(gameIDsOf(nil, reviews))
	if err != nil {
		return nil, err
	}
	return CollectUserComments(reviews, names), nil
}

func (s *ProjectionService) Dashboard(userID uint) (UserDashboard, error) {
	playtimes, reviews, err := s.loadUserRows(userID)
	if err != nil {
		return UserDashboard{}, err
	}
	names, err := s.gameNames(gameIDsOf(playtimes, reviews))
	if err != nil {
		return UserDashboard{}, err
	}
	return UserDashboard{
		Stats:      BuildUserStats(playtimes, reviews),
		MostPlayed: RankMostPlayed(playtimes, names, 5),
		Comments:   CollectUserComments(reviews, names),
	}, nil
}

func (s *ProjectionService) Page(userID uint) (ProfilePage, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return ProfilePage{}, ErrNotFound
	}
	dashboard, err := s.Dashboard(userID)
	if err != nil {
		return ProfilePage{}, err
	}
	return ProfilePage{User: user, Dashboard: dashboard}, nil
}

func (s *ProjectionService) loadUserRows(userID uint) ([]models.PlayTime, []models.Review, error) {
	var playtimes []models.PlayTime
	if err := s.db.Where("user_id = ?", userID).Find(&playtimes).Error; err != nil {
		return nil, nil, err
	}
	var reviews []models.Review
	if err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&reviews).Error; err != nil {
		return nil, nil, err
	}
	return playtimes, reviews, nil
}

func (s *ProjectionService) gameNames(ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var games []models.Game
	if err := s.db.Where("id IN ?", ids).Find(&games).Error; err != nil {
		return nil, err
	}
	for _, g := range games {
		names[g.ID] = g.Name
	}
	return names, nil
}

func gameIDsOf(playtimes []models.PlayTime, reviews []models.Review) []uint {
	seen := make(map[uint]bool)
	var ids []uint
	for _, pt := range playtimes {
		if !seen[pt.GameID] {
			seen[pt.GameID] = true
			ids = append(ids, pt.GameID)
		}
	}
	for _, rv := range reviews {
		if !seen[rv.GameID] {
			seen[rv.GameID] = true
			ids = append(ids, rv.GameID)
		}
	}
	return ids
}
