package services

import (
	"errors"

	"github.com/edasenturkk/term-project-backend/cache"
	"github.com/edasenturkk/term-project-backend/models"
	"github.com/edasenturkk/term-project-backend/monitoring"

	"gorm.io/gorm"
)

type ReviewService struct {
	db       *gorm.DB
	playtime *PlaytimeService
	agg      *RatingAggregator
}

func NewReviewService(db *gorm.DB, playtime *PlaytimeService, agg *RatingAggregator) *ReviewService {
	return &ReviewService{db: db, playtime: playtime, agg: agg}
}

// UpsertReview creates or amends the single review slot a user holds on a
// game, after the eligibility gate approves. On update only the provided
// fields are applied, the other keeps its previous value, and the display
// name is refreshed. Returns the review and whether it was newly created
// (the boundary answers 201 vs 200 on that). The rating recompute is
// queued, not awaited.
func (s *ReviewService) UpsertReview(gameID, userID uint, displayName string, in models.ReviewInput) (*models.Review, bool, error) {
	var game models.Game
	if err := s.db.First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	minutes, err := s.playtime.MinutesFor(userID, gameID)
	if err != nil {
		return nil, false, err
	}

	var review models.Review
	err = s.db.Where("game_id = ? AND user_id = ?", gameID, userID).First(&review).Error
	exists := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if err := CanReview(minutes, &game, in.Rating, in.Comment, exists); err != nil {
		return nil, false, err
	}

	if exists {
		applyReviewInput(&review, displayName, in)
		if err := s.db.Save(&review).Error; err != nil {
			return nil, false, err
		}
	} else {
		review = models.Review{GameID: gameID, UserID: userID}
		applyReviewInput(&review, displayName, in)
		if err := s.db.Create(&review).Error; err != nil {
			return nil, false, err
		}
	}

	if err := s.syncNumReviews(gameID); err != nil {
		return nil, false, err
	}

	monitoring.ReviewsUpserted.Inc()
	s.agg.Enqueue(gameID)
	cache.InvalidateReviews(gameID)
	cache.InvalidateGame(gameID)

	return &review, !exists, nil
}

// applyReviewInput merges the provided fields into a review slot and
// refreshes the denormalized display name. An omitted field keeps its
// previous value, so a comment-only review later amended with a rating
// ends up with both.
func applyReviewInput(review *models.Review, displayName string, in models.ReviewInput) {
	review.Name = displayName
	if in.Rating != nil {
		review.Rating = in.Rating
	}
	if in.Comment != nil {
		review.Comment = in.Comment
	}
}

// GameComments lists the review entries of a game, newest first.
func (s *ReviewService) GameComments(gameID uint) ([]models.Review, error) {
	var game models.Game
	if err := s.db.First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var reviews []models.Review
	if err := s.db.Where("game_id = ?", gameID).Order("updated_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// syncNumReviews keeps game.numReviews equal to the review count.
func (s *ReviewService) syncNumReviews(gameID uint) error {
	var count int64
	if err := s.db.Model(&models.Review{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Game{}).Where("id = ?", gameID).Update("num_reviews", count).Error
}
