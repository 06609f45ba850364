package services

import "github.com/edasenturkk/term-project-backend/models"

// MinReviewPlaytime is the accumulated playtime (minutes) a user needs on
// a game before their reviews are accepted.
const MinReviewPlaytime = 60

// CanReview decides whether a user may create or update a review for a
// game. It is pure: callers load the cumulative minutes and the game row,
// the gate only applies the rules. Checks run in a fixed order and the
// first failure wins:
//
//  1. a brand-new review must carry a rating or a comment (updates may
//     touch a single field and leave the other as it was)
//  2. a provided rating must be an integer in [1,5]
//  3. cumulative playtime must be at least MinReviewPlaytime
//  4. a provided rating is rejected while the game has rating disabled
//  5. a provided comment is rejected while the game has commenting disabled
func CanReview(minutes int, game *models.Game, rating *int, comment *string, isUpdate bool) error {
	if rating == nil && comment == nil && !isUpdate {
		return NewValidationError("a review needs a rating or a comment")
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return NewValidationError("rating must be an integer between 1 and 5")
	}
	if minutes < MinReviewPlaytime {
		return &EligibilityError{Reason: ReasonInsufficientPlaytime, Threshold: MinReviewPlaytime}
	}
	if rating != nil && game.DisableRating {
		return &EligibilityError{Reason: ReasonRatingDisabled}
	}
	if comment != nil && game.DisableCommenting {
		return &EligibilityError{Reason: ReasonCommentingDisabled}
	}
	return nil
}
