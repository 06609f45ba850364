package services

import (
	"errors"
	"testing"

	"github.com/edasenturkk/term-project-backend/models"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestCanReviewOrdering(t *testing.T) {
	openGame := &models.Game{ID: 1}
	ratingOff := &models.Game{ID: 2, DisableRating: true}
	commentOff := &models.Game{ID: 3, DisableCommenting: true}

	tests := []struct {
		name           string
		minutes        int
		game           *models.Game
		rating         *int
		comment        *string
		isUpdate       bool
		wantErr        bool
		wantValidation bool
		wantReason     string
	}{
		{
			name:    "rating and comment with enough playtime",
			minutes: 120, game: openGame, rating: intPtr(4), comment: strPtr("good"),
		},
		{
			name:    "comment only is enough",
			minutes: 90, game: openGame, comment: strPtr("fun"),
		},
		{
			name:    "rating only is enough",
			minutes: 90, game: openGame, rating: intPtr(5),
		},
		{
			name:    "empty creation rejected",
			minutes: 120, game: openGame,
			wantErr: true, wantValidation: true,
		},
		{
			name:    "empty update allowed through the completeness rule",
			minutes: 120, game: openGame, isUpdate: true,
		},
		{
			name:    "rating below range",
			minutes: 120, game: openGame, rating: intPtr(0),
			wantErr: true, wantValidation: true,
		},
		{
			name:    "rating above range",
			minutes: 120, game: openGame, rating: intPtr(6),
			wantErr: true, wantValidation: true,
		},
		{
			name:    "rating range checked before playtime",
			minutes: 0, game: openGame, rating: intPtr(9),
			wantErr: true, wantValidation: true,
		},
		{
			name:    "59 minutes denied",
			minutes: 59, game: openGame, rating: intPtr(4),
			wantErr: true, wantReason: ReasonInsufficientPlaytime,
		},
		{
			name:    "exactly 60 minutes allowed",
			minutes: 60, game: openGame, rating: intPtr(4),
		},
		{
			name:    "playtime checked before disabled flags",
			minutes: 10, game: ratingOff, rating: intPtr(4),
			wantErr: true, wantReason: ReasonInsufficientPlaytime,
		},
		{
			name:    "rating disabled",
			minutes: 120, game: ratingOff, rating: intPtr(4),
			wantErr: true, wantReason: ReasonRatingDisabled,
		},
		{
			name:    "comment still fine while rating disabled",
			minutes: 120, game: ratingOff, comment: strPtr("ok"),
		},
		{
			name:    "commenting disabled",
			minutes: 120, game: commentOff, comment: strPtr("nope"),
			wantErr: true, wantReason: ReasonCommentingDisabled,
		},
		{
			name:    "rating still fine while commenting disabled",
			minutes: 120, game: commentOff, rating: intPtr(3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanReview(tt.minutes, tt.game, tt.rating, tt.comment, tt.isUpdate)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("CanReview() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("CanReview() = nil, want error")
			}
			var ve *ValidationError
			if tt.wantValidation {
				if !errors.As(err, &ve) {
					t.Fatalf("CanReview() = %T, want *ValidationError", err)
				}
				return
			}
			var ee *EligibilityError
			if !errors.As(err, &ee) {
				t.Fatalf("CanReview() = %T, want *EligibilityError", err)
			}
			if ee.Reason != tt.wantReason {
				t.Fatalf("reason = %q, want %q", ee.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanReviewThresholdCarried(t *testing.T) {
	err := CanReview(59, &models.Game{ID: 1}, intPtr(4), nil, false)
	var ee *EligibilityError
	if !errors.As(err, &ee) {
		t.Fatalf("CanReview() = %v, want *EligibilityError", err)
	}
	if ee.Threshold != MinReviewPlaytime {
		t.Fatalf("threshold = %d, want %d", ee.Threshold, MinReviewPlaytime)
	}
}
