package services

import (
	"testing"

	"github.com/edasenturkk/term-project-backend/models"
)

func TestApplyReviewInputRoundTrip(t *testing.T) {
	// Comment-only creation, later amended with a rating alone, yields a
	// single slot carrying both fields.
	review := models.Review{GameID: 1, UserID: 2}
	applyReviewInput(&review, "alice", models.ReviewInput{Comment: strPtr("fun")})

	if review.Rating != nil {
		t.Fatalf("rating = %v after comment-only create, want nil", *review.Rating)
	}
	if review.Comment == nil || *review.Comment != "fun" {
		t.Fatalf("comment = %v, want \"fun\"", review.Comment)
	}

	applyReviewInput(&review, "alice", models.ReviewInput{Rating: intPtr(4)})

	if review.Rating == nil || *review.Rating != 4 {
		t.Fatalf("rating = %v after amend, want 4", review.Rating)
	}
	if review.Comment == nil || *review.Comment != "fun" {
		t.Fatalf("comment = %v after rating-only amend, want \"fun\" kept", review.Comment)
	}
}

func TestApplyReviewInputPartialUpdate(t *testing.T) {
	tests := []struct {
		name        string
		in          models.ReviewInput
		wantRating  *int
		wantComment *string
	}{
		{
			name:        "rating only leaves comment intact",
			in:          models.ReviewInput{Rating: intPtr(2)},
			wantRating:  intPtr(2),
			wantComment: strPtr("original"),
		},
		{
			name:        "comment only leaves rating intact",
			in:          models.ReviewInput{Comment: strPtr("revised")},
			wantRating:  intPtr(5),
			wantComment: strPtr("revised"),
		},
		{
			name:        "both provided replace both",
			in:          models.ReviewInput{Rating: intPtr(1), Comment: strPtr("changed my mind")},
			wantRating:  intPtr(1),
			wantComment: strPtr("changed my mind"),
		},
		{
			name:        "nothing provided changes nothing",
			in:          models.ReviewInput{},
			wantRating:  intPtr(5),
			wantComment: strPtr("original"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review := models.Review{
				GameID:  1,
				UserID:  2,
				Name:    "old name",
				Rating:  intPtr(5),
				Comment: strPtr("original"),
			}

			applyReviewInput(&review, "new name", tt.in)

			if review.Name != "new name" {
				t.Errorf("name = %q, want refreshed to \"new name\"", review.Name)
			}
			if *review.Rating != *tt.wantRating {
				t.Errorf("rating = %d, want %d", *review.Rating, *tt.wantRating)
			}
			if *review.Comment != *tt.wantComment {
				t.Errorf("comment = %q, want %q", *review.Comment, *tt.wantComment)
			}
		})
	}
}
