package services

import (
	"testing"

	"github.com/edasenturkk/term-project-backend/models"
)

func TestGamesTouchedByDedupes(t *testing.T) {
	reviews := []models.Review{
		{GameID: 1, UserID: 9},
		{GameID: 3, UserID: 9},
	}
	playtimes := []models.PlayTime{
		{GameID: 1, UserID: 9, Minutes: 120},
		{GameID: 1, UserID: 9, Minutes: 30},
		{GameID: 2, UserID: 9, Minutes: 45},
	}

	reviewed, affected := gamesTouchedBy(reviews, playtimes)

	if len(reviewed) != 2 {
		t.Fatalf("reviewed has %d games, want 2", len(reviewed))
	}
	if !reviewed[1] || !reviewed[3] {
		t.Fatalf("reviewed = %v, want games 1 and 3", reviewed)
	}

	if len(affected) != 3 {
		t.Fatalf("affected has %d games, want 3", len(affected))
	}
	// Game 3 is reviewed but never played; it still needs a recompute.
	for _, gameID := range []uint{1, 2, 3} {
		if !affected[gameID] {
			t.Fatalf("affected = %v, missing game %d", affected, gameID)
		}
	}
}

func TestGamesTouchedByEmpty(t *testing.T) {
	reviewed, affected := gamesTouchedBy(nil, nil)
	if len(reviewed) != 0 || len(affected) != 0 {
		t.Fatalf("reviewed = %v, affected = %v, want both empty", reviewed, affected)
	}
}
