package services

import (
	"errors"
	"testing"

	"github.com/edasenturkk/term-project-backend/models"
)

func TestRecordPlayRejectsNonPositiveMinutes(t *testing.T) {
	// Validation runs before any storage access.
	s := NewPlaytimeService(nil, nil)

	for _, minutes := range []int{0, -1, -60} {
		_, err := s.RecordPlay(1, 1, minutes)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("RecordPlay(minutes=%d) = %v, want *ValidationError", minutes, err)
		}
	}
}

func TestApplyPlayAccumulates(t *testing.T) {
	entry := models.PlayTime{UserID: 1, GameID: 1}

	sessions := []int{30, 45, 1, 120}
	want := 0
	for _, minutes := range sessions {
		applyPlay(&entry, minutes)
		want += minutes
	}

	if entry.Minutes != want {
		t.Fatalf("minutes = %d after %v, want %d", entry.Minutes, sessions, want)
	}
}
