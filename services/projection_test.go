package services

import (
	"testing"

	"github.com/edasenturkk/term-project-backend/models"
)

func TestBuildUserStats(t *testing.T) {
	playtimes := []models.PlayTime{
		{UserID: 1, GameID: 10, Minutes: 120},
		{UserID: 1, GameID: 11, Minutes: 30},
	}
	reviews := []models.Review{
		{UserID: 1, GameID: 10, Rating: intPtr(5), Comment: strPtr("great")},
		{UserID: 1, GameID: 11, Comment: strPtr("meh")},
		{UserID: 1, GameID: 12, Rating: intPtr(3)},
	}

	stats := BuildUserStats(playtimes, reviews)

	if stats.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", stats.GamesPlayed)
	}
	if stats.TotalMinutes != 150 {
		t.Errorf("TotalMinutes = %d, want 150", stats.TotalMinutes)
	}
	if stats.ReviewsWritten != 3 {
		t.Errorf("ReviewsWritten = %d, want 3", stats.ReviewsWritten)
	}
	if stats.RatingsGiven != 2 {
		t.Errorf("RatingsGiven = %d, want 2", stats.RatingsGiven)
	}
	if stats.AverageRating != 4 {
		t.Errorf("AverageRating = %v, want 4", stats.AverageRating)
	}
}

func TestBuildUserStatsEmpty(t *testing.T) {
	stats := BuildUserStats(nil, nil)
	if stats.TotalMinutes != 0 || stats.AverageRating != 0 {
		t.Fatalf("empty stats = %+v, want zeros", stats)
	}
}

func TestRankMostPlayed(t *testing.T) {
	playtimes := []models.PlayTime{
		{GameID: 1, Minutes: 30},
		{GameID: 2, Minutes: 300},
		{GameID: 3, Minutes: 120},
		{GameID: 4, Minutes: 120},
	}
	names := map[uint]string{1: "A", 2: "B", 3: "C", 4: "D"}

	entries := RankMostPlayed(playtimes, names, 3)

	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].GameID != 2 || entries[0].Name != "B" {
		t.Errorf("top entry = %+v, want game 2", entries[0])
	}
	// Equal minutes break ties on game id.
	if entries[1].GameID != 3 || entries[2].GameID != 4 {
		t.Errorf("tie order = %d, %d, want 3, 4", entries[1].GameID, entries[2].GameID)
	}
}

func TestRankMostPlayedNoLimit(t *testing.T) {
	playtimes := []models.PlayTime{{GameID: 1, Minutes: 5}, {GameID: 2, Minutes: 6}}
	entries := RankMostPlayed(playtimes, map[uint]string{}, 0)
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
}

func TestCollectUserComments(t *testing.T) {
	reviews := []models.Review{
		{GameID: 1, Rating: intPtr(4), Comment: strPtr("nice")},
		{GameID: 2, Rating: intPtr(5)}, // rating only, no comment row
		{GameID: 3, Comment: strPtr("comment only")},
	}
	names := map[uint]string{1: "First", 3: "Third"}

	comments := CollectUserComments(reviews, names)

	if len(comments) != 2 {
		t.Fatalf("len = %d, want 2", len(comments))
	}
	if comments[0].GameName != "First" || comments[0].Comment != "nice" {
		t.Errorf("first = %+v", comments[0])
	}
	if comments[1].GameID != 3 || comments[1].Rating != nil {
		t.Errorf("second = %+v, want comment-only entry for game 3", comments[1])
	}
}
