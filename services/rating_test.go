package services

import (
	"math"
	"testing"
)

func TestWeightedRating(t *testing.T) {
	tests := []struct {
		name      string
		playtimes []PlaytimeEntry
		ratings   map[uint]int
		want      float64
	}{
		{
			name: "two raters weighted by playtime",
			playtimes: []PlaytimeEntry{
				{UserID: 1, Minutes: 120},
				{UserID: 2, Minutes: 80},
			},
			ratings: map[uint]int{1: 5, 2: 3},
			// (120*5 + 80*3) / (120+80)
			want: 3.8,
		},
		{
			name: "player without a rating still weighs the denominator",
			playtimes: []PlaytimeEntry{
				{UserID: 1, Minutes: 120},
				{UserID: 2, Minutes: 80},
				{UserID: 3, Minutes: 90},
			},
			ratings: map[uint]int{1: 5, 2: 3},
			want:    (120*5 + 80*3) / 290.0,
		},
		{
			name:      "no players",
			playtimes: nil,
			ratings:   map[uint]int{1: 5},
			want:      0,
		},
		{
			name: "zero total playtime",
			playtimes: []PlaytimeEntry{
				{UserID: 1, Minutes: 0},
			},
			ratings: map[uint]int{1: 5},
			want:    0,
		},
		{
			name: "rating without a ledger entry contributes nothing",
			playtimes: []PlaytimeEntry{
				{UserID: 1, Minutes: 60},
			},
			ratings: map[uint]int{1: 4, 99: 5},
			want:    4,
		},
		{
			name: "single player single rating",
			playtimes: []PlaytimeEntry{
				{UserID: 7, Minutes: 61},
			},
			ratings: map[uint]int{7: 2},
			want:    2,
		},
		{
			name: "all players unrated",
			playtimes: []PlaytimeEntry{
				{UserID: 1, Minutes: 100},
				{UserID: 2, Minutes: 50},
			},
			ratings: map[uint]int{},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedRating(tt.playtimes, tt.ratings)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("WeightedRating() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeightedRatingIdempotent(t *testing.T) {
	playtimes := []PlaytimeEntry{
		{UserID: 1, Minutes: 45},
		{UserID: 2, Minutes: 200},
	}
	ratings := map[uint]int{1: 5, 2: 1}

	first := WeightedRating(playtimes, ratings)
	second := WeightedRating(playtimes, ratings)
	if first != second {
		t.Fatalf("repeated computation differs: %v then %v", first, second)
	}
}

func TestWeightedRatingBounds(t *testing.T) {
	playtimes := []PlaytimeEntry{
		{UserID: 1, Minutes: 1},
		{UserID: 2, Minutes: 100000},
		{UserID: 3, Minutes: 33},
	}
	ratings := map[uint]int{1: 1, 2: 5, 3: 3}

	got := WeightedRating(playtimes, ratings)
	if got < 0 || got > 5 {
		t.Fatalf("WeightedRating() = %v, want within [0,5]", got)
	}
}
