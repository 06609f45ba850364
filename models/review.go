package models

import "time"

// Review is the single review slot a user holds on a game. Rating and
// Comment are pointers so "omitted" stays distinct from a zero value: a
// review always has at least one of them when created, but either may be
// absent afterwards.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_review_game_user" json:"gameId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_review_game_user" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Rating    *int      `json:"rating,omitempty"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewInput - body of POST /products/:id/reviews. Both fields optional,
// the eligibility gate enforces that a new review carries at least one.
type ReviewInput struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}
