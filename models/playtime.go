package models

import "time"

// PlayTime is one ledger entry: accumulated minutes a user has played a
// game. At most one row per (user, game); Minutes only ever grows.
type PlayTime struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_playtime_user_game" json:"userId"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_playtime_user_game" json:"gameId"`
	Minutes   int       `gorm:"not null" json:"minutes"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordPlayInput - body of POST /products/:id/play
type RecordPlayInput struct {
	Time int `json:"time" validate:"required,gt=0"`
}
