package models

import "time"

type Game struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Name              string     `gorm:"not null" json:"name"`
	Image             string     `json:"image"`
	Brand             string     `json:"brand"`
	Description       string     `json:"description"`
	Categories        []Category `gorm:"many2many:game_categories" json:"categories"`
	Reviews           []Review   `json:"reviews,omitempty"`
	Rating            float64    `gorm:"default:0" json:"rating"`
	NumReviews        int        `gorm:"default:0" json:"numReviews"`
	DisableRating     bool       `gorm:"default:false" json:"disableRating"`
	DisableCommenting bool       `gorm:"default:false" json:"disableCommenting"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// GameInput - admin create/update payload. A game carries 1 to 5 category tags.
type GameInput struct {
	Name              string   `json:"name" validate:"required,min=1,max=100"`
	Image             string   `json:"image"`
	Brand             string   `json:"brand"`
	Description       string   `json:"description"`
	Categories        []string `json:"categories" validate:"required,min=1,max=5,dive,required"`
	DisableRating     *bool    `json:"disableRating"`
	DisableCommenting *bool    `json:"disableCommenting"`
}
