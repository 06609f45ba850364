package models

import "time"

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	IsAdmin   bool       `gorm:"default:false" json:"isAdmin"`
	PlayTimes []PlayTime `json:"playTime,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// RegisterInput - used to validate registration
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// LoginInput - used to validate login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput - all fields optional, only provided ones are applied
type UpdateProfileInput struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6,max=100"`
}

// AdminUpdateUserInput - admin-only fields on top of the profile ones
type AdminUpdateUserInput struct {
	Name    *string `json:"name" validate:"omitempty,min=3,max=50"`
	Email   *string `json:"email" validate:"omitempty,email"`
	IsAdmin *bool   `json:"isAdmin"`
}
