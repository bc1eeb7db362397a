package models

import (
	"time"
)

// Service is a bookable service category (e.g. Plumbing). Services are
// created by an admin and their base price is copied into bookings at
// creation time, so later price changes never touch existing bookings.
type Service struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	BasePrice   float64    `json:"basePrice"`
	Providers   []Provider `json:"providers,omitempty" gorm:"foreignKey:ServiceID"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
