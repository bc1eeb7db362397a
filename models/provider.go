package models

import (
	"time"
)

// Provider is a user who registered to offer one service category.
// A user has at most one provider record (unique index on UserID).
// Only verified providers are shown in booking flows; verification is
// a manual administrative action.
type Provider struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"uniqueIndex"`
	User       User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Phone      string    `json:"phone"`
	ServiceID  uint      `json:"serviceId"`
	Experience int       `json:"experience"`
	IsVerified bool      `json:"isVerified" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
