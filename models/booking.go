package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// ErrInvalidTransition is wrapped by CanTransition for any status change
// the lifecycle does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

// Booking is a scheduled engagement between a customer and a provider for
// a service. TotalPrice is frozen at creation from the service's base
// price. EndTime is always StartTime plus one hour.
type Booking struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	UserID      uint          `json:"userId"`
	Customer    User          `json:"customer,omitempty" gorm:"foreignKey:UserID"`
	ProviderID  uint          `json:"providerId"`
	Provider    Provider      `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID   uint          `json:"serviceId"`
	Service     Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Date        time.Time     `json:"date"`
	StartTime   time.Time     `json:"startTime"`
	EndTime     time.Time     `json:"endTime"`
	TotalPrice  float64       `json:"totalPrice"`
	Description string        `json:"description,omitempty"`
	Status      BookingStatus `json:"status" gorm:"default:'PENDING'"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// CanTransition reports whether the booking may move to newStatus.
// Pending bookings can be confirmed or cancelled, confirmed bookings can
// be completed or cancelled, and completed/cancelled are terminal.
func (b *Booking) CanTransition(newStatus BookingStatus) error {
	switch b.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, b.Status, newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, b.Status, newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("%w: no transitions allowed from %s", ErrInvalidTransition, b.Status)
	}
	return nil
}

// UpdateStatus validates the transition and persists the new status.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if err := b.CanTransition(newStatus); err != nil {
		return err
	}
	b.Status = newStatus
	return tx.Save(b).Error
}
