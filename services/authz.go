package services

import (
	"github.com/cityserv/cityserv/models"
)

// Action names a guarded domain operation.
type Action string

const (
	ActionCreateBooking       Action = "booking:create"
	ActionUpdateBookingStatus Action = "booking:update-status"
	ActionCreateService       Action = "service:create"
	ActionRegisterProvider    Action = "provider:register"
)

// BookingOwnership pairs a booking with the provider record of the caller
// for ownership checks.
type BookingOwnership struct {
	Booking  *models.Booking
	Provider *models.Provider
}

// authorize is the single policy gate for every domain operation. It
// answers whether actor may perform action on resource; domain functions
// call it instead of repeating inline role checks.
func authorize(action Action, actor *models.User, resource interface{}) error {
	if actor == nil {
		return ErrUnauthorized
	}
	switch action {
	case ActionCreateBooking, ActionRegisterProvider:
		// Any signed-in user.
		return nil
	case ActionCreateService:
		if actor.Role != models.RoleAdmin {
			return ErrUnauthorized
		}
		return nil
	case ActionUpdateBookingStatus:
		own, ok := resource.(BookingOwnership)
		if !ok || own.Booking == nil || own.Provider == nil {
			return ErrUnauthorized
		}
		if own.Booking.ProviderID != own.Provider.ID {
			return ErrUnauthorized
		}
		return nil
	}
	return ErrUnauthorized
}
