package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/cityserv/cityserv/models"
	"github.com/cityserv/cityserv/redis"
)

// MailFunc sends a notification email. A nil MailFunc disables
// notifications (tests, local setups without SMTP).
type MailFunc func(to, subject, body string) error

// BookingService implements the booking lifecycle: create, list per
// customer or provider, and status transitions.
type BookingService struct {
	DB   *gorm.DB
	Mail MailFunc
}

// Bookings last exactly one hour regardless of the service booked.
const bookingDuration = time.Hour

const listCacheTTL = 5 * time.Minute

func customerBookingsKey(userID uint) string {
	return fmt.Sprintf("bookings:customer:%d", userID)
}

func providerBookingsKey(providerID uint) string {
	return fmt.Sprintf("bookings:provider:%d", providerID)
}

type CreateBookingInput struct {
	ProviderID  uint   `json:"providerId" validate:"required"`
	ServiceID   uint   `json:"serviceId" validate:"required"`
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"startTime" validate:"required"`
	Description string `json:"description"`
}

// Create books a service for the acting customer. The total price is
// copied from the service's current base price and never re-derived.
func (s *BookingService) Create(actor *models.User, input CreateBookingInput) (*models.Booking, error) {
	if err := authorize(ActionCreateBooking, actor, nil); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"date": "Date must be in YYYY-MM-DD format"}}
	}
	clock, err := time.Parse("15:04", input.StartTime)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"startTime": "Start time must be in HH:MM format"}}
	}

	var service models.Service
	if err := s.DB.First(&service, input.ServiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: service", ErrNotFound)
		}
		return nil, err
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	booking := models.Booking{
		UserID:      actor.ID,
		ProviderID:  input.ProviderID,
		ServiceID:   input.ServiceID,
		Date:        date,
		StartTime:   start,
		EndTime:     start.Add(bookingDuration),
		TotalPrice:  service.BasePrice,
		Description: input.Description,
		Status:      models.StatusPending,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, err
	}

	redis.CacheInvalidate(customerBookingsKey(actor.ID), providerBookingsKey(input.ProviderID))
	return &booking, nil
}

// ListForCustomer returns the actor's own bookings with service and
// provider display data, newest first.
func (s *BookingService) ListForCustomer(actor *models.User) ([]models.Booking, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	var bookings []models.Booking
	key := customerBookingsKey(actor.ID)
	if redis.CacheGet(key, &bookings) {
		return bookings, nil
	}

	err := s.DB.
		Preload("Service").
		Preload("Provider").
		Preload("Provider.User").
		Where("user_id = ?", actor.ID).
		Order("date DESC, start_time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	redis.CacheSet(key, bookings, listCacheTTL)
	return bookings, nil
}

// ListForProvider returns the bookings addressed to the actor's provider
// record, with service and customer display data, newest first. Users who
// never registered as a provider fail with ErrNotFound.
func (s *BookingService) ListForProvider(actor *models.User) ([]models.Booking, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	provider, err := s.providerFor(actor)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	key := providerBookingsKey(provider.ID)
	if redis.CacheGet(key, &bookings) {
		return bookings, nil
	}

	err = s.DB.
		Preload("Service").
		Preload("Customer").
		Where("provider_id = ?", provider.ID).
		Order("date DESC, start_time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	redis.CacheSet(key, bookings, listCacheTTL)
	return bookings, nil
}

// UpdateStatus moves a booking through its lifecycle. Only the provider
// the booking is addressed to may change it, and the transition table in
// models.Booking is enforced.
func (s *BookingService) UpdateStatus(actor *models.User, bookingID uint, newStatus models.BookingStatus) (*models.Booking, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	provider, err := s.providerFor(actor)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: booking", ErrNotFound)
		}
		return nil, err
	}

	if err := authorize(ActionUpdateBookingStatus, actor, BookingOwnership{Booking: &booking, Provider: provider}); err != nil {
		return nil, err
	}

	if err := booking.UpdateStatus(s.DB, newStatus); err != nil {
		return nil, err
	}

	redis.CacheInvalidate(customerBookingsKey(booking.UserID), providerBookingsKey(booking.ProviderID))
	s.notifyCustomer(&booking)
	return &booking, nil
}

func (s *BookingService) providerFor(actor *models.User) (*models.Provider, error) {
	var provider models.Provider
	if err := s.DB.Where("user_id = ?", actor.ID).First(&provider).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: provider", ErrNotFound)
		}
		return nil, err
	}
	return &provider, nil
}

// notifyCustomer emails the booking's customer about the status change.
// Delivery is best-effort: failures are logged, never surfaced.
func (s *BookingService) notifyCustomer(booking *models.Booking) {
	if s.Mail == nil {
		return
	}

	var customer models.User
	if err := s.DB.First(&customer, booking.UserID).Error; err != nil {
		log.Printf("Failed to load customer for booking %d: %v", booking.ID, err)
		return
	}
	var service models.Service
	if err := s.DB.First(&service, booking.ServiceID).Error; err != nil {
		log.Printf("Failed to load service for booking %d: %v", booking.ID, err)
		return
	}

	subject := fmt.Sprintf("Booking Update: %s is now %s", service.Title, booking.Status)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The status of your booking has changed.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The CityServ Team</p>
	`, customer.Name, service.Title,
		booking.Date.Format("2006-01-02"),
		booking.StartTime.Format("15:04"),
		booking.Status)

	if err := s.Mail(customer.Email, subject, body); err != nil {
		log.Printf("Failed to send status email for booking %d: %v", booking.ID, err)
	}
}
