package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cityserv/cityserv/db"
	"github.com/cityserv/cityserv/middleware"
	"github.com/cityserv/cityserv/models"
	"github.com/cityserv/cityserv/services"
	"github.com/cityserv/cityserv/utils"
)

// CreateBooking books a service for the signed-in customer
func CreateBooking(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)

	var input services.CreateBookingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse request body",
		})
	}

	svc := services.BookingService{DB: db.DB, Mail: utils.SendEmail}
	booking, err := svc.Create(user, input)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetMyBookings lists the signed-in customer's bookings
func GetMyBookings(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)

	svc := services.BookingService{DB: db.DB, Mail: utils.SendEmail}
	bookings, err := svc.ListForCustomer(user)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// GetProviderBookings lists the bookings addressed to the signed-in
// provider
func GetProviderBookings(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)

	svc := services.BookingService{DB: db.DB, Mail: utils.SendEmail}
	bookings, err := svc.ListForProvider(user)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// UpdateBookingStatus moves a booking through its lifecycle
func UpdateBookingStatus(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking id",
		})
	}

	var input struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse request body",
		})
	}
	switch input.Status {
	case models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Status must be CONFIRMED, COMPLETED or CANCELLED",
		})
	}

	svc := services.BookingService{DB: db.DB, Mail: utils.SendEmail}
	booking, err := svc.UpdateStatus(user, uint(id), input.Status)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(booking)
}
