package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/cityserv/cityserv/models"
	"github.com/cityserv/cityserv/services"
	"github.com/cityserv/cityserv/utils"
)

// renderError maps domain errors onto HTTP responses. Storage failures
// are logged and surfaced as a generic retry message, never detailed.
func renderError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid input",
			Errors:  verr.Fields,
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid email or password",
		})
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You are not allowed to perform this action",
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Not found",
		})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	case errors.Is(err, models.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	default:
		log.Printf("internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Something went wrong. Please try again.",
		})
	}
}
