package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cityserv/cityserv/db"
	"github.com/cityserv/cityserv/middleware"
	"github.com/cityserv/cityserv/services"
	"github.com/cityserv/cityserv/utils"
)

// RegisterProvider turns the signed-in user into a service provider
func RegisterProvider(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)

	var input services.RegisterProviderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse request body",
		})
	}

	svc := services.DirectoryService{DB: db.DB}
	provider, err := svc.RegisterProvider(user, input)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(provider)
}
