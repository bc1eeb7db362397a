package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cityserv/cityserv/db"
	"github.com/cityserv/cityserv/middleware"
	"github.com/cityserv/cityserv/services"
	"github.com/cityserv/cityserv/utils"
)

// GetAllServices lists the service catalog
func GetAllServices(c *fiber.Ctx) error {
	svc := services.DirectoryService{DB: db.DB}
	catalog, err := svc.ListServices()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(catalog)
}

// GetService returns one service with its verified providers
func GetService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service id",
		})
	}

	svc := services.DirectoryService{DB: db.DB}
	service, err := svc.GetService(uint(id))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(service)
}

// CreateService adds a catalog entry (admin only)
func CreateService(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)

	var input services.CreateServiceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse request body",
		})
	}

	svc := services.DirectoryService{DB: db.DB}
	service, err := svc.CreateService(user, input)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}
