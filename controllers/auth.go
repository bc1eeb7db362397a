package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cityserv/cityserv/db"
	"github.com/cityserv/cityserv/middleware"
	"github.com/cityserv/cityserv/services"
	"github.com/cityserv/cityserv/utils"
)

// Register handles user sign-up and starts a session for the new user
func Register(c *fiber.Ctx) error {
	var input services.SignUpInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse request body",
		})
	}

	svc := services.AuthService{DB: db.DB}
	user, err := svc.SignUp(input)
	if err != nil {
		return renderError(c, err)
	}

	middleware.StartSession(c, user.ID)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles user sign-in
func Login(c *fiber.Ctx) error {
	var input services.SignInInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse request body",
		})
	}

	svc := services.AuthService{DB: db.DB}
	user, err := svc.SignIn(input)
	if err != nil {
		return renderError(c, err)
	}

	middleware.StartSession(c, user.ID)
	return c.JSON(user)
}

// Logout clears the session cookie and sends the caller home
func Logout(c *fiber.Ctx) error {
	middleware.EndSession(c)
	return c.Redirect("/")
}

// Me returns the current user's profile
func Me(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	return c.JSON(user)
}

// UpdateProfileImage uploads a new profile picture for the current user
func UpdateProfileImage(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Image file is required",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot read uploaded file",
		})
	}
	defer file.Close()

	svc := services.AuthService{DB: db.DB}
	url, err := svc.UpdateProfileImage(user, file)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{"image": url})
}
