package middleware

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cityserv/cityserv/db"
	"github.com/cityserv/cityserv/models"
	"github.com/cityserv/cityserv/services"
)

// SessionCookie holds the signed-in user's id. Trust-on-presence: no
// token rotation, no revocation list.
const SessionCookie = "userId"

const sessionMaxAge = 60 * 60 * 24 * 7 // 1 week

// CurrentUser resolves the session cookie into a user and stores it in
// the request locals. A missing cookie or a stale user id just means no
// user; it is never an error.
func CurrentUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(SessionCookie)
		if raw == "" {
			return c.Next()
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.Next()
		}

		svc := services.AuthService{DB: db.DB}
		user, err := svc.GetUser(uint(id))
		if err != nil {
			return c.Next()
		}

		c.Locals("user", user)
		c.Locals("userID", user.ID)
		return c.Next()
	}
}

// RequireUser rejects requests that carry no resolved session.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if SessionUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "You must be signed in",
			})
		}
		return c.Next()
	}
}

// SessionUser returns the user resolved by CurrentUser, or nil.
func SessionUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return nil
	}
	return user
}

// StartSession sets the session cookie for the given user.
func StartSession(c *fiber.Ctx, userID uint) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    strconv.FormatUint(uint64(userID), 10),
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HTTPOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
	})
}

// EndSession clears the session cookie.
func EndSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
	})
}
