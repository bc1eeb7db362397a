package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/cityserv/cityserv/db"
	"github.com/cityserv/cityserv/middleware"
	"github.com/cityserv/cityserv/redis"
	"github.com/cityserv/cityserv/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowCredentials: false,
	}))
	app.Use(middleware.CurrentUser())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("CityServ API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupProviderRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
