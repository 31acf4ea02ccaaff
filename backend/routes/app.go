package routes

import (
	"growthlog/backend/config"
	"growthlog/backend/middleware"
	"growthlog/backend/session"
	"growthlog/backend/utils"
	"growthlog/backend/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber app with views, middleware and routes.
func NewApp(cfg *config.Config, sessions *session.Registry, logger *utils.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Growth Journal",
		Views:        views.NewEngine(),
		ErrorHandler: utils.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: middleware.SessionHeader,
	}))
	app.Use(middleware.LoggingMiddleware(logger))
	app.Use(middleware.SessionMiddleware(cfg))

	SetupRoutes(app, sessions, cfg)
	return app
}
