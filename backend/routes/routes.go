package routes

import (
	"growthlog/backend/config"
	"growthlog/backend/controllers"
	"growthlog/backend/session"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, sessions *session.Registry, cfg *config.Config) {
	// Dashboard pages
	dashboardController := controllers.NewDashboardController(sessions, cfg)
	app.Get("/", dashboardController.Show)
	app.Post("/quick-log", dashboardController.QuickLog)
	app.Post("/entries", dashboardController.CreateEntry)

	// Progress API
	progressController := controllers.NewProgressController(sessions, cfg)
	api := app.Group("/api")
	api.Get("/health", progressController.Health)
	api.Get("/resources", progressController.GetResources)

	progress := api.Group("/progress")
	progress.Get("/", progressController.GetProgress)
	progress.Post("/", progressController.CreateEntry)
	progress.Get("/overview", progressController.GetProgressOverview)
	progress.Post("/quick", progressController.QuickLog)
}
