package main

import (
	"log"

	"growthlog/backend/config"
	"growthlog/backend/routes"
	"growthlog/backend/session"
	"growthlog/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		EnableColors: cfg.LogColors,
	})

	// One state per browser session, dropped after SESSION_TTL of inactivity
	sessions := session.NewRegistry(cfg.SessionTTL)

	app := routes.NewApp(cfg, sessions, logger)

	logger.Printf("listening on :%s (session ttl %s)", cfg.ServerPort, cfg.SessionTTL)
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
