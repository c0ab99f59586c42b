package main

import (
	"log"

	"github.com/dioncoinz/sibw-backend/internal/app"
	"github.com/dioncoinz/sibw-backend/pkg/logger"
)

func main() {
	// Initialize application (config path resolved from SIBW_CONFIG or default)
	application, err := app.Initialize("")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer logger.Sync()

	// Start HTTP server (blocks until shutdown signal)
	app.StartServer(application.Config, application.Handlers, application.Services)
}
