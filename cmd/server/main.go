package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/ribbitly/backend/internal/metrics"
	"github.com/ribbitly/backend/internal/notify"
	"github.com/ribbitly/backend/internal/router"
	"github.com/ribbitly/backend/pkg/config"
	"github.com/ribbitly/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Pick the notifier: NATS when a broker is configured, direct SMTP when a
	// mail relay is configured, otherwise log only.
	var notifier notify.Notifier
	switch {
	case cfg.NatsURL != "":
		notifier, err = notify.NewNatsNotifier(cfg.NatsURL)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		log.Println("Follower notifications published to NATS.")
	case cfg.SMTPAddr != "":
		notifier = notify.NewSMTPNotifier(cfg.SMTPAddr, cfg.SMTPFrom, cfg.BaseURL)
		log.Println("Follower notifications sent over SMTP.")
	default:
		notifier = notify.NewLogNotifier()
		log.Println("Follower notifications logged only.")
	}

	// Metrics
	m := metrics.InitMetrics()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, notifier, m)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
