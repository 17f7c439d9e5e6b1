package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"crewledger/internal/adapters/http/middleware"
	"crewledger/internal/adapters/http/routes"
	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/adapters/persistence/repositories"
	"crewledger/internal/config"
	"crewledger/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "crewledger/docs" // Swagger docs
)

// @title CrewLedger API
// @version 1.0
// @description Business management API: personnel, timesheets, projects, finances and company messaging.

// @contact.name API Support
// @contact.email support@crewledger.io

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Background jobs: session sweep and timesheet reminders
	sessionRepo := repositories.NewSessionRepository(db)
	notifyService := services.NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewUserRepository(db),
	)
	cronService := services.NewCronService(db, sessionRepo, notifyService)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CrewLedger API v1.0",
		ErrorHandler: middleware.ErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
