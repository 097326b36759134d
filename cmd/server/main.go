package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/http/middleware"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/http/routes"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/persistence/models"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/config"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/docs" // Swagger docs
)

// @title API Capuchinhos Marabá
// @version 1.0
// @description API de publicação de documentos da Fraternidade Capuchinhos Marabá

// @contact.name Comunicação Capuchinhos Marabá
// @contact.email comunicacao@capuchinhosmaraba.org

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the first admin account from env when none exists
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Storage engine needs its directories before the first upload arrives
	storage := services.NewStorageService(cfg)
	if err := os.MkdirAll(storage.TempDir(), 0o755); err != nil {
		log.Fatalf("❌ Failed to create upload directories: %v", err)
	}

	// Nightly sweep of abandoned temp uploads
	cleanup := services.NewCleanupService(storage)
	cleanup.Start()
	defer cleanup.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "API Capuchinhos Marabá v1.0",
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg, storage)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	log.Printf("📂 Uploads stored at %s", filepath.Clean(cfg.Storage.UploadDir))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
