package routes

import (
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/http/handlers"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/http/middleware"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/persistence/repositories"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/config"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, storage *services.StorageService) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	docRepo := repositories.NewDocumentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	docService := services.NewDocumentService(docRepo, storage)
	demandService := services.NewDemandService(cfg.Demand.Endpoint)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	docHandler := handlers.NewDocumentHandler(docService, storage)
	demandHandler := handlers.NewDemandHandler(demandService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded files are served straight from disk for the public site
	app.Static("/uploads", cfg.Storage.UploadDir)

	api := app.Group("/api")
	api.Get("/health", healthHandler.HealthCheck)

	// Auth routes
	authRoutes := api.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Public document routes (no auth, read-only, active documents)
	publicRoutes := api.Group("/documentos/publicos")
	setupPublicDocumentRoutes(publicRoutes, docHandler)

	// Document management routes (authenticated staff)
	docRoutes := api.Group("/documentos")
	docRoutes.Use(middleware.AuthMiddleware(cfg))
	setupDocumentRoutes(docRoutes, docHandler)

	// User management routes (Admin only)
	userRoutes := api.Group("/usuarios")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.AdminOnly())
	setupUserRoutes(userRoutes, userHandler)

	// Community demand relay (public, strictly rate limited)
	api.Post("/demanda", middleware.StrictRateLimiter(), demandHandler.Send)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (5 req/min/IP against brute force)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/logout", handler.Logout)

	// Account creation is restricted to admins
	router.Post("/registrar", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.Register)
}

// setupPublicDocumentRoutes configures the anonymous read-only routes
func setupPublicDocumentRoutes(router fiber.Router, handler *handlers.DocumentHandler) {
	router.Get("/", handler.ListPublic)
	router.Get("/:id", handler.GetByID)
	router.Get("/:id/download", handler.Download)
}

// setupDocumentRoutes configures staff document management routes
func setupDocumentRoutes(router fiber.Router, handler *handlers.DocumentHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.ListAll)
	router.Get("/paginado", handler.ListPaginated)
	router.Get("/estatisticas", handler.Stats)
	router.Get("/:id", handler.GetByID)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupUserRoutes configures user management routes (Admin only)
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.GetByID)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}
