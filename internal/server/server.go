// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"launchbase/internal/config"
	"launchbase/internal/middleware"
	"launchbase/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	store  store.Store
}

// NewServer creates a new server instance. The store may be nil when the
// document store could not be reached at startup; handlers that need it then
// report unavailability instead of crashing.
func NewServer(cfg *config.Config, st store.Store) *Server {
	return &Server{config: cfg, store: st}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware
	app.Use(middleware.StructuredLogger())

	// CORS middleware; the marketing site is served from arbitrary origins
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Root)
	app.Get("/test", s.TestStore)
	app.Get("/schema", s.Schema)

	// Process stats page
	app.Get("/metrics", monitor.New(monitor.Config{
		Title: "Launchbase Backend Metrics",
	}))

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", s.Register)
	auth.Post("/login", s.Login)

	api.Get("/blogs", s.ListBlogs)
	api.Post("/contact", s.Contact)
}
