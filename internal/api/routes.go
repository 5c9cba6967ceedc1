package api

import (
	"strings"
	"time"

	"github.com/bilgisen/factcheck/internal/config"
	"github.com/bilgisen/factcheck/internal/metrics"
	"github.com/bilgisen/factcheck/internal/middleware"
	"github.com/bilgisen/factcheck/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// NewApp builds the Fiber app with all routes and middleware attached.
func NewApp(cfg *config.Config, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTPTimeout,
		WriteTimeout:          cfg.HTTPTimeout,
		IdleTimeout:           120 * time.Second,
		ErrorHandler:          middleware.ErrorHandler,
		DisableStartupMessage: !cfg.IsDevelopment(),
	})

	SetupRoutes(app, NewHandlers(cfg, m), cfg)

	return app
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, handlers *Handlers, cfg *config.Config) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		// Browsers reject credentials with a wildcard origin.
		AllowCredentials: cfg.AllowOrigins != "*",
	}))

	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(handlers.metrics.Handler()))

	app.Post("/fact-check", middleware.ParseBody[models.FactCheckRequest](), handlers.FactCheck)

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
