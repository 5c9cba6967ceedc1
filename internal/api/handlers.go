package api

import (
	"errors"
	"time"

	"github.com/bilgisen/factcheck/internal/config"
	"github.com/bilgisen/factcheck/internal/factcheck"
	"github.com/bilgisen/factcheck/internal/metrics"
	"github.com/bilgisen/factcheck/internal/middleware"
	"github.com/bilgisen/factcheck/internal/models"
	"github.com/gofiber/fiber/v2"
)

// Version is reported by the health check.
var Version = "1.0.0"

type Handlers struct {
	service *factcheck.Service
	metrics *metrics.Metrics
}

func NewHandlers(cfg *config.Config, m *metrics.Metrics) *Handlers {
	client := factcheck.NewClient(cfg, m)

	return &Handlers{
		service: factcheck.NewService(client, factcheck.NewMapper(cfg.RatingSource), m),
		metrics: m,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
		"time":    time.Now().Format(time.RFC3339),
	})
}

// FactCheck handles POST /fact-check
func (h *Handlers) FactCheck(c *fiber.Ctx) error {
	req, ok := middleware.Body[models.FactCheckRequest](c)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, middleware.DetailInvalidBody)
	}

	resp, err := h.service.Check(c.UserContext(), *req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(resp)
}

func httpError(err error) error {
	var validationErr *factcheck.ValidationError
	if errors.As(err, &validationErr) {
		return fiber.NewError(fiber.StatusBadRequest, validationErr.Detail)
	}

	var upstreamErr *factcheck.UpstreamError
	if errors.As(err, &upstreamErr) {
		return fiber.NewError(fiber.StatusInternalServerError, factcheck.DetailUpstream)
	}

	return err
}
