package handler

import (
	"context"
	"time"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/dto"
	"compass-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports backend reachability
type HealthHandler struct {
	cache domain.Cache
	db    Pinger
}

// NewHealthHandler creates a HealthHandler. Either backend may be nil when it
// is not configured.
func NewHealthHandler(cache domain.Cache, db Pinger) *HealthHandler {
	return &HealthHandler{cache: cache, db: db}
}

// Health godoc
// @Summary Health check
// @Description Reports the service status and the reachability of Redis and the result database
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Backends: map[string]string{}}
	check := func(name string, ping func(context.Context) error) {
		if err := ping(ctx); err != nil {
			logger.Get().Warn("Health check failed", zap.String("backend", name), zap.Error(err))
			resp.Backends[name] = "down"
			resp.Status = "degraded"
			return
		}
		resp.Backends[name] = "up"
	}

	if h.cache != nil {
		check("redis", h.cache.Ping)
	} else {
		resp.Backends["redis"] = "disabled"
	}
	if h.db != nil {
		check("database", h.db.PingContext)
	} else {
		resp.Backends["database"] = "disabled"
	}

	if resp.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
