package handler

import (
	"log/slog"
	"net/http"

	"unigate/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness for load balancers and probes.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Healthz checks the database connection and reports service health.
func (h *HealthHandler) Healthz(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		h.logger.Warn("Health check failed to obtain database handle", slog.Any("error", err))
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNREACHABLE", "Database is unreachable", err.Error())
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		h.logger.Warn("Health check database ping failed", slog.Any("error", err))
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNREACHABLE", "Database is unreachable", err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"status": "ok",
	}, "Service is healthy")
}
