package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dashboard/backend/internal/infrastructure/logger"
	"github.com/dashboard/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger checks that a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process and database health
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health. An unreachable database answers 503.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.L(c.Request.Context()).Warn("Database health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unhealthy", Database: "down"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Database: "up"})
}
