package api

import (
	"context"
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed web/index.html
var indexHTML []byte

// Home serves the static landing page
func Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler reports database reachability
type HealthHandler struct {
	db  HealthChecker
	log *zap.Logger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db HealthChecker, log *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		h.log.Warn("Database health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
