package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// HealthChecker produces a health report on demand
type HealthChecker interface {
	Check(ctx context.Context) database.HealthReport
}

// HealthHandler serves the health endpoint
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health handles the GET /health endpoint. It answers 503 while the store is unreachable.
func (h *HealthHandler) Health(c *gin.Context) {
	report := h.checker.Check(c.Request.Context())

	status := http.StatusOK
	if report.Status != database.HealthStatusUp {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
