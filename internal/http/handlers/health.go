package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	environment string
	started     time.Time
	now         func() time.Time
}

func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment, started: time.Now(), now: time.Now}
}

// GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	now := h.now()
	c.JSON(http.StatusOK, gin.H{
		"status":         "OK",
		"timestamp":      now.UTC().Format(time.RFC3339Nano),
		"uptime_seconds": int64(now.Sub(h.started).Seconds()),
		"environment":    h.environment,
	})
}
