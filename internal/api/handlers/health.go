package handlers

import (
	"net/http"

	"energy-peaks/internal/api/models"
	"energy-peaks/internal/peaks"

	"github.com/gin-gonic/gin"
)

const Slogan = "Better Energy, More Cash."

// HealthHandler answers liveness and readiness probes
type HealthHandler struct {
	store *peaks.Store
}

func NewHealthHandler(store *peaks.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.SloganResponse{Slogan: Slogan})
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.store.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "data_unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "ready",
		"usage_records": h.store.RecordCount(),
	})
}
