package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Provider  string `json:"provider"`
	Service   string `json:"service"`
}

// HandleHealth returns the health status of the service.
// Liveness only; a missing completion client reports degraded but still 200.
func (h *Handler) HandleHealth(c *gin.Context) {
	serviceStatus := "ready"
	status := "healthy"
	if h.svc == nil {
		serviceStatus = "unavailable"
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Provider:  h.provider,
		Service:   serviceStatus,
	})
}

// HandleReadiness returns whether the service is ready to accept traffic
func (h *Handler) HandleReadiness(c *gin.Context) {
	if h.svc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "completion_client_not_initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
