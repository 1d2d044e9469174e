package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linearconnect/platform/models"
)

// Health serves the liveness and smoke-test endpoints.
type Health struct {
	Integrations models.IntegrationRepo
	Usage        models.UsageRepo
	Env          string
	Started      time.Time
}

// Check reports process health and aggregate counters.
func (h Health) Check(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":       "healthy",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"integrations": h.Integrations.Count(),
		"totalTickets": h.Usage.TotalTickets(),
		"uptime":       int(time.Since(h.Started).Seconds()),
	})
}

// Test is an unauthenticated probe for frontend smoke tests.
func (h Health) Test(c *gin.Context) {
	c.JSON(200, gin.H{
		"message":     "Linear Connect API is working!",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.Env,
	})
}
