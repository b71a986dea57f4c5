package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdelrhman012/parking-reservations-system/pkg/response"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	serviceName string
	version     string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "ok",
		"service": h.serviceName,
		"version": h.version,
	})
}
