package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chromactl/pkg/api/types"
	"chromactl/pkg/registry"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	registry *registry.Registry
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(reg *registry.Registry) *HealthHandler {
	return &HealthHandler{registry: reg}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the service status and the registered lighting backends
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "healthy",
		Backends:  h.registry.Backends(),
		Timestamp: time.Now(),
	})
}
