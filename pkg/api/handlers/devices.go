package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chromactl/pkg/api/types"
	"chromactl/pkg/device"
	"chromactl/pkg/registry"
)

// DevicesHandler handles scan and device lookup endpoints
type DevicesHandler struct {
	registry *registry.Registry
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(reg *registry.Registry) *DevicesHandler {
	return &DevicesHandler{registry: reg}
}

// Scan handles POST /scan
// @Summary      Scan for devices
// @Description  Queries every backend concurrently and replaces the device snapshot
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.ScanResponse
// @Router       /scan [post]
func (h *DevicesHandler) Scan(c *gin.Context) {
	devices := h.registry.ScanAll(c.Request.Context())
	c.JSON(http.StatusOK, types.ScanResponse{
		Devices: devices,
		Count:   len(devices),
	})
}

// ListDevices handles GET /devices
// @Summary      List devices
// @Description  Returns the devices found by the most recent scan
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.ListDevicesResponse
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	devices := h.registry.Devices()
	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices: devices,
		Count:   len(devices),
	})
}

// GetDevice handles GET /devices/:key
// @Summary      Get device details
// @Description  Returns the descriptor for a single device by key
// @Tags         devices
// @Produce      json
// @Param        key  path      string  true  "Device key"
// @Success      200  {object}  types.DeviceResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{key} [get]
func (h *DevicesHandler) GetDevice(c *gin.Context) {
	key := c.Param("key")

	d, err := h.registry.Device(key)
	if err != nil {
		if errors.Is(err, device.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Device not found in the last scan",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "registry_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DeviceResponse{Device: d})
}
