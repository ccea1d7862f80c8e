package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chromactl/pkg/api/types"
	"chromactl/pkg/db"
	"chromactl/pkg/device"
	"chromactl/pkg/effect"
	"chromactl/pkg/registry"
)

// ControlHandler handles apply and turn-off endpoints
type ControlHandler struct {
	registry *registry.Registry
	history  db.HistoryStore
}

// NewControlHandler creates a new control handler. history may be nil when no
// database is configured.
func NewControlHandler(reg *registry.Registry, history db.HistoryStore) *ControlHandler {
	return &ControlHandler{registry: reg, history: history}
}

func applyResponse(rep registry.Report) types.ApplyResponse {
	ok := rep.Succeeded()
	return types.ApplyResponse{
		Results:   rep,
		Succeeded: ok,
		Failed:    len(rep) - ok,
	}
}

// Apply handles POST /apply
// @Summary      Apply settings to devices
// @Description  Dispatches color, effect, brightness and speed to the selected devices. Per-device outcomes are reported; a failing device never aborts the rest.
// @Tags         control
// @Accept       json
// @Produce      json
// @Param        request  body      types.ApplyRequest  true  "Settings and target device keys"
// @Success      200      {object}  types.ApplyResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid settings"
// @Router       /apply [post]
func (h *ControlHandler) Apply(c *gin.Context) {
	var req types.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	s := device.Settings{
		Color:      req.Color,
		Effect:     req.Effect,
		Brightness: req.Brightness,
		Speed:      req.Speed,
	}
	rep, err := h.registry.Apply(c.Request.Context(), req.Devices, s)
	if err != nil {
		if errors.Is(err, device.ErrValidation) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "validation_failed",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "apply_failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, applyResponse(rep))
}

// ApplyAll handles POST /apply-all
// @Summary      Apply settings to every device
// @Description  Dispatches the settings to every device in the latest scan snapshot
// @Tags         control
// @Accept       json
// @Produce      json
// @Param        request  body      types.ApplyAllRequest  true  "Settings"
// @Success      200      {object}  types.ApplyResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid settings"
// @Router       /apply-all [post]
func (h *ControlHandler) ApplyAll(c *gin.Context) {
	var req types.ApplyAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	s := device.Settings{
		Color:      req.Color,
		Effect:     req.Effect,
		Brightness: req.Brightness,
		Speed:      req.Speed,
	}
	rep, err := h.registry.ApplyAll(c.Request.Context(), s)
	if err != nil {
		if errors.Is(err, device.ErrValidation) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "validation_failed",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "apply_failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, applyResponse(rep))
}

// TurnOff handles POST /off
// @Summary      Turn off all lighting
// @Description  Asks every registered backend to black out its devices
// @Tags         control
// @Produce      json
// @Success      200  {object}  types.TurnOffResponse
// @Router       /off [post]
func (h *ControlHandler) TurnOff(c *gin.Context) {
	rep := h.registry.TurnOffAll(c.Request.Context())
	c.JSON(http.StatusOK, types.TurnOffResponse{Backends: rep})
}

// Effects handles GET /effects
// @Summary      List effects
// @Description  Returns the logical effect names accepted by apply and profiles
// @Tags         control
// @Produce      json
// @Success      200  {object}  types.EffectsResponse
// @Router       /effects [get]
func (h *ControlHandler) Effects(c *gin.Context) {
	c.JSON(http.StatusOK, types.EffectsResponse{Effects: effect.Canonical()})
}

// History handles GET /history
// @Summary      Recent apply history
// @Description  Returns the most recent persisted apply outcomes, newest first
// @Tags         control
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries to return"
// @Success      200    {object}  types.HistoryResponse
// @Failure      503    {object}  types.ErrorResponse  "No database configured"
// @Router       /history [get]
func (h *ControlHandler) History(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
			Error:   "no_database",
			Message: "Apply history requires a configured database",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "history_error",
			Message: err.Error(),
		})
		return
	}

	entries := make([]types.HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, types.HistoryEntry{
			DeviceKey:  r.DeviceKey,
			Color:      r.Color,
			Effect:     r.Effect,
			Brightness: r.Brightness,
			Speed:      r.Speed,
			OK:         r.OK,
			Detail:     r.Detail,
			AppliedAt:  r.AppliedAt,
		})
	}
	c.JSON(http.StatusOK, types.HistoryResponse{
		History: entries,
		Count:   len(entries),
	})
}
