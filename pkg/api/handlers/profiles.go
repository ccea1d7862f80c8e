package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"chromactl/pkg/api/types"
	"chromactl/pkg/device"
	"chromactl/pkg/profile"
	"chromactl/pkg/registry"
)

// ProfilesHandler handles profile persistence endpoints
type ProfilesHandler struct {
	store    *profile.Store
	registry *registry.Registry
}

// NewProfilesHandler creates a new profiles handler
func NewProfilesHandler(store *profile.Store, reg *registry.Registry) *ProfilesHandler {
	return &ProfilesHandler{store: store, registry: reg}
}

func summarize(name string, p profile.Profile) types.ProfileSummary {
	return types.ProfileSummary{
		Name:            name,
		Color:           p.Color,
		Effect:          p.Effect,
		Brightness:      p.Brightness,
		Speed:           p.Speed,
		SelectedDevices: p.SelectedDevices,
		Created:         p.Created.Format(time.RFC3339),
	}
}

// ListProfiles handles GET /profiles
// @Summary      List profiles
// @Description  Returns every saved profile, sorted by name
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  types.ListProfilesResponse
// @Router       /profiles [get]
func (h *ProfilesHandler) ListProfiles(c *gin.Context) {
	names := h.store.List()
	profiles := make([]types.ProfileSummary, 0, len(names))
	for _, name := range names {
		p, err := h.store.Load(name)
		if err != nil {
			continue
		}
		profiles = append(profiles, summarize(name, p))
	}
	c.JSON(http.StatusOK, types.ListProfilesResponse{
		Profiles: profiles,
		Count:    len(profiles),
	})
}

// GetProfile handles GET /profiles/:name
// @Summary      Get a profile
// @Description  Returns a single saved profile by name
// @Tags         profiles
// @Produce      json
// @Param        name  path      string  true  "Profile name"
// @Success      200   {object}  types.ProfileResponse
// @Failure      404   {object}  types.ErrorResponse  "Profile not found"
// @Router       /profiles/{name} [get]
func (h *ProfilesHandler) GetProfile(c *gin.Context) {
	name := c.Param("name")

	p, err := h.store.Load(name)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "store_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.ProfileResponse{Profile: summarize(name, p)})
}

// SaveProfile handles POST /profiles
// @Summary      Save a profile
// @Description  Creates or overwrites a named profile. The settings are validated before anything is persisted.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request  body      types.SaveProfileRequest  true  "Profile contents"
// @Success      201      {object}  types.ProfileResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid profile"
// @Router       /profiles [post]
func (h *ProfilesHandler) SaveProfile(c *gin.Context) {
	var req types.SaveProfileRequest
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
	if err := h.store.Save(req.Name, s, req.SelectedDevices); err != nil {
		if errors.Is(err, device.ErrValidation) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "validation_failed",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "store_error",
			Message: err.Error(),
		})
		return
	}

	p, err := h.store.Load(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "store_error",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, types.ProfileResponse{Profile: summarize(req.Name, p)})
}

// ApplyProfile handles POST /profiles/:name/apply
// @Summary      Apply a profile
// @Description  Loads the named profile and dispatches its settings to its selected devices
// @Tags         profiles
// @Produce      json
// @Param        name  path      string  true  "Profile name"
// @Success      200   {object}  types.ApplyResponse
// @Failure      404   {object}  types.ErrorResponse  "Profile not found"
// @Router       /profiles/{name}/apply [post]
func (h *ProfilesHandler) ApplyProfile(c *gin.Context) {
	name := c.Param("name")

	p, err := h.store.Load(name)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "store_error",
			Message: err.Error(),
		})
		return
	}

	rep, err := h.registry.Apply(c.Request.Context(), p.SelectedDevices, p.Settings())
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "apply_failed",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, applyResponse(rep))
}

// DeleteProfile handles DELETE /profiles/:name
// @Summary      Delete a profile
// @Description  Removes the named profile
// @Tags         profiles
// @Produce      json
// @Param        name  path  string  true  "Profile name"
// @Success      204   "Profile deleted"
// @Failure      404   {object}  types.ErrorResponse  "Profile not found"
// @Router       /profiles/{name} [delete]
func (h *ProfilesHandler) DeleteProfile(c *gin.Context) {
	name := c.Param("name")

	removed, err := h.store.Delete(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "store_error",
			Message: err.Error(),
		})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "Profile not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// ImportProfiles handles POST /profiles/import
// @Summary      Import profiles
// @Description  Merges profiles from an export document. Invalid entries are skipped; existing names are kept unless overwrite is set.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request  body      types.ImportProfilesRequest  true  "Import source"
// @Success      200      {object}  types.ImportProfilesResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid import document"
// @Router       /profiles/import [post]
func (h *ProfilesHandler) ImportProfiles(c *gin.Context) {
	var req types.ImportProfilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	imported, err := h.store.Import(req.Path, req.Overwrite)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "import_failed",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.ImportProfilesResponse{Imported: imported})
}

// ExportProfiles handles POST /profiles/export
// @Summary      Export profiles
// @Description  Writes every saved profile to an interchange document at the given path
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request  body  types.ExportProfilesRequest  true  "Export destination"
// @Success      204      "Profiles exported"
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Router       /profiles/export [post]
func (h *ProfilesHandler) ExportProfiles(c *gin.Context) {
	var req types.ExportProfilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	if err := h.store.Export(req.Path); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "export_failed",
			Message: err.Error(),
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// PruneProfiles handles POST /profiles/prune
// @Summary      Prune old profiles
// @Description  Deletes profiles older than the given number of days
// @Tags         profiles
// @Produce      json
// @Param        days  query     int  false  "Age cutoff in days (default 30)"
// @Success      200   {object}  types.PruneProfilesResponse
// @Router       /profiles/prune [post]
func (h *ProfilesHandler) PruneProfiles(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "days must be a positive integer",
		})
		return
	}

	removed, err := h.store.PruneOlderThan(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "store_error",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.PruneProfilesResponse{Removed: removed})
}
