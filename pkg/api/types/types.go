package types

import (
	"time"

	"chromactl/pkg/color"
	"chromactl/pkg/device"
)

// --- Request DTOs ---

// ApplyRequest is the request body for POST /apply
type ApplyRequest struct {
	Devices    []string    `json:"devices" binding:"required"`
	Color      color.Color `json:"color"`
	Effect     string      `json:"effect" binding:"required"`
	Brightness int         `json:"brightness"`
	Speed      int         `json:"speed"`
}

// ApplyAllRequest is the request body for POST /apply-all
type ApplyAllRequest struct {
	Color      color.Color `json:"color"`
	Effect     string      `json:"effect" binding:"required"`
	Brightness int         `json:"brightness"`
	Speed      int         `json:"speed"`
}

// SaveProfileRequest is the request body for POST /profiles
type SaveProfileRequest struct {
	Name            string      `json:"name" binding:"required"`
	Color           color.Color `json:"color"`
	Effect          string      `json:"effect" binding:"required"`
	Brightness      int         `json:"brightness"`
	Speed           int         `json:"speed"`
	SelectedDevices []string    `json:"selected_devices"`
}

// ImportProfilesRequest is the request body for POST /profiles/import
type ImportProfilesRequest struct {
	Path      string `json:"path" binding:"required"`
	Overwrite bool   `json:"overwrite"`
}

// ExportProfilesRequest is the request body for POST /profiles/export
type ExportProfilesRequest struct {
	Path string `json:"path" binding:"required"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Backends  []string  `json:"backends"`
	Timestamp time.Time `json:"timestamp"`
}

// ScanResponse is returned from POST /scan
type ScanResponse struct {
	Devices []device.Descriptor `json:"devices"`
	Count   int                 `json:"count"`
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices []device.Descriptor `json:"devices"`
	Count   int                 `json:"count"`
}

// DeviceResponse is returned from GET /devices/:key
type DeviceResponse struct {
	Device device.Descriptor `json:"device"`
}

// ApplyResponse is returned from POST /apply and POST /apply-all
type ApplyResponse struct {
	Results   map[string]bool `json:"results"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
}

// TurnOffResponse is returned from POST /off
type TurnOffResponse struct {
	Backends map[string]bool `json:"backends"`
}

// EffectsResponse is returned from GET /effects
type EffectsResponse struct {
	Effects []string `json:"effects"`
}

// ProfileSummary is one entry in ListProfilesResponse
type ProfileSummary struct {
	Name            string      `json:"name"`
	Color           color.Color `json:"color"`
	Effect          string      `json:"effect"`
	Brightness      int         `json:"brightness"`
	Speed           int         `json:"speed"`
	SelectedDevices []string    `json:"selected_devices"`
	Created         string      `json:"created"`
}

// ListProfilesResponse is returned from GET /profiles
type ListProfilesResponse struct {
	Profiles []ProfileSummary `json:"profiles"`
	Count    int              `json:"count"`
}

// ProfileResponse is returned from GET /profiles/:name
type ProfileResponse struct {
	Profile ProfileSummary `json:"profile"`
}

// ImportProfilesResponse is returned from POST /profiles/import
type ImportProfilesResponse struct {
	Imported int `json:"imported"`
}

// PruneProfilesResponse is returned from POST /profiles/prune
type PruneProfilesResponse struct {
	Removed int `json:"removed"`
}

// HistoryEntry is one entry in HistoryResponse
type HistoryEntry struct {
	DeviceKey  string    `json:"device_key"`
	Color      string    `json:"color"`
	Effect     string    `json:"effect"`
	Brightness int       `json:"brightness"`
	Speed      int       `json:"speed"`
	OK         bool      `json:"ok"`
	Detail     string    `json:"detail,omitempty"`
	AppliedAt  time.Time `json:"applied_at"`
}

// HistoryResponse is returned from GET /history
type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
	Count   int            `json:"count"`
}
