package mcp

import (
	"chromactl/pkg/device"
)

// --- Scan / List Devices Tools ---

// ScanDevicesOutput is the output for the scan_devices tool
type ScanDevicesOutput struct {
	Devices []DeviceInfo `json:"devices" jsonschema:"description=Devices found by the scan"`
	Count   int          `json:"count" jsonschema:"description=Total number of devices"`
}

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices []DeviceInfo `json:"devices" jsonschema:"description=Devices from the most recent scan"`
	Count   int          `json:"count" jsonschema:"description=Total number of devices"`
}

// DeviceInfo represents a device in tool outputs
type DeviceInfo struct {
	Key      string   `json:"key" jsonschema:"description=Stable device key used to target the device"`
	Name     string   `json:"name" jsonschema:"description=Human-readable device name"`
	Backend  string   `json:"backend" jsonschema:"description=Backend that controls the device"`
	Category string   `json:"category" jsonschema:"description=Device category (fan/motherboard/ram/keyboard/mouse/gpu/cable)"`
	Zones    int      `json:"zones" jsonschema:"description=Number of addressable lighting zones"`
	Effects  []string `json:"effects,omitempty" jsonschema:"description=Native effect modes the device advertises"`
}

// --- Apply Tools ---

// ApplyOutput is the output for the apply_settings and apply_to_all tools
type ApplyOutput struct {
	Results   map[string]bool `json:"results" jsonschema:"description=Per-device apply outcome"`
	Succeeded int             `json:"succeeded" jsonschema:"description=Number of devices that applied cleanly"`
	Failed    int             `json:"failed" jsonschema:"description=Number of devices that failed"`
}

// TurnOffAllOutput is the output for the turn_off_all tool
type TurnOffAllOutput struct {
	Backends map[string]bool `json:"backends" jsonschema:"description=Per-backend turn-off outcome"`
}

// ListEffectsOutput is the output for the list_effects tool
type ListEffectsOutput struct {
	Effects []string `json:"effects" jsonschema:"description=Accepted logical effect names"`
}

// --- Profile Tools ---

// ProfileInfo represents a saved profile in tool outputs
type ProfileInfo struct {
	Name            string   `json:"name" jsonschema:"description=Profile name"`
	Color           string   `json:"color" jsonschema:"description=Hex color"`
	Effect          string   `json:"effect" jsonschema:"description=Effect name"`
	Brightness      int      `json:"brightness" jsonschema:"description=Brightness percent"`
	Speed           int      `json:"speed" jsonschema:"description=Animation speed"`
	SelectedDevices []string `json:"selected_devices,omitempty" jsonschema:"description=Device keys the profile targets"`
	Created         string   `json:"created" jsonschema:"description=ISO8601 creation timestamp"`
}

// SaveProfileOutput is the output for the save_profile tool
type SaveProfileOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the profile was saved"`
	Message string `json:"message" jsonschema:"description=Status message"`
}

// ListProfilesOutput is the output for the list_profiles tool
type ListProfilesOutput struct {
	Profiles []ProfileInfo `json:"profiles" jsonschema:"description=Saved profiles"`
	Count    int           `json:"count" jsonschema:"description=Total number of profiles"`
}

// DeleteProfileOutput is the output for the delete_profile tool
type DeleteProfileOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the profile was deleted"`
	Message string `json:"message" jsonschema:"description=Status message"`
}

// --- Helper conversions ---

// DescriptorToInfo converts a device.Descriptor to DeviceInfo
func DescriptorToInfo(d device.Descriptor) DeviceInfo {
	return DeviceInfo{
		Key:      d.Key,
		Name:     d.Name,
		Backend:  d.Backend,
		Category: string(d.Category),
		Zones:    d.Zones,
		Effects:  d.Effects,
	}
}
