package device

// Category classifies the kind of hardware a descriptor refers to.
type Category string

const (
	CategoryFan         Category = "fan"
	CategoryMotherboard Category = "motherboard"
	CategoryRAM         Category = "ram"
	CategoryKeyboard    Category = "keyboard"
	CategoryMouse       Category = "mouse"
	CategoryGPU         Category = "gpu"
	CategoryCable       Category = "cable"
	CategoryMonitor     Category = "monitor"
	CategoryCase        Category = "case"
)

// Descriptor is the normalized record for a discovered device, independent of
// which vendor backend produced it. Descriptors are created fresh on every
// scan and never mutated afterwards; the next scan's results supersede them
// wholesale.
type Descriptor struct {
	// Key identifies the device within its backend and routes apply requests
	// (e.g. "openrgb_fans", "razer").
	Key string `json:"key"`
	// Name is the human-readable device name reported by the backend.
	Name string `json:"name"`
	// Backend names the controller that owns this device.
	Backend  string   `json:"backend"`
	Category Category `json:"category"`
	// Zones is the number of independently addressable lighting regions.
	Zones int `json:"zones"`
	// Effects lists the logical effect names the device supports.
	Effects []string `json:"effects"`
}
