package device

import "context"

// Controller is the contract every vendor backend implements. Each backend
// normalizes its own integration style (network SDK, local HTTP SDK, hardware
// enumeration, direct protocol framing) behind these five operations.
//
// Scan and Apply bound their external calls with the context deadline the
// dispatcher supplies; a backend must never block past it. Backend-internal
// faults surface as errors here and are absorbed into empty/false outcomes at
// the registry boundary.
type Controller interface {
	// Name returns the backend identifier used in the device-key mapping
	// table (e.g. "openrgb", "razer").
	Name() string

	// Scan discovers the devices this backend currently owns. An unreachable
	// vendor integration yields ErrUnavailable, not a panic; a reachable one
	// with no hardware yields an empty slice.
	Scan(ctx context.Context) ([]Descriptor, error)

	// Apply applies settings to the device identified by key. The backend
	// validates settings before dispatch and attempts one reconnect if it is
	// currently disconnected.
	Apply(ctx context.Context, key string, s Settings) error

	// TurnOff sets every device owned by this backend to black/static/zero
	// brightness. Partial success counts as success.
	TurnOff(ctx context.Context) error

	// SupportedEffects returns the backend's logical effect capability list.
	// It is static and does not depend on connection state.
	SupportedEffects() []string
}
