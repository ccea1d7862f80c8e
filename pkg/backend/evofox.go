package backend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"

	"chromactl/pkg/device"
	"chromactl/pkg/effect"
)

// evofoxEffectCodes maps logical effects to the keyboard's protocol codes.
var evofoxEffectCodes = map[string]byte{
	effect.Static:        0x01,
	effect.Breathing:     0x02,
	effect.Wave:          0x03,
	effect.Rainbow:       0x04,
	effect.SpectrumCycle: 0x05,
	effect.Reactive:      0x06,
}

// EvofoxConfig selects the serial bridge the Ronin keyboard's wireless
// receiver exposes.
type EvofoxConfig struct {
	Port    string // e.g. "COM5" or "/dev/ttyUSB0"
	Timeout time.Duration
}

// Evofox drives the Ronin wireless keyboard by framing RGB commands directly
// over the receiver's serial bridge.
type Evofox struct {
	cfg   EvofoxConfig
	state device.ConnState

	mu   sync.Mutex
	port serial.Port
}

// NewEvofox creates the Evofox backend. The port is opened lazily.
func NewEvofox(cfg EvofoxConfig) *Evofox {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Evofox{cfg: cfg}
}

func (e *Evofox) Name() string { return "evofox" }

func (e *Evofox) SupportedEffects() []string {
	return []string{effect.Static, effect.Breathing, effect.Wave, effect.Rainbow, effect.SpectrumCycle, effect.Reactive}
}

// openLocked opens the serial bridge. Caller must hold e.mu.
func (e *Evofox) openLocked() error {
	if e.port != nil {
		return nil
	}
	if e.cfg.Port == "" {
		e.state.SetUnavailable("no serial port configured")
		return fmt.Errorf("%w: evofox serial port not configured", device.ErrUnavailable)
	}

	mode := &serial.Mode{BaudRate: 115200}
	port, err := serial.Open(e.cfg.Port, mode)
	if err != nil {
		e.state.SetUnavailable(fmt.Sprintf("serial port %s: %v", e.cfg.Port, err))
		return fmt.Errorf("%w: open %s: %v", device.ErrUnavailable, e.cfg.Port, err)
	}
	_ = port.SetReadTimeout(e.cfg.Timeout)

	e.port = port
	e.state.SetConnected()
	log.Info().Str("port", e.cfg.Port).Msg("opened Evofox serial bridge")
	return nil
}

// dropLocked closes the port so the next call retries. Caller must hold e.mu.
func (e *Evofox) dropLocked() {
	if e.port != nil {
		_ = e.port.Close()
		e.port = nil
	}
	e.state.SetDisconnected()
}

// Scan reports the keyboard when its serial bridge can be opened.
func (e *Evofox) Scan(ctx context.Context) ([]device.Descriptor, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.openLocked(); err != nil {
		return nil, err
	}

	return []device.Descriptor{{
		Key:      "evofox",
		Name:     "Evofox Ronin Wireless Keyboard",
		Backend:  e.Name(),
		Category: device.CategoryKeyboard,
		Zones:    6,
		Effects:  e.SupportedEffects(),
	}}, nil
}

// frame builds the keyboard's RGB control report: report ID, set-RGB command,
// all-zones selector, color, effect code, speed and brightness scaled to the
// device's 0-255 range, and a trailing additive checksum.
func frame(s device.Settings) []byte {
	code, ok := evofoxEffectCodes[s.Effect]
	if !ok {
		code = evofoxEffectCodes[effect.Static]
	}

	buf := []byte{
		0x06, // RGB control report
		0x01, // set RGB command
		0xFF, // all zones
		byte(s.Color.R),
		byte(s.Color.G),
		byte(s.Color.B),
		code,
		byte(s.Speed * 255 / 100),
		byte(s.Brightness * 255 / 100),
	}
	var sum byte
	for _, b := range buf {
		sum += b
	}
	return append(buf, sum)
}

// Apply frames the settings onto the serial bridge.
func (e *Evofox) Apply(ctx context.Context, key string, s device.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.openLocked(); err != nil {
		return err
	}

	if _, err := e.port.Write(frame(s)); err != nil {
		e.dropLocked()
		return fmt.Errorf("%w: write frame: %v", device.ErrUnavailable, err)
	}
	return nil
}

// TurnOff blacks out all keyboard zones.
func (e *Evofox) TurnOff(ctx context.Context) error {
	return e.Apply(ctx, "evofox", device.Off())
}

// Close releases the serial bridge.
func (e *Evofox) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dropLocked()
}
