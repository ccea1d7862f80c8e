package backend

import (
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"chromactl/pkg/device"
	"chromactl/pkg/effect"
)

// OpenRGB SDK protocol command IDs.
const (
	orgbRequestControllerCount = 0
	orgbSetClientName          = 50
	orgbUpdateLEDs             = 1050
)

// orgbMagic prefixes every SDK packet.
var orgbMagic = [4]byte{'O', 'R', 'G', 'B'}

// OpenRGBConfig is the fixed loopback endpoint of the local OpenRGB SDK
// server, read from the settings document.
type OpenRGBConfig struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// OpenRGB talks to the local OpenRGB SDK server over its framed TCP protocol
// and exposes every controller it reports as the ARGB fan group.
type OpenRGB struct {
	cfg   OpenRGBConfig
	state device.ConnState

	mu    sync.Mutex
	conn  net.Conn
	count int
}

// NewOpenRGB creates the OpenRGB backend. The connection is established
// lazily on the first scan or apply.
func NewOpenRGB(cfg OpenRGBConfig) *OpenRGB {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &OpenRGB{cfg: cfg}
}

func (o *OpenRGB) Name() string { return "openrgb" }

// SupportedEffects reports the logical effects OpenRGB device modes commonly
// cover.
func (o *OpenRGB) SupportedEffects() []string {
	return []string{effect.Static, effect.Breathing, effect.Wave, effect.Rainbow, effect.SpectrumCycle, effect.Reactive}
}

// connectLocked dials the SDK server and registers the client name. Caller
// must hold o.mu.
func (o *OpenRGB) connectLocked(ctx context.Context) error {
	if o.conn != nil {
		return nil
	}

	addr := net.JoinHostPort(o.cfg.Host, fmt.Sprintf("%d", o.cfg.Port))
	d := net.Dialer{Timeout: o.cfg.Timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		o.state.SetUnavailable(fmt.Sprintf("OpenRGB server unreachable at %s", addr))
		return fmt.Errorf("%w: dial %s: %v", device.ErrUnavailable, addr, err)
	}

	o.conn = conn
	if err := o.sendPacket(0, orgbSetClientName, append([]byte("chromactl"), 0)); err != nil {
		o.dropLocked()
		return err
	}

	o.state.SetConnected()
	log.Info().Str("addr", addr).Msg("connected to OpenRGB server")
	return nil
}

// dropLocked closes the connection so the next call retries. Caller must
// hold o.mu.
func (o *OpenRGB) dropLocked() {
	if o.conn != nil {
		_ = o.conn.Close()
		o.conn = nil
	}
	o.state.SetDisconnected()
}

// sendPacket writes one framed SDK packet. Caller must hold o.mu.
func (o *OpenRGB) sendPacket(deviceID, command uint32, payload []byte) error {
	header := make([]byte, 16)
	copy(header, orgbMagic[:])
	binary.LittleEndian.PutUint32(header[4:], deviceID)
	binary.LittleEndian.PutUint32(header[8:], command)
	binary.LittleEndian.PutUint32(header[12:], uint32(len(payload)))

	_ = o.conn.SetWriteDeadline(time.Now().Add(o.cfg.Timeout))
	if _, err := o.conn.Write(append(header, payload...)); err != nil {
		return fmt.Errorf("write packet: %w", err)
	}
	return nil
}

// readPacket reads one framed SDK response. Caller must hold o.mu.
func (o *OpenRGB) readPacket() (uint32, []byte, error) {
	header := make([]byte, 16)
	_ = o.conn.SetReadDeadline(time.Now().Add(o.cfg.Timeout))
	if _, err := readFull(o.conn, header); err != nil {
		return 0, nil, fmt.Errorf("read header: %w", err)
	}
	if [4]byte(header[:4]) != orgbMagic {
		return 0, nil, fmt.Errorf("bad packet magic %q", header[:4])
	}
	command := binary.LittleEndian.Uint32(header[8:])
	size := binary.LittleEndian.Uint32(header[12:])

	payload := make([]byte, size)
	if _, err := readFull(o.conn, payload); err != nil {
		return 0, nil, fmt.Errorf("read payload: %w", err)
	}
	return command, payload, nil
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// controllerCountLocked queries how many RGB controllers the server manages.
// Caller must hold o.mu.
func (o *OpenRGB) controllerCountLocked() (int, error) {
	if err := o.sendPacket(0, orgbRequestControllerCount, nil); err != nil {
		return 0, err
	}
	_, payload, err := o.readPacket()
	if err != nil {
		return 0, err
	}
	if len(payload) < 4 {
		return 0, fmt.Errorf("short controller count payload")
	}
	return int(binary.LittleEndian.Uint32(payload)), nil
}

// Scan connects to the SDK server and reports the ARGB fan group with one
// zone per controller the server manages.
func (o *OpenRGB) Scan(ctx context.Context) ([]device.Descriptor, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.connectLocked(ctx); err != nil {
		return nil, err
	}

	count, err := o.controllerCountLocked()
	if err != nil {
		o.dropLocked()
		return nil, fmt.Errorf("%w: %v", device.ErrUnavailable, err)
	}
	o.count = count

	if count == 0 {
		return []device.Descriptor{}, nil
	}
	return []device.Descriptor{{
		Key:      "openrgb_fans",
		Name:     fmt.Sprintf("ARGB Fans (%d OpenRGB controllers)", count),
		Backend:  o.Name(),
		Category: device.CategoryFan,
		Zones:    count,
		Effects:  o.SupportedEffects(),
	}}, nil
}

// Apply broadcasts the brightness-scaled color to every controller the last
// scan found. A dropped connection is retried once.
func (o *OpenRGB) Apply(ctx context.Context, key string, s device.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	scaled, err := s.Color.ScaleBrightness(s.Brightness)
	if err != nil {
		return fmt.Errorf("%w: %v", device.ErrValidation, err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.connectLocked(ctx); err != nil {
		return err
	}
	if o.count == 0 {
		count, err := o.controllerCountLocked()
		if err != nil {
			o.dropLocked()
			return fmt.Errorf("%w: %v", device.ErrUnavailable, err)
		}
		o.count = count
	}

	// Direct-mode color update: 4 bytes per LED entry, single entry
	// broadcast per controller.
	payload := make([]byte, 10)
	binary.LittleEndian.PutUint32(payload, uint32(len(payload)))
	binary.LittleEndian.PutUint16(payload[4:], 1)
	payload[6] = byte(scaled.R)
	payload[7] = byte(scaled.G)
	payload[8] = byte(scaled.B)

	applied := 0
	for id := 0; id < o.count; id++ {
		if err := o.sendPacket(uint32(id), orgbUpdateLEDs, payload); err != nil {
			log.Warn().Int("controller", id).Err(err).Msg("openrgb update failed")
			o.dropLocked()
			break
		}
		applied++
	}
	if applied == 0 {
		return fmt.Errorf("%w: no controllers updated", device.ErrUnavailable)
	}
	return nil
}

// TurnOff blacks out every controller.
func (o *OpenRGB) TurnOff(ctx context.Context) error {
	return o.Apply(ctx, "openrgb_fans", device.Off())
}

// Close releases the SDK connection.
func (o *OpenRGB) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dropLocked()
}
