// Package registry owns the set of lighting backends, the scan snapshot,
// and the dispatch of settings to devices by key.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"chromactl/pkg/backend"
	"chromactl/pkg/config"
	"chromactl/pkg/device"
	"chromactl/pkg/effect"
)

const (
	// ScanTimeout bounds a full device scan across all backends.
	ScanTimeout = 15 * time.Second
	// ApplyTimeout bounds a single backend apply call.
	ApplyTimeout = 5 * time.Second
)

// backendForKey routes each device key to the backend that owns it.
var backendForKey = map[string]string{
	"openrgb_fans": "openrgb",
	"msi":          "msi",
	"lian_li":      "lian_li",
	"gskill":       "gskill",
	"evofox":       "evofox",
	"razer":        "razer",
	"asrock":       "asrock",
}

// Recorder receives scan and apply events for persistence. Implementations
// must be safe for concurrent use.
type Recorder interface {
	RecordScan(ctx context.Context, descriptors []device.Descriptor) error
	RecordApply(ctx context.Context, key string, s device.Settings, ok bool, detail string) error
}

// Registry holds the configured backends and the latest scan snapshot.
type Registry struct {
	controllers map[string]device.Controller
	rec         Recorder

	mu       sync.RWMutex
	snapshot map[string]device.Descriptor
}

// New builds a registry over the given controllers, indexed by their names.
func New(controllers ...device.Controller) *Registry {
	m := make(map[string]device.Controller, len(controllers))
	for _, c := range controllers {
		m[c.Name()] = c
	}
	return &Registry{
		controllers: m,
		snapshot:    map[string]device.Descriptor{},
	}
}

// NewDefault wires every supported backend from the settings document.
func NewDefault(cfg *config.Config) *Registry {
	return New(
		backend.NewOpenRGB(backend.OpenRGBConfig{
			Host: cfg.OpenRGB.Host,
			Port: cfg.OpenRGB.Port,
		}),
		backend.NewRazer(backend.RazerConfig{
			Timeout: time.Duration(cfg.Razer.SDKTimeout) * time.Millisecond,
		}),
		backend.NewEvofox(backend.EvofoxConfig{Port: cfg.Devices.EvofoxPort}),
		backend.NewMSI(),
		backend.NewLianLi(),
		backend.NewGSkill(),
		backend.NewASRock(),
	)
}

// SetRecorder attaches a persistence sink for scan and apply events.
func (r *Registry) SetRecorder(rec Recorder) { r.rec = rec }

// Backends lists the registered backend names, sorted.
func (r *Registry) Backends() []string {
	names := make([]string, 0, len(r.controllers))
	for name := range r.controllers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Controller returns the backend owning the given device key.
func (r *Registry) Controller(key string) (device.Controller, error) {
	name, ok := backendForKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown device key %q", device.ErrNotFound, key)
	}
	c, ok := r.controllers[name]
	if !ok {
		return nil, fmt.Errorf("%w: backend %q not registered", device.ErrNotFound, name)
	}
	return c, nil
}

// ScanAll queries every backend concurrently and replaces the snapshot with
// the union of their results. A failing backend contributes nothing; it never
// blocks or fails the scan as a whole.
func (r *Registry) ScanAll(ctx context.Context) []device.Descriptor {
	ctx, cancel := context.WithTimeout(ctx, ScanTimeout)
	defer cancel()

	var (
		mu    sync.Mutex
		found = map[string]device.Descriptor{}
		wg    sync.WaitGroup
	)
	for name, c := range r.controllers {
		wg.Add(1)
		go func(name string, c device.Controller) {
			defer wg.Done()
			descs, err := c.Scan(ctx)
			if err != nil {
				log.Debug().Str("backend", name).Err(err).Msg("backend scan failed")
				return
			}
			mu.Lock()
			defer mu.Unlock()
			for _, d := range descs {
				found[d.Key] = d
			}
		}(name, c)
	}
	wg.Wait()

	r.mu.Lock()
	r.snapshot = found
	r.mu.Unlock()

	out := snapshotList(found)
	log.Info().Int("devices", len(out)).Msg("device scan complete")

	if r.rec != nil {
		if err := r.rec.RecordScan(ctx, out); err != nil {
			log.Warn().Err(err).Msg("failed to persist scan snapshot")
		}
	}
	return out
}

// Devices returns the latest scan snapshot, sorted by key.
func (r *Registry) Devices() []device.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshotList(r.snapshot)
}

// Device looks up a single descriptor from the snapshot.
func (r *Registry) Device(key string) (device.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.snapshot[key]
	if !ok {
		return device.Descriptor{}, fmt.Errorf("%w: device %q not in last scan", device.ErrNotFound, key)
	}
	return d, nil
}

func snapshotList(m map[string]device.Descriptor) []device.Descriptor {
	out := make([]device.Descriptor, 0, len(m))
	for _, d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Report maps each targeted device key to the outcome of its apply.
type Report map[string]bool

// Succeeded counts the keys that applied cleanly.
func (rep Report) Succeeded() int {
	n := 0
	for _, ok := range rep {
		if ok {
			n++
		}
	}
	return n
}

// Apply dispatches the settings to the named devices concurrently, one
// bounded backend call per key. Validation happens once up front; an invalid
// request reaches no hardware. Unknown keys are reported as failures rather
// than aborting the rest.
func (r *Registry) Apply(ctx context.Context, keys []string, s device.Settings) (Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return Report{}, nil
	}

	var (
		mu  sync.Mutex
		rep = make(Report, len(keys))
		wg  sync.WaitGroup
	)
	for _, key := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			ok, detail := r.applyOne(ctx, key, s)
			mu.Lock()
			rep[key] = ok
			mu.Unlock()
			if r.rec != nil {
				if err := r.rec.RecordApply(ctx, key, s, ok, detail); err != nil {
					log.Warn().Str("key", key).Err(err).Msg("failed to persist apply record")
				}
			}
		}(key)
	}
	wg.Wait()

	log.Info().
		Int("targets", len(keys)).
		Int("succeeded", rep.Succeeded()).
		Str("effect", s.Effect).
		Str("color", s.Color.Hex()).
		Msg("applied settings")
	return rep, nil
}

// applyOne resolves the backend for one key, translates the effect to the
// device's vocabulary, and runs the backend call under its own timeout.
func (r *Registry) applyOne(ctx context.Context, key string, s device.Settings) (bool, string) {
	c, err := r.Controller(key)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("apply skipped")
		return false, err.Error()
	}

	if resolved, err := effect.Resolve(s.Effect, c.SupportedEffects()); err == nil {
		s.Effect = resolved
	}

	ctx, cancel := context.WithTimeout(ctx, ApplyTimeout)
	defer cancel()

	if err := c.Apply(ctx, key, s); err != nil {
		log.Warn().Str("key", key).Str("backend", c.Name()).Err(err).Msg("apply failed")
		return false, err.Error()
	}
	return true, ""
}

// ApplyAll dispatches the settings to every device in the latest snapshot.
func (r *Registry) ApplyAll(ctx context.Context, s device.Settings) (Report, error) {
	r.mu.RLock()
	keys := make([]string, 0, len(r.snapshot))
	for key := range r.snapshot {
		keys = append(keys, key)
	}
	r.mu.RUnlock()
	return r.Apply(ctx, keys, s)
}

// TurnOffAll asks every registered backend to black out its devices,
// regardless of scan state, and reports the outcome per backend.
func (r *Registry) TurnOffAll(ctx context.Context) map[string]bool {
	var (
		mu  sync.Mutex
		rep = make(map[string]bool, len(r.controllers))
		wg  sync.WaitGroup
	)
	for name, c := range r.controllers {
		wg.Add(1)
		go func(name string, c device.Controller) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(ctx, ApplyTimeout)
			defer cancel()
			err := c.TurnOff(ctx)
			if err != nil {
				log.Debug().Str("backend", name).Err(err).Msg("turn off failed")
			}
			mu.Lock()
			rep[name] = err == nil
			mu.Unlock()
		}(name, c)
	}
	wg.Wait()
	log.Info().Int("backends", len(rep)).Msg("turn off all dispatched")
	return rep
}
