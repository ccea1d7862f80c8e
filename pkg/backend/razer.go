package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"chromactl/pkg/color"
	"chromactl/pkg/device"
	"chromactl/pkg/effect"
)

// DefaultChromaURL is the fixed loopback endpoint of the local Razer Chroma
// SDK REST server.
const DefaultChromaURL = "http://localhost:54235/razer/chromasdk"

// RazerConfig holds Chroma SDK session preferences from the settings
// document.
type RazerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Razer drives Razer Chroma devices through the local Chroma SDK REST
// service. The SDK does not enumerate hardware, so the scan reports the
// known mouse once a session can be established.
type Razer struct {
	cfg    RazerConfig
	client *http.Client
	state  device.ConnState

	mu         sync.Mutex
	sessionURL string
}

// NewRazer creates the Chroma backend. The SDK session is established lazily.
func NewRazer(cfg RazerConfig) *Razer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultChromaURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Razer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (r *Razer) Name() string { return "razer" }

func (r *Razer) SupportedEffects() []string {
	return []string{effect.Static, effect.Breathing, effect.SpectrumCycle, effect.Reactive}
}

type chromaInitResponse struct {
	SessionID int64  `json:"sessionid"`
	URI       string `json:"uri"`
}

// connectLocked registers an application session with the Chroma SDK.
// Caller must hold r.mu.
func (r *Razer) connectLocked(ctx context.Context) error {
	if r.sessionURL != "" {
		return nil
	}

	init := map[string]any{
		"title":       "chromactl",
		"description": "Unified RGB lighting control",
		"author": map[string]string{
			"name":    "chromactl",
			"contact": "https://localhost",
		},
		"device_supported": []string{"keyboard", "mouse", "headset", "mousepad", "keypad", "chromalink"},
		"category":         "application",
	}
	body, _ := json.Marshal(init)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", device.ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.state.SetUnavailable("Chroma SDK service unreachable")
		return fmt.Errorf("%w: chroma init: %v", device.ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		r.state.SetUnavailable(fmt.Sprintf("Chroma SDK init returned %d", resp.StatusCode))
		return fmt.Errorf("%w: chroma init status %d", device.ErrUnavailable, resp.StatusCode)
	}

	var parsed chromaInitResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("%w: chroma init decode: %v", device.ErrUnavailable, err)
	}

	switch {
	case parsed.URI != "":
		r.sessionURL = parsed.URI
	case parsed.SessionID != 0:
		r.sessionURL = fmt.Sprintf("%s/%d", r.cfg.BaseURL, parsed.SessionID)
	default:
		return fmt.Errorf("%w: chroma init returned no session", device.ErrUnavailable)
	}

	r.state.SetConnected()
	log.Info().Str("session", r.sessionURL).Msg("connected to Razer Chroma SDK")
	return nil
}

// Scan reports the Basilisk mouse when a Chroma session is available. The
// SDK has no enumeration API; presence of the service implies the device.
func (r *Razer) Scan(ctx context.Context) ([]device.Descriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.connectLocked(ctx); err != nil {
		return nil, err
	}

	return []device.Descriptor{{
		Key:      "razer",
		Name:     "Razer Basilisk Mouse",
		Backend:  r.Name(),
		Category: device.CategoryMouse,
		Zones:    4, // logo, scroll wheel, left side, right side
		Effects:  r.SupportedEffects(),
	}}, nil
}

// Apply translates the settings into a Chroma mouse effect and PUTs it to
// the session. A failed session is dropped so the next call reconnects.
func (r *Razer) Apply(ctx context.Context, key string, s device.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	scaled, err := s.Color.ScaleBrightness(s.Brightness)
	if err != nil {
		return fmt.Errorf("%w: %v", device.ErrValidation, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.connectLocked(ctx); err != nil {
		return err
	}

	payload := chromaEffect(s.Effect, scaled)
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.sessionURL+"/mouse", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", device.ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.sessionURL = ""
		r.state.SetDisconnected()
		return fmt.Errorf("%w: chroma apply: %v", device.ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: chroma apply status %d", device.ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// TurnOff clears the mouse lighting.
func (r *Razer) TurnOff(ctx context.Context) error {
	return r.Apply(ctx, "razer", device.Off())
}

// Close tears down the SDK session.
func (r *Razer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessionURL == "" {
		return
	}
	req, err := http.NewRequest(http.MethodDelete, r.sessionURL, nil)
	if err == nil {
		if resp, err := r.client.Do(req); err == nil {
			_ = resp.Body.Close()
		}
	}
	r.sessionURL = ""
	r.state.SetDisconnected()
}

// chromaBGR packs a color into the SDK's BGR integer encoding.
func chromaBGR(c color.Color) int {
	return c.R | c.G<<8 | c.B<<16
}

// chromaEffect builds the effect document for the mouse endpoint.
func chromaEffect(name string, c color.Color) map[string]any {
	switch name {
	case effect.Breathing:
		return map[string]any{
			"effect": "CHROMA_BREATHING",
			"param":  map[string]any{"type": 1, "color1": chromaBGR(c)},
		}
	case effect.SpectrumCycle, effect.Rainbow:
		return map[string]any{"effect": "CHROMA_SPECTRUMCYCLING"}
	case effect.Reactive:
		return map[string]any{
			"effect": "CHROMA_REACTIVE",
			"param":  map[string]any{"duration": 2, "color": chromaBGR(c)},
		}
	default:
		return map[string]any{
			"effect": "CHROMA_STATIC",
			"param":  map[string]any{"color": chromaBGR(c)},
		}
	}
}
