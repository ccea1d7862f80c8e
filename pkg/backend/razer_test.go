package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chromactl/pkg/color"
	"chromactl/pkg/device"
)

// fakeChroma emulates the local Chroma SDK REST service.
type fakeChroma struct {
	inits    int
	applies  []map[string]any
	failPut  bool
	sessions int
}

func newFakeChroma(t *testing.T) (*fakeChroma, *httptest.Server) {
	t.Helper()
	f := &fakeChroma{}
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)

	mux.HandleFunc("/razer/chromasdk", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		f.inits++
		f.sessions++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sessionid": f.sessions,
			"uri":       srv.URL + "/razer/chromasdk/sess",
		})
	})
	mux.HandleFunc("/razer/chromasdk/sess/mouse", func(w http.ResponseWriter, r *http.Request) {
		if f.failPut {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.applies = append(f.applies, body)
		_ = json.NewEncoder(w).Encode(map[string]int{"result": 0})
	})
	mux.HandleFunc("/razer/chromasdk/sess", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Cleanup(srv.Close)
	return f, srv
}

func TestRazerScanReportsMouse(t *testing.T) {
	_, srv := newFakeChroma(t)
	r := NewRazer(RazerConfig{BaseURL: srv.URL + "/razer/chromasdk"})
	defer r.Close()

	descs, err := r.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(descs) != 1 {
		t.Fatalf("got %d descriptors, want 1", len(descs))
	}
	d := descs[0]
	if d.Key != "razer" || d.Backend != "razer" || d.Category != device.CategoryMouse {
		t.Errorf("unexpected descriptor: %+v", d)
	}
}

func TestRazerScanUnavailableWhenServiceDown(t *testing.T) {
	r := NewRazer(RazerConfig{BaseURL: "http://127.0.0.1:1/razer/chromasdk"})
	_, err := r.Scan(context.Background())
	if !errors.Is(err, device.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestRazerApplySendsStaticEffect(t *testing.T) {
	f, srv := newFakeChroma(t)
	r := NewRazer(RazerConfig{BaseURL: srv.URL + "/razer/chromasdk"})
	defer r.Close()

	s := device.Settings{
		Color:      color.Color{R: 255, G: 0, B: 0},
		Effect:     "static",
		Brightness: 100,
		Speed:      50,
	}
	if err := r.Apply(context.Background(), "razer", s); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(f.applies) != 1 {
		t.Fatalf("got %d applies, want 1", len(f.applies))
	}
	if f.applies[0]["effect"] != "CHROMA_STATIC" {
		t.Errorf("effect = %v, want CHROMA_STATIC", f.applies[0]["effect"])
	}
}

func TestRazerApplyRejectsInvalidSettings(t *testing.T) {
	f, srv := newFakeChroma(t)
	r := NewRazer(RazerConfig{BaseURL: srv.URL + "/razer/chromasdk"})

	s := device.Settings{
		Color:      color.Color{R: 300, G: 0, B: 0},
		Effect:     "static",
		Brightness: 100,
		Speed:      50,
	}
	err := r.Apply(context.Background(), "razer", s)
	if !errors.Is(err, device.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if f.inits != 0 {
		t.Errorf("invalid settings reached the SDK (%d inits)", f.inits)
	}
}

func TestRazerReusesSession(t *testing.T) {
	f, srv := newFakeChroma(t)
	r := NewRazer(RazerConfig{BaseURL: srv.URL + "/razer/chromasdk"})
	defer r.Close()

	s := device.Off()
	for i := 0; i < 3; i++ {
		if err := r.Apply(context.Background(), "razer", s); err != nil {
			t.Fatalf("Apply %d: %v", i, err)
		}
	}
	if f.inits != 1 {
		t.Errorf("got %d session inits, want 1", f.inits)
	}
}

func TestChromaBGR(t *testing.T) {
	got := chromaBGR(color.Color{R: 0x11, G: 0x22, B: 0x33})
	want := 0x11 | 0x22<<8 | 0x33<<16
	if got != want {
		t.Errorf("chromaBGR = %#x, want %#x", got, want)
	}
}

func TestChromaEffectMapping(t *testing.T) {
	cases := []struct {
		effect string
		want   string
	}{
		{"static", "CHROMA_STATIC"},
		{"breathing", "CHROMA_BREATHING"},
		{"spectrum_cycle", "CHROMA_SPECTRUMCYCLING"},
		{"rainbow", "CHROMA_SPECTRUMCYCLING"},
		{"reactive", "CHROMA_REACTIVE"},
		{"comet", "CHROMA_STATIC"},
	}
	for _, tc := range cases {
		got := chromaEffect(tc.effect, color.Color{R: 255})
		if got["effect"] != tc.want {
			t.Errorf("chromaEffect(%q) = %v, want %v", tc.effect, got["effect"], tc.want)
		}
	}
}
