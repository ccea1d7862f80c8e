package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"chromactl/pkg/device"
	"chromactl/pkg/profile"
	"chromactl/pkg/registry"
)

// fakeBackend is an in-memory controller for router tests.
type fakeBackend struct {
	name  string
	descs []device.Descriptor
	fail  bool
}

func (f *fakeBackend) Name() string                { return f.name }
func (f *fakeBackend) SupportedEffects() []string  { return []string{"static", "breathing"} }
func (f *fakeBackend) TurnOff(ctx context.Context) error {
	if f.fail {
		return device.ErrUnavailable
	}
	return nil
}

func (f *fakeBackend) Scan(ctx context.Context) ([]device.Descriptor, error) {
	if f.fail {
		return nil, device.ErrUnavailable
	}
	return f.descs, nil
}

func (f *fakeBackend) Apply(ctx context.Context, key string, s device.Settings) error {
	if f.fail {
		return device.ErrUnavailable
	}
	return nil
}

func testRouter(t *testing.T) *Router {
	t.Helper()
	reg := registry.New(
		&fakeBackend{name: "razer", descs: []device.Descriptor{{
			Key: "razer", Name: "Razer Basilisk Mouse", Backend: "razer",
			Category: device.CategoryMouse, Zones: 4, Effects: []string{"static", "breathing"},
		}}},
		&fakeBackend{name: "msi", fail: true},
	)
	store, err := profile.Open(filepath.Join(t.TempDir(), "profiles.json"))
	if err != nil {
		t.Fatal(err)
	}
	return NewRouter(reg, store, nil)
}

func do(t *testing.T, r *Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.engine.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(t)
	w := do(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Status   string   `json:"status"`
		Backends []string `json:"backends"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "healthy" || len(resp.Backends) != 2 {
		t.Errorf("unexpected health response: %+v", resp)
	}
}

func TestScanAndListDevices(t *testing.T) {
	r := testRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/scan", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("scan status = %d, want 200", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/v1/devices", nil)
	var resp struct {
		Count   int `json:"count"`
		Devices []struct {
			Key string `json:"key"`
		} `json:"devices"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 1 || resp.Devices[0].Key != "razer" {
		t.Errorf("unexpected device list: %+v", resp)
	}
}

func TestGetDeviceNotFound(t *testing.T) {
	r := testRouter(t)
	w := do(t, r, http.MethodGet, "/api/v1/devices/toaster", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestApplyReportsPerDeviceOutcome(t *testing.T) {
	r := testRouter(t)
	body := map[string]any{
		"devices":    []string{"razer", "msi"},
		"color":      []int{255, 0, 128},
		"effect":     "breathing",
		"brightness": 80,
		"speed":      40,
	}
	w := do(t, r, http.MethodPost, "/api/v1/apply", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Results   map[string]bool `json:"results"`
		Succeeded int             `json:"succeeded"`
		Failed    int             `json:"failed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Results["razer"] || resp.Results["msi"] {
		t.Errorf("results = %v, want razer ok and msi failed", resp.Results)
	}
	if resp.Succeeded != 1 || resp.Failed != 1 {
		t.Errorf("succeeded/failed = %d/%d, want 1/1", resp.Succeeded, resp.Failed)
	}
}

func TestApplyRejectsInvalidSettings(t *testing.T) {
	r := testRouter(t)
	body := map[string]any{
		"devices":    []string{"razer"},
		"color":      []int{300, 0, 0},
		"effect":     "static",
		"brightness": 80,
		"speed":      40,
	}
	w := do(t, r, http.MethodPost, "/api/v1/apply", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestTurnOffAll(t *testing.T) {
	r := testRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/off", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Backends map[string]bool `json:"backends"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Backends["razer"] || resp.Backends["msi"] {
		t.Errorf("backends = %v, want razer ok and msi failed", resp.Backends)
	}
}

func TestEffectsEndpoint(t *testing.T) {
	r := testRouter(t)
	w := do(t, r, http.MethodGet, "/api/v1/effects", nil)
	var resp struct {
		Effects []string `json:"effects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Effects) != 8 || resp.Effects[0] != "static" {
		t.Errorf("effects = %v", resp.Effects)
	}
}

func TestProfileLifecycleOverHTTP(t *testing.T) {
	r := testRouter(t)

	save := map[string]any{
		"name":             "Gaming",
		"color":            []int{0, 255, 128},
		"effect":           "breathing",
		"brightness":       80,
		"speed":            40,
		"selected_devices": []string{"razer", "msi"},
	}
	w := do(t, r, http.MethodPost, "/api/v1/profiles", save)
	if w.Code != http.StatusCreated {
		t.Fatalf("save status = %d, want 201: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/v1/profiles/Gaming", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/v1/profiles/Gaming/apply", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("apply status = %d, want 200: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodDelete, "/api/v1/profiles/Gaming", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}

	w = do(t, r, http.MethodDelete, "/api/v1/profiles/Gaming", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestSaveProfileInvalidEffectRejected(t *testing.T) {
	r := testRouter(t)
	save := map[string]any{
		"name":       "Broken",
		"color":      []int{255, 0, 0},
		"effect":     "disco_inferno",
		"brightness": 80,
		"speed":      40,
	}
	w := do(t, r, http.MethodPost, "/api/v1/profiles", save)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestHistoryWithoutDatabase(t *testing.T) {
	r := testRouter(t)
	w := do(t, r, http.MethodGet, "/api/v1/history", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}
