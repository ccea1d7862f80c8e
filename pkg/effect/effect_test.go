package effect

import (
	"errors"
	"testing"
)

func TestResolveExactMatch(t *testing.T) {
	got, err := Resolve("breathing", []string{"Static", "Breathing", "Wave"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Breathing" {
		t.Errorf("Resolve = %q, want Breathing", got)
	}
}

func TestResolveSynonym(t *testing.T) {
	tests := []struct {
		requested  string
		advertised []string
		want       string
	}{
		{"breathing", []string{"Direct", "Breath", "Rainbow Wave"}, "Breath"},
		{"static", []string{"Direct", "Rainbow"}, "Direct"},
		{"wave", []string{"Static", "Rainbow Wave"}, "Rainbow Wave"},
		{"rainbow", []string{"Static", "Spectrum Cycle"}, "Spectrum Cycle"},
		{"spectrum_cycle", []string{"Static", "Rainbow"}, "Rainbow"},
		{"reactive", []string{"Static", "Key Reactive"}, "Key Reactive"},
		{"comet", []string{"Static", "Meteor"}, "Meteor"},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.requested, tt.advertised)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.requested, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q, %v) = %q, want %q", tt.requested, tt.advertised, got, tt.want)
		}
	}
}

func TestResolveFallbackToFirst(t *testing.T) {
	got, err := Resolve("lightning", []string{"Static", "Breathing"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Static" {
		t.Errorf("Resolve fallback = %q, want Static", got)
	}
}

func TestResolveNoModes(t *testing.T) {
	_, err := Resolve("static", nil)
	if !errors.Is(err, ErrNoModes) {
		t.Errorf("Resolve with no modes: err = %v, want ErrNoModes", err)
	}
}

func TestIsCanonical(t *testing.T) {
	for _, name := range Canonical() {
		if !IsCanonical(name) {
			t.Errorf("IsCanonical(%q) = false", name)
		}
	}
	if IsCanonical("disco") {
		t.Error("IsCanonical(disco) = true")
	}
}
