// Package effect maps logical lighting effect names onto the native mode
// names each vendor backend advertises.
package effect

import (
	"errors"
	"strings"
)

// Canonical logical effect names. Profiles and apply requests use these;
// backends translate them to native modes via Resolve.
const (
	Static        = "static"
	Breathing     = "breathing"
	Wave          = "wave"
	Rainbow       = "rainbow"
	SpectrumCycle = "spectrum_cycle"
	Reactive      = "reactive"
	Comet         = "comet"
	Flash         = "flash"
)

// ErrNoModes is returned when a backend advertises no native modes at all.
var ErrNoModes = errors.New("backend advertises no effect modes")

// Canonical returns the fixed list of logical effect names, in display order.
func Canonical() []string {
	return []string{Static, Breathing, Wave, Rainbow, SpectrumCycle, Reactive, Comet, Flash}
}

// IsCanonical reports whether name is one of the logical effect names.
func IsCanonical(name string) bool {
	for _, e := range Canonical() {
		if e == name {
			return true
		}
	}
	return false
}

// synonyms maps each logical effect to native mode names that count as a
// match, in priority order. The requested name itself is always tried first.
var synonyms = map[string][]string{
	Static:        {"static", "direct"},
	Breathing:     {"breathing", "breath"},
	Wave:          {"wave", "rainbow wave"},
	Rainbow:       {"rainbow", "spectrum cycle"},
	SpectrumCycle: {"spectrum cycle", "rainbow"},
	Reactive:      {"reactive", "key reactive"},
	Comet:         {"comet", "meteor"},
	Flash:         {"flash", "strobe"},
}

// Resolve maps a requested logical effect to one of the backend's advertised
// native mode names. Resolution order: exact case-insensitive match, then
// synonym/substring match, then the first advertised mode as a fallback.
// It fails only when the backend advertises no modes.
func Resolve(requested string, advertised []string) (string, error) {
	if len(advertised) == 0 {
		return "", ErrNoModes
	}

	req := strings.ToLower(requested)
	for _, mode := range advertised {
		if strings.ToLower(mode) == req {
			return mode, nil
		}
	}

	candidates := append([]string{req}, synonyms[req]...)
	for _, cand := range candidates {
		for _, mode := range advertised {
			if strings.Contains(strings.ToLower(mode), cand) {
				return mode, nil
			}
		}
	}

	return advertised[0], nil
}
