// Package profile persists named lighting snapshots (color, effect, speed,
// brightness, device selection) in a versioned JSON document.
package profile

import (
	"errors"
	"fmt"
	"time"

	"chromactl/pkg/color"
	"chromactl/pkg/device"
	"chromactl/pkg/effect"
)

const documentVersion = "1.0"

// ErrNotFound indicates the named profile does not exist.
var ErrNotFound = errors.New("profile not found")

// Profile is a named, persisted settings snapshot. Loading yields a copy;
// stored profiles are never handed out by reference.
type Profile struct {
	Color           color.Color `json:"color"`
	Effect          string      `json:"effect"`
	Brightness      int         `json:"brightness"`
	Speed           int         `json:"speed"`
	SelectedDevices []string    `json:"selected_devices"`
	Created         time.Time   `json:"created"`
	Version         string      `json:"version"`
}

// Settings returns the snapshot as an applyable settings value.
func (p Profile) Settings() device.Settings {
	return device.Settings{
		Color:      p.Color,
		Effect:     p.Effect,
		Brightness: p.Brightness,
		Speed:      p.Speed,
	}
}

// validate applies the same rules as the apply path plus the fixed
// valid-effect list. Invalid profiles are rejected without partial writes.
func (p Profile) validate() error {
	if err := p.Settings().Validate(); err != nil {
		return err
	}
	if !effect.IsCanonical(p.Effect) {
		return fmt.Errorf("%w: unknown effect %q", device.ErrValidation, p.Effect)
	}
	return nil
}

// document is the on-disk profile store format.
type document struct {
	Profiles     map[string]Profile `json:"profiles"`
	LastModified time.Time          `json:"last_modified"`
	Version      string             `json:"version"`
}

func emptyDocument() document {
	return document{
		Profiles: make(map[string]Profile),
		Version:  documentVersion,
	}
}

// exportDocument wraps profiles for interchange between installations.
type exportDocument struct {
	ExportDate  time.Time          `json:"export_date"`
	Application string             `json:"application"`
	Version     string             `json:"version"`
	Profiles    map[string]Profile `json:"profiles"`
}
