package device

import (
	"fmt"

	"chromactl/pkg/color"
)

// Settings is the user-level lighting intent applied to devices. It is an
// immutable value: backends receive it per call and never modify it.
type Settings struct {
	Color      color.Color `json:"color"`
	Effect     string      `json:"effect"`
	Brightness int         `json:"brightness"`
	Speed      int         `json:"speed"`
}

// Validate checks the color and the numeric ranges (brightness 0-100, speed
// 1-100). Effect names are not checked here; backends resolve unknown effects
// to their nearest native mode.
func (s Settings) Validate() error {
	if err := s.Color.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if s.Brightness < 0 || s.Brightness > 100 {
		return fmt.Errorf("%w: brightness %d out of range [0, 100]", ErrValidation, s.Brightness)
	}
	if s.Speed < 1 || s.Speed > 100 {
		return fmt.Errorf("%w: speed %d out of range [1, 100]", ErrValidation, s.Speed)
	}
	return nil
}

// Off is the settings value broadcast by turn-off operations: black, static,
// zero brightness.
func Off() Settings {
	return Settings{
		Color:      color.Color{R: 0, G: 0, B: 0},
		Effect:     "static",
		Brightness: 0,
		Speed:      50,
	}
}
