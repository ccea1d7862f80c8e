package color

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Color is an RGB triple with 8-bit channel intensities. Channels are kept as
// ints rather than uint8 so that out-of-range values arriving from JSON or
// callers can be detected by Validate instead of silently wrapping.
type Color struct {
	R int
	G int
	B int
}

// Validate checks that all three channels are within [0, 255]. Out-of-range
// values are an error, never clamped; clamping is reserved for deliberate
// brightness scaling.
func (c Color) Validate() error {
	for _, ch := range []struct {
		name  string
		value int
	}{{"red", c.R}, {"green", c.G}, {"blue", c.B}} {
		if ch.value < 0 || ch.value > 255 {
			return fmt.Errorf("%s channel %d out of range [0, 255]", ch.name, ch.value)
		}
	}
	return nil
}

// MarshalJSON encodes the color as a three-element array [r, g, b], the wire
// form used by the profile document.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{c.R, c.G, c.B})
}

// UnmarshalJSON decodes a three-element array [r, g, b].
func (c *Color) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("color must be an [r, g, b] array: %w", err)
	}
	if len(arr) != 3 {
		return fmt.Errorf("color must have exactly 3 elements, got %d", len(arr))
	}
	c.R, c.G, c.B = arr[0], arr[1], arr[2]
	return nil
}

// Hex returns the color as a hex string with leading #, e.g. "#ff8000".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a hex color string like "#ff8000" (leading # optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// ToHSV converts the color to hue (degrees, [0, 360)), saturation and value
// (both [0, 1]).
func (c Color) ToHSV() (h, s, v float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	v = max
	if max > 0 {
		s = delta / max
	}
	if delta == 0 {
		return 0, s, v
	}

	switch max {
	case r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// FromHSV converts hue (degrees), saturation and value ([0, 1]) to a Color.
func FromHSV(h, s, v float64) Color {
	if s == 0 {
		ch := int(v * 255)
		return Color{R: ch, G: ch, B: ch}
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	hh := h / 60
	i := int(hh)
	ff := hh - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*ff)
	t := v * (1 - s*(1-ff))

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return Color{R: int(r * 255), G: int(g * 255), B: int(b * 255)}
}

// ScaleBrightness scales each channel by pct/100 with truncation. pct must be
// in [0, 100]; this is the one place reduction is intentional and lossy.
func (c Color) ScaleBrightness(pct int) (Color, error) {
	if pct < 0 || pct > 100 {
		return Color{}, fmt.Errorf("brightness %d out of range [0, 100]", pct)
	}
	return Color{
		R: c.R * pct / 100,
		G: c.G * pct / 100,
		B: c.B * pct / 100,
	}, nil
}

// Blend linearly interpolates between a and b. ratio 0 yields a, ratio 1
// yields b.
func Blend(a, b Color, ratio float64) Color {
	return Color{
		R: int(float64(a.R)*(1-ratio) + float64(b.R)*ratio),
		G: int(float64(a.G)*(1-ratio) + float64(b.G)*ratio),
		B: int(float64(a.B)*(1-ratio) + float64(b.B)*ratio),
	}
}

// Complement returns the complementary color.
func (c Color) Complement() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Gradient produces a linear sequence of steps colors from start to end.
// A single step yields just the start color.
func Gradient(start, end Color, steps int) ([]Color, error) {
	if steps < 1 {
		return nil, fmt.Errorf("gradient steps must be >= 1, got %d", steps)
	}
	out := make([]Color, 0, steps)
	for i := 0; i < steps; i++ {
		ratio := 0.0
		if steps > 1 {
			ratio = float64(i) / float64(steps-1)
		}
		out = append(out, Blend(start, end, ratio))
	}
	return out, nil
}

// Rainbow returns n evenly spaced hues at full saturation and value.
func Rainbow(n int) []Color {
	out := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, FromHSV(float64(i)/float64(n)*360, 1, 1))
	}
	return out
}

// Breathing returns a symmetric brightness ramp 0 -> peak -> 0 over roughly
// steps entries, for backends that emulate the breathing effect in software.
func Breathing(base Color, steps int) []Color {
	half := steps / 2
	if half < 1 {
		half = 1
	}
	out := make([]Color, 0, 2*half)
	for i := 0; i < half; i++ {
		c, _ := base.ScaleBrightness(i * 100 / half)
		out = append(out, c)
	}
	for i := half; i >= 1; i-- {
		c, _ := base.ScaleBrightness(i * 100 / half)
		out = append(out, c)
	}
	return out
}

// FromKelvin converts a color temperature in Kelvin to an approximate RGB
// color, clamping each channel to [0, 255].
func FromKelvin(kelvin int) Color {
	temp := float64(kelvin) / 100

	var r, g, b float64
	if temp <= 66 {
		r = 255
		g = 99.4708025861*math.Log(temp) - 161.1195681661
		if temp >= 19 {
			b = 138.5177312231*math.Log(temp-10) - 305.0447927307
		} else {
			b = 0
		}
	} else {
		r = 329.698727446 * math.Pow(temp-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(temp-60, -0.0755148492)
		b = 255
	}

	clamp := func(v float64) int {
		return int(math.Max(0, math.Min(255, v)))
	}
	return Color{R: clamp(r), G: clamp(g), B: clamp(b)}
}
