package color

// Analysis summarizes perceptual properties of a color for display purposes.
type Analysis struct {
	Brightness float64 `json:"brightness"` // perceived luminance, [0, 1]
	Saturation float64 `json:"saturation"`
	Dominant   string  `json:"dominant_color"`
	Warmth     string  `json:"temperature"` // "Warm" or "Cool"
	Hex        string  `json:"hex"`
}

// Analyze computes perceived luminance, saturation, the dominant channel and
// a warm/cool classification.
func (c Color) Analyze() Analysis {
	a := Analysis{
		Brightness: (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255,
		Hex:        c.Hex(),
	}

	max := c.R
	if c.G > max {
		max = c.G
	}
	if c.B > max {
		max = c.B
	}
	min := c.R
	if c.G < min {
		min = c.G
	}
	if c.B < min {
		min = c.B
	}
	if max > 0 {
		a.Saturation = float64(max-min) / float64(max)
	}

	switch {
	case c.R >= c.G && c.R >= c.B:
		a.Dominant = "Red"
	case c.G >= c.R && c.G >= c.B:
		a.Dominant = "Green"
	default:
		a.Dominant = "Blue"
	}

	if c.R+50 > c.B {
		a.Warmth = "Warm"
	} else {
		a.Warmth = "Cool"
	}
	return a
}

// Named returns the predefined color table exposed to callers for quick
// selection.
func Named() map[string]Color {
	return map[string]Color{
		"Red":     {255, 0, 0},
		"Green":   {0, 255, 0},
		"Blue":    {0, 0, 255},
		"Yellow":  {255, 255, 0},
		"Cyan":    {0, 255, 255},
		"Magenta": {255, 0, 255},
		"White":   {255, 255, 255},
		"Orange":  {255, 165, 0},
		"Purple":  {128, 0, 128},
		"Pink":    {255, 192, 203},
		"Teal":    {0, 128, 128},
		"Navy":    {0, 0, 128},
		"Maroon":  {128, 0, 0},
		"Olive":   {128, 128, 0},
		"Silver":  {192, 192, 192},
		"Gray":    {128, 128, 128},
		"Black":   {0, 0, 0},
	}
}
