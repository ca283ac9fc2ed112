package heatmap

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is one point of a color scale: a position in [0, 1] and a hex color
type Stop struct {
	At  float64
	Hex string
}

// Scale is an ordered list of stops. Positions below 0.5 color penalties,
// above 0.5 bonuses; the middle band stays neutral grey.
type Scale []Stop

var (
	Teal = Scale{
		{0, "#1F2937"},
		{0.3, "#6B7280"},
		{0.45, "#D1D5DB"},
		{0.5, "#D1D5DB"},
		{0.55, "#D1D5DB"},
		{0.65, "#81E6D9"},
		{1, "#0D9488"},
	}
	Valentine = Scale{
		{0, "#1F2937"},
		{0.3, "#6B7280"},
		{0.45, "#D1D5DB"},
		{0.5, "#D1D5DB"},
		{0.55, "#D1D5DB"},
		{0.65, "#F9A8D4"},
		{1, "#BE185D"},
	}
)

// Color interpolates the scale at t, clamped to [0, 1], in RGB space
func (s Scale) Color(t float64) colorful.Color {
	if len(s) == 0 {
		return colorful.Color{}
	}
	t = math.Max(0, math.Min(1, t))

	lower, upper := s[0], s[len(s)-1]
	for i := 0; i < len(s)-1; i++ {
		if t >= s[i].At && t <= s[i+1].At {
			lower, upper = s[i], s[i+1]
			break
		}
	}

	frac := 0.0
	if span := upper.At - lower.At; span > 0 {
		frac = (t - lower.At) / span
	}
	from, _ := colorful.Hex(lower.Hex)
	to, _ := colorful.Hex(upper.Hex)
	return from.BlendRgb(to, frac)
}

// Hex returns the interpolated color as #rrggbb
func (s Scale) Hex(t float64) string {
	return s.Color(t).Hex()
}

// Normalize maps a value onto [0, 1] symmetrically around zero, so that
// -absMax is 0, zero is 0.5 and absMax is 1
func Normalize(v, absMax float64) float64 {
	if absMax <= 0 {
		return 0.5
	}
	return (v + absMax) / (2 * absMax)
}

// AbsMax returns the largest magnitude in the grid
func AbsMax(grid [][]float64) float64 {
	lo, hi := Range(grid)
	return math.Max(math.Abs(lo), math.Abs(hi))
}

// IsZero reports whether every cell of the grid is exactly zero
func IsZero(grid [][]float64) bool {
	for _, row := range grid {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// IsLight reports whether a color needs dark text on top of it
func IsLight(c colorful.Color) bool {
	r, g, b := c.RGB255()
	return 0.299*float64(r)+0.587*float64(g)+0.114*float64(b) > 160
}
