// Package scene holds the data a render pass consumes: spheres, their
// materials, the light, and the frame the eye looks through.
package scene

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a light intensity per channel. Channels are nominally in [0,1]
// but are left unclamped while shading terms are summed; clamping happens
// only in PixelData.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Common colors. Black is fully transparent, matching how the shading code
// uses it as "no contribution".
var (
	Black = Color{0, 0, 0, 0}
	White = Color{1, 1, 1, 1}
)

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// RGBA creates a color with an explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// Scale multiplies the color channels (not alpha) by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// Add sums the color channels; alpha is taken from c.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A}
}

// Mul multiplies the color channels pairwise; alpha is taken from c.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A}
}

// PixelData converts the color to 8-bit RGBA.
func (c Color) PixelData() color.RGBA {
	return color.RGBA{
		R: PixelValue(c.R),
		G: PixelValue(c.G),
		B: PixelValue(c.B),
		A: PixelValue(c.A),
	}
}

// PixelValue maps a channel value to 8 bits: below 0 is 0, above 1 is 255,
// anything else is round(v*255) with halves rounded away from zero, so 0.5
// becomes 128.
func PixelValue(v float64) uint8 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 255
	default:
		return uint8(math.Round(v * 255))
	}
}

// Hex returns the clamped color as #rrggbb.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

func (c Color) String() string {
	return fmt.Sprintf("Color(r: %g, g: %g, b: %g, a: %g)", c.R, c.G, c.B, c.A)
}

// ParseColor reads "#rrggbb", "white", "black", or a comma separated
// "r,g,b" / "r,g,b,a" list of floats.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "white":
		return White, nil
	case "black":
		return RGB(0, 0, 0), nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return RGB(c.R, c.G, c.B), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("parse color %q: want 3 or 4 components, got %d", s, len(parts))
	}
	vals := [4]float64{0, 0, 0, 1}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		vals[i] = v
	}
	return Color{vals[0], vals[1], vals[2], vals[3]}, nil
}

// UnmarshalJSON accepts either an object {"r","g","b","a"} (alpha defaults
// to 1) or any string ParseColor understands.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseColor(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	type plain Color
	v := plain{A: 1}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode color: %w", err)
	}
	*c = Color(v)
	return nil
}
