package scene

import (
	"fmt"
	"strings"

	"github.com/taigrr/raycaster/pkg/math3d"
)

// Intensity scales a light's color.
type Intensity int

const (
	IntensityLow    Intensity = iota // 0.5×
	IntensityMedium                  // 1.0×
	IntensityHigh                    // 1.5×
)

// Factor returns the multiplier applied to the light color.
func (i Intensity) Factor() float64 {
	switch i {
	case IntensityLow:
		return 0.5
	case IntensityMedium:
		return 1.0
	case IntensityHigh:
		return 1.5
	default:
		return 1.0
	}
}

func (i Intensity) String() string {
	switch i {
	case IntensityLow:
		return "low"
	case IntensityMedium:
		return "medium"
	case IntensityHigh:
		return "high"
	default:
		return fmt.Sprintf("Intensity(%d)", int(i))
	}
}

// ParseIntensity reads "low", "medium" or "high".
func ParseIntensity(s string) (Intensity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return IntensityLow, nil
	case "medium":
		return IntensityMedium, nil
	case "high":
		return IntensityHigh, nil
	}
	return 0, fmt.Errorf("%w: unknown light intensity %q", ErrInvalid, s)
}

// MarshalText implements encoding.TextMarshaler.
func (i Intensity) MarshalText() ([]byte, error) {
	if i < IntensityLow || i > IntensityHigh {
		return nil, fmt.Errorf("%w: light intensity %d", ErrInvalid, int(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Intensity) UnmarshalText(text []byte) error {
	v, err := ParseIntensity(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Light is a single point light source.
type Light struct {
	Position  math3d.Point `json:"position"`
	Color     Color        `json:"color"`
	Intensity Intensity    `json:"intensity"`
}

// EffectiveColor is the light color scaled by its intensity.
func (l Light) EffectiveColor() Color {
	return l.Color.Scale(l.Intensity.Factor())
}

func (l Light) String() string {
	return fmt.Sprintf("Light(position: %v, color: %v, intensity: %s)", l.Position, l.Color, l.Intensity)
}
