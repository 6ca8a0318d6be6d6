package scene

import (
	"fmt"
	"math"
)

// Finish describes how a surface reflects each light component.
// Roughness spreads the specular highlight; the highlight exponent is
// 1/Roughness, so it must be positive.
type Finish struct {
	Ambient   float64 `json:"ambient"`
	Diffuse   float64 `json:"diffuse"`
	Specular  float64 `json:"specular"`
	Roughness float64 `json:"roughness"`
}

// Validate reports a finish that shading cannot use.
func (f Finish) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"ambient", f.Ambient},
		{"diffuse", f.Diffuse},
		{"specular", f.Specular},
		{"roughness", f.Roughness},
	}
	for _, fld := range fields {
		if math.IsNaN(fld.v) || math.IsInf(fld.v, 0) {
			return fmt.Errorf("%w: finish %s is not finite", ErrInvalid, fld.name)
		}
	}
	if f.Roughness <= 0 {
		return fmt.Errorf("%w: finish roughness %g must be positive", ErrInvalid, f.Roughness)
	}
	return nil
}

func (f Finish) String() string {
	return fmt.Sprintf("Finish(ambient: %g, diffuse: %g, specular: %g, roughness: %g)",
		f.Ambient, f.Diffuse, f.Specular, f.Roughness)
}
