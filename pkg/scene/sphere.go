package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/taigrr/raycaster/pkg/math3d"
)

var (
	// ErrParse is returned for a malformed sphere description.
	ErrParse = errors.New("scene: malformed sphere description")
	// ErrInvalid is returned for values a render pass cannot use.
	ErrInvalid = errors.New("scene: invalid value")
)

// sphereFields is the number of reals in a sphere description:
// cx cy cz radius r g b ambient diffuse specular roughness.
const sphereFields = 11

// ID identifies a sphere within a Store. Zero means "not stored".
type ID uint64

// Sphere is a renderable object. It is a plain value; the Store that owns a
// collection of spheres assigns ID and CreatedAt.
type Sphere struct {
	ID        ID           `json:"id,omitempty"`
	CreatedAt time.Time    `json:"createdAt,omitzero"`
	Center    math3d.Point `json:"center"`
	Radius    float64      `json:"radius"`
	Color     Color        `json:"color"`
	Finish    Finish       `json:"finish"`
}

// ParseSphere reads a whitespace separated description of exactly eleven
// reals:
//
//	centerX centerY centerZ radius red green blue ambient diffuse specular roughness
//
// The color is opaque. Nothing is returned on failure.
func ParseSphere(s string) (Sphere, error) {
	fields := strings.Fields(s)
	if len(fields) != sphereFields {
		return Sphere{}, fmt.Errorf("%w: want %d numbers, got %d", ErrParse, sphereFields, len(fields))
	}

	var v [sphereFields]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Sphere{}, fmt.Errorf("%w: field %d %q is not a number", ErrParse, i+1, f)
		}
		v[i] = n
	}

	return Sphere{
		Center: math3d.P3(v[0], v[1], v[2]),
		Radius: v[3],
		Color:  RGB(v[4], v[5], v[6]),
		Finish: Finish{Ambient: v[7], Diffuse: v[8], Specular: v[9], Roughness: v[10]},
	}, nil
}

// MustParseSphere is like ParseSphere but panics on error. It is meant for
// literals in code and tests.
func MustParseSphere(s string) Sphere {
	sp, err := ParseSphere(s)
	if err != nil {
		panic(err)
	}
	return sp
}

// String formats the sphere in the form ParseSphere reads.
func (s Sphere) String() string {
	vals := []float64{
		s.Center.X, s.Center.Y, s.Center.Z, s.Radius,
		s.Color.R, s.Color.G, s.Color.B,
		s.Finish.Ambient, s.Finish.Diffuse, s.Finish.Specular, s.Finish.Roughness,
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatReal(v)
	}
	return strings.Join(parts, " ")
}

// Equation returns the implicit equation of the sphere's surface, e.g.
// "(x - 1)² + (y + 2)² + (z - 0)² = 3²".
func (s Sphere) Equation() string {
	eq := fmt.Sprintf("(x - %s)² + (y - %s)² + (z - %s)² = %s²",
		formatReal(s.Center.X), formatReal(s.Center.Y), formatReal(s.Center.Z), formatReal(s.Radius))
	return strings.ReplaceAll(eq, "- -", "+ ")
}

// Normal returns the unit surface normal at a point on the sphere.
func (s Sphere) Normal(at math3d.Point) math3d.Vec3 {
	return at.Sub(s.Center).Normalize()
}

// Validate reports a sphere that shading cannot use.
func (s Sphere) Validate() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("%w: sphere center %v is not finite", ErrInvalid, s.Center)
	}
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius <= 0 {
		return fmt.Errorf("%w: sphere radius %g must be positive", ErrInvalid, s.Radius)
	}
	if err := s.Finish.Validate(); err != nil {
		return err
	}
	return nil
}

// UnmarshalJSON accepts either the object form or a description string.
func (s *Sphere) UnmarshalJSON(data []byte) error {
	var desc string
	if err := json.Unmarshal(data, &desc); err == nil {
		sp, err := ParseSphere(desc)
		if err != nil {
			return err
		}
		*s = sp
		return nil
	}

	type plain Sphere
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode sphere: %w", err)
	}
	*s = Sphere(v)
	return nil
}

// DefaultSpheres returns the scene a fresh store starts with.
func DefaultSpheres() []Sphere {
	return []Sphere{
		MustParseSphere("1.0 1.0 0.0 2.0 1.0 0.0 1.0 0.2 0.4 0.5 0.05"),
		MustParseSphere("8.0 -10.0 100.0 90.0 0.2 0.2 0.6 0.4 0.8 0.0 0.05"),
	}
}

func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
