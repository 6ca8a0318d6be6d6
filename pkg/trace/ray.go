// Package trace implements ray-sphere intersection and the
// ambient/diffuse/specular shading model.
package trace

import (
	"fmt"

	"github.com/taigrr/raycaster/pkg/math3d"
)

// Ray is a half-line from Initial along Direction. Direction need not be
// unit length.
type Ray struct {
	Initial   math3d.Point
	Direction math3d.Vec3
}

// NewRay creates a ray from one point toward another.
func NewRay(from, to math3d.Point) Ray {
	return Ray{Initial: from, Direction: from.VectorTo(to)}
}

// At returns Initial + t·Direction.
func (r Ray) At(t float64) math3d.Point {
	return r.Initial.Translate(r.Direction.Scale(t))
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(initial: %v, direction: %v)", r.Initial, r.Direction)
}
