package math3d

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoCandidates is returned by Closest when there is nothing to choose from.
var ErrNoCandidates = errors.New("math3d: no candidate points")

// Point is a location in 3D space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// P3 creates a new Point.
func P3(x, y, z float64) Point {
	return Point{x, y, z}
}

// Origin returns the point (0, 0, 0).
func Origin() Point {
	return Point{}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Translate returns the point moved by v.
func (p Point) Translate(v Vec3) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec3 {
	return Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// VectorTo returns the vector from p to q.
func (p Point) VectorTo(q Point) Vec3 {
	return q.Sub(p)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Len()
}

// Vec3 returns the position vector of p relative to the origin.
func (p Point) Vec3() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// Closest returns the candidate nearest to p. Ties go to the earliest
// candidate.
func (p Point) Closest(candidates ...Point) (Point, error) {
	if len(candidates) == 0 {
		return Point{}, ErrNoCandidates
	}
	best := candidates[0]
	bestDist := p.Distance(best)
	for _, c := range candidates[1:] {
		if d := p.Distance(c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, nil
}

// IsFinite reports whether every coordinate is a finite number.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
