package trace

import (
	"github.com/taigrr/raycaster/pkg/math3d"
	"github.com/taigrr/raycaster/pkg/scene"
)

// Intersection is a hit of a ray on one sphere of a collection.
type Intersection struct {
	Index  int // position of Sphere in the collection
	Sphere scene.Sphere
	Point  math3d.Point
}

// Intersect returns the point where r meets s.
//
// Both roots of the ray/sphere quadratic are considered. A sphere wholly
// behind the origin is missed. A tangent ray hits at its single root. When
// the origin is inside the sphere the exit point is returned; otherwise the
// hit nearer to the origin, measured by distance rather than by t.
func Intersect(r Ray, s scene.Sphere) (math3d.Point, bool) {
	oc := r.Initial.Sub(s.Center)
	a := r.Direction.LenSq()
	if a == 0 {
		return math3d.Point{}, false
	}
	b := 2 * oc.Dot(r.Direction)
	c := oc.LenSq() - s.Radius*s.Radius

	t1, t2, ok := math3d.SolveQuadratic(a, b, c)
	if !ok || (t1 < 0 && t2 < 0) {
		return math3d.Point{}, false
	}
	if t1 == t2 {
		return r.At(t1), true
	}
	if t1 < 0 || t2 < 0 {
		return r.At(max(t1, t2)), true
	}

	p1, p2 := r.At(t1), r.At(t2)
	if r.Initial.Distance(p2) < r.Initial.Distance(p1) {
		return p2, true
	}
	return p1, true
}

// Intersections returns every hit of r on spheres, in collection order.
func Intersections(r Ray, spheres []scene.Sphere) []Intersection {
	var hits []Intersection
	for i, s := range spheres {
		if p, ok := Intersect(r, s); ok {
			hits = append(hits, Intersection{Index: i, Sphere: s, Point: p})
		}
	}
	return hits
}

// ClosestIntersection returns the hit nearest to the ray origin. Ties go to
// the sphere that comes first in the collection.
func ClosestIntersection(r Ray, spheres []scene.Sphere) (Intersection, bool) {
	var (
		best  Intersection
		bestD float64
		found bool
	)
	for i, s := range spheres {
		p, ok := Intersect(r, s)
		if !ok {
			continue
		}
		d := r.Initial.Distance(p)
		if !found || d < bestD {
			best = Intersection{Index: i, Sphere: s, Point: p}
			bestD = d
			found = true
		}
	}
	return best, found
}

// occluded reports whether any sphere meets r closer to its origin than
// limit.
func occluded(r Ray, spheres []scene.Sphere, limit float64) bool {
	for _, s := range spheres {
		if p, ok := Intersect(r, s); ok && r.Initial.Distance(p) < limit {
			return true
		}
	}
	return false
}
