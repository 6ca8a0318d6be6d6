package math3d

import "math"

// SolveQuadratic returns the real roots of a·t² + b·t + c = 0.
// t1 is computed with -√disc and t2 with +√disc, so t1 <= t2 whenever a > 0.
// ok is false when the discriminant is negative.
func SolveQuadratic(a, b, c float64) (t1, t2 float64, ok bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	t1 = (-b - sq) / (2 * a)
	t2 = (-b + sq) / (2 * a)
	return t1, t2, true
}
