package render

import "github.com/taigrr/raycaster/pkg/scene"

// columnSamples returns the x of every pixel column, left to right.
func columnSamples(v scene.View, dx float64, width int) []float64 {
	var xs []float64
	for x := v.MinX; x < v.MaxX; x += dx {
		xs = append(xs, x)
		if x+dx == x {
			break
		}
	}
	return reconcile(xs, width, v.MinX, dx)
}

// rowSamples returns the y of every pixel row, top to bottom.
func rowSamples(v scene.View, dy float64, height int) []float64 {
	var ys []float64
	for y := v.MaxY; y > v.MinY; y -= dy {
		ys = append(ys, y)
		if y-dy == y {
			break
		}
	}
	return reconcile(ys, height, v.MaxY, -dy)
}

// reconcile fixes a stepped sample run to exactly n entries. Surplus samples
// are trimmed evenly from both ends, with the odd one taken from the back.
// Missing samples are added the same way by continuing the step past either
// end.
func reconcile(s []float64, n int, start, step float64) []float64 {
	switch {
	case len(s) == n:
		return s
	case len(s) > n:
		front := (len(s) - n) / 2
		return s[front : front+n]
	}

	if len(s) == 0 {
		s = []float64{start}
	}
	front := (n - len(s)) / 2
	out := make([]float64, 0, n)
	for i := front; i > 0; i-- {
		out = append(out, s[0]-step*float64(i))
	}
	out = append(out, s...)
	last := s[len(s)-1]
	for i := 1; len(out) < n; i++ {
		out = append(out, last+step*float64(i))
	}
	return out
}
