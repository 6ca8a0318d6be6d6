package scene

import (
	"math"
	"math/rand/v2"

	"github.com/taigrr/raycaster/pkg/math3d"
)

// RandomSphere generates a sphere that is visible from the eye point.
//
// The center's depth is drawn between the eye and the nearest existing
// sphere in front of it (or twice the frame plane's depth when there is
// none). x and y are drawn inside the frame view and then projected to that
// depth, and the radius is a fraction of the visible x/y range scaled the
// same way. Values are rounded to two decimals so the sphere reads well in
// its string form.
func RandomSphere(rng *rand.Rand, spheres []Sphere, settings Settings) Sphere {
	eye := settings.EyePoint
	view := settings.Frame.View

	planeDepth := view.ZPlane - eye.Z
	if planeDepth == 0 {
		planeDepth = 10
	}
	dir := math.Copysign(1, planeDepth)

	farDepth := 2 * planeDepth
	for _, s := range spheres {
		d := s.Center.Z - eye.Z
		if d*dir > 0 && math.Abs(d) < math.Abs(farDepth) {
			farDepth = d
		}
	}

	depth := farDepth * (0.25 + 0.75*rng.Float64())
	scale := depth / planeDepth

	x := view.MinX + rng.Float64()*(view.MaxX-view.MinX)
	y := view.MinY + rng.Float64()*(view.MaxY-view.MinY)
	span := math.Min(view.MaxX-view.MinX, view.MaxY-view.MinY)
	radius := (0.03 + 0.1*rng.Float64()) * span * math.Abs(scale)

	return Sphere{
		Center: math3d.P3(
			round2(eye.X+(x-eye.X)*scale),
			round2(eye.Y+(y-eye.Y)*scale),
			round2(eye.Z+depth),
		),
		Radius: math.Max(0.01, round2(radius)),
		Color:  RGB(round2(rng.Float64()), round2(rng.Float64()), round2(rng.Float64())),
		Finish: Finish{
			Ambient:   round2(0.5 * rng.Float64()),
			Diffuse:   round2(rng.Float64()),
			Specular:  round2(rng.Float64()),
			Roughness: math.Max(0.01, round2(rng.Float64())),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
