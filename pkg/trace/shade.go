package trace

import (
	"image/color"
	"math"

	"github.com/taigrr/raycaster/pkg/math3d"
	"github.com/taigrr/raycaster/pkg/scene"
)

// ShadowBias is how far a hit point is pushed along its normal before
// secondary rays are cast from it.
const ShadowBias = 0.01

// Shade returns the pixel seen along r: the background color when nothing
// is hit, otherwise the shaded color of the nearest sphere.
func Shade(r Ray, spheres []scene.Sphere, settings scene.Settings) color.RGBA {
	return ShadeColor(r, spheres, settings).PixelData()
}

// ShadeColor is Shade before 8-bit conversion. Channels may exceed 1.
func ShadeColor(r Ray, spheres []scene.Sphere, settings scene.Settings) scene.Color {
	hit, ok := ClosestIntersection(r, spheres)
	if !ok {
		return settings.BackgroundColor
	}

	s, p := hit.Sphere, hit.Point
	n := s.Normal(p)

	ambient := s.Color.Mul(settings.Ambience).Scale(s.Finish.Ambient)
	diffuse := Diffuse(s, p, n, spheres, settings.Light)
	specular := Specular(s, p, n, settings.Light, settings.EyePoint)

	return ambient.Add(diffuse).Add(specular)
}

// Diffuse is the matte term at p, a point on s with unit normal n. It is
// black when p faces away from the light or another sphere blocks it.
func Diffuse(s scene.Sphere, p math3d.Point, n math3d.Vec3, spheres []scene.Sphere, light scene.Light) scene.Color {
	origin := p.Translate(n.Scale(ShadowBias))
	toLight := origin.VectorTo(light.Position)
	lightDir := toLight.Normalize()

	factor := n.Dot(lightDir)
	if factor <= 0 {
		return scene.Black
	}
	if occluded(Ray{Initial: origin, Direction: lightDir}, spheres, toLight.Len()) {
		return scene.Black
	}

	return light.EffectiveColor().Mul(s.Color).Scale(factor * s.Finish.Diffuse)
}

// Specular is the highlight term at p, a point on s with unit normal n.
// It takes the light's color, not the sphere's, and is not shadowed.
// It panics if the sphere's roughness is not positive.
func Specular(s scene.Sphere, p math3d.Point, n math3d.Vec3, light scene.Light, eye math3d.Point) scene.Color {
	if s.Finish.Roughness <= 0 {
		panic("trace: sphere roughness must be positive")
	}

	origin := p.Translate(n.Scale(ShadowBias))
	lightDir := origin.VectorTo(light.Position).Normalize()
	reflection := lightDir.Reflect(n)
	// lightDir is mirrored through the tangent plane, so it is compared
	// with the direction the eye looks along, not the direction back to it.
	eyeDir := eye.VectorTo(origin).Normalize()

	intensity := reflection.Dot(eyeDir)
	if intensity <= 0 {
		return scene.Black
	}

	base := s.Finish.Specular * math.Pow(intensity, 1/s.Finish.Roughness)
	return light.EffectiveColor().Scale(base)
}
