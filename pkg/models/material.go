// Package models imports spheres from glTF scenes.
package models

import (
	"math"

	"github.com/taigrr/raycaster/pkg/scene"
)

// Material is the subset of a glTF PBR material the importer reads.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA in 0-1 range
	Metallic  float64    // 0 = dielectric, 1 = metal
	Roughness float64    // 0 = smooth, 1 = rough
}

// DefaultMaterial is what glTF prescribes for primitives without one.
var DefaultMaterial = Material{
	Name:      "default",
	BaseColor: [4]float64{1, 1, 1, 1},
	Metallic:  1,
	Roughness: 1,
}

// Color returns the base color.
func (m Material) Color() scene.Color {
	c := m.BaseColor
	return scene.RGBA(c[0], c[1], c[2], c[3])
}

// Finish approximates the PBR parameters with an ambient/diffuse/specular
// finish. Metals trade diffuse for specular.
func (m Material) Finish() scene.Finish {
	return scene.Finish{
		Ambient:   0.2,
		Diffuse:   1 - m.Metallic*0.5,
		Specular:  m.Metallic*0.5 + 0.1,
		Roughness: math.Max(m.Roughness, 0.01),
	}
}
