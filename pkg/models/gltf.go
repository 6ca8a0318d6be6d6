package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/raycaster/pkg/math3d"
	"github.com/taigrr/raycaster/pkg/scene"
)

// ErrNoSpheres is returned when a document has no node with usable geometry.
var ErrNoSpheres = errors.New("models: no spheres in document")

// LoadSpheres loads a GLTF or GLB file and returns one sphere per mesh node.
func LoadSpheres(path string) ([]scene.Sphere, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	spheres, err := SpheresFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return spheres, nil
}

// SpheresFromDocument walks the document's node hierarchy and replaces
// every node that references a mesh with the sphere bounding that mesh in
// world space. Center is the transformed center of the mesh bounds; radius
// is half the largest bounds extent times the largest world scale. Color and
// finish come from the mesh's first material.
func SpheresFromDocument(doc *gltf.Document) ([]scene.Sphere, error) {
	var spheres []scene.Sphere
	visited := make([]bool, len(doc.Nodes))

	var walk func(idx int, parent math3d.Mat4) error
	walk = func(idx int, parent math3d.Mat4) error {
		if idx < 0 || idx >= len(doc.Nodes) {
			return fmt.Errorf("node index %d out of range", idx)
		}
		if visited[idx] {
			return fmt.Errorf("node %d visited twice", idx)
		}
		visited[idx] = true

		node := doc.Nodes[idx]
		world := parent.Mul(nodeTransform(node))

		if node.Mesh != nil {
			s, ok, err := meshSphere(doc, *node.Mesh, world)
			if err != nil {
				return fmt.Errorf("node %q: %w", node.Name, err)
			}
			if ok {
				spheres = append(spheres, s)
			}
		}
		for _, child := range node.Children {
			if err := walk(child, world); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range rootNodes(doc) {
		if err := walk(root, math3d.Identity()); err != nil {
			return nil, err
		}
	}

	if len(spheres) == 0 {
		return nil, ErrNoSpheres
	}
	return spheres, nil
}

// rootNodes returns the nodes of the default scene, or every node that is
// nobody's child when the document has no scenes.
func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		i := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			i = *doc.Scene
		}
		return doc.Scenes[i].Nodes
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(isChild) {
				isChild[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// nodeTransform returns the node's local matrix. An explicit matrix wins
// over translation/rotation/scale. Decoded nodes always carry a matrix, so
// identity and zero count as unset.
func nodeTransform(n *gltf.Node) math3d.Mat4 {
	if n.Matrix != gltf.DefaultMatrix && n.Matrix != ([16]float64{}) {
		return math3d.Mat4(n.Matrix)
	}

	t := n.TranslationOrDefault()
	s := n.ScaleOrDefault()
	return math3d.TRS(math3d.V3(t[0], t[1], t[2]), n.RotationOrDefault(), math3d.V3(s[0], s[1], s[2]))
}

// meshSphere bounds a mesh with a sphere in world space. ok is false for a
// mesh without positions or with zero extent.
func meshSphere(doc *gltf.Document, meshIdx int, world math3d.Mat4) (scene.Sphere, bool, error) {
	if meshIdx < 0 || meshIdx >= len(doc.Meshes) {
		return scene.Sphere{}, false, fmt.Errorf("mesh index %d out of range", meshIdx)
	}
	m := doc.Meshes[meshIdx]

	var (
		lo, hi   math3d.Vec3
		found    bool
		material = DefaultMaterial
		matSet   bool
	)
	for _, prim := range m.Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		pmin, pmax, err := positionBounds(doc, posIdx)
		if err != nil {
			return scene.Sphere{}, false, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		if !found {
			lo, hi, found = pmin, pmax, true
		} else {
			lo, hi = lo.Min(pmin), hi.Max(pmax)
		}

		if !matSet && prim.Material != nil && *prim.Material < len(doc.Materials) {
			material = readMaterial(doc.Materials[*prim.Material])
			matSet = true
		}
	}
	if !found {
		return scene.Sphere{}, false, nil
	}

	size := hi.Sub(lo)
	radius := 0.5 * size.MaxComponent() * world.MaxScale()
	if radius <= 0 || math.IsNaN(radius) {
		return scene.Sphere{}, false, nil
	}

	localCenter := lo.Add(hi).Scale(0.5)
	center := world.MulPoint(math3d.P3(localCenter.X, localCenter.Y, localCenter.Z))

	return scene.Sphere{
		Center: center,
		Radius: radius,
		Color:  material.Color(),
		Finish: material.Finish(),
	}, true, nil
}

// readMaterial extracts the PBR factors of a glTF material.
func readMaterial(gm *gltf.Material) Material {
	m := Material{Name: gm.Name}
	pbr := gm.PBRMetallicRoughness
	if pbr == nil {
		pbr = &gltf.PBRMetallicRoughness{}
	}
	m.BaseColor = pbr.BaseColorFactorOrDefault()
	m.Metallic = pbr.MetallicFactorOrDefault()
	m.Roughness = pbr.RoughnessFactorOrDefault()
	return m
}

// positionBounds returns the bounding box of a POSITION accessor, from its
// declared min/max when present and from the data otherwise.
func positionBounds(doc *gltf.Document, accessorIdx int) (lo, hi math3d.Vec3, err error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return lo, hi, fmt.Errorf("accessor index %d out of range", accessorIdx)
	}
	acc := doc.Accessors[accessorIdx]
	if len(acc.Min) == 3 && len(acc.Max) == 3 {
		return math3d.V3(acc.Min[0], acc.Min[1], acc.Min[2]),
			math3d.V3(acc.Max[0], acc.Max[1], acc.Max[2]), nil
	}

	positions, err := readVec3Accessor(doc, acc)
	if err != nil {
		return lo, hi, fmt.Errorf("read positions: %w", err)
	}
	if len(positions) == 0 {
		return lo, hi, errors.New("empty position accessor")
	}
	lo, hi = positions[0], positions[0]
	for _, p := range positions[1:] {
		lo, hi = lo.Min(p), hi.Max(p)
	}
	return lo, hi, nil
}

// readVec3Accessor reads float VEC3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessor *gltf.Accessor) ([]math3d.Vec3, error) {
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("unsupported component type %v", accessor.ComponentType)
	}
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}
	if end := start + (accessor.Count-1)*stride + 12; accessor.Count > 0 && end > len(buffer.Data) {
		return nil, fmt.Errorf("accessor reads past buffer end (%d > %d)", end, len(buffer.Data))
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		result[i] = math3d.V3(
			float64(readFloat32(buffer.Data[offset:])),
			float64(readFloat32(buffer.Data[offset+4:])),
			float64(readFloat32(buffer.Data[offset+8:])),
		)
	}
	return result, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
