package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := FromQuat(0, 0.2474, 0, 0.9689)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulPoint(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(Scale(V3(2, 2, 2)))
	p := P3(1, 2, 3)

	for b.Loop() {
		_ = m.MulPoint(p)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkPointDistance(b *testing.B) {
	p1 := P3(1, 2, 3)
	p2 := P3(-4, 5, 9)

	for b.Loop() {
		_ = p1.Distance(p2)
	}
}

func BenchmarkSolveQuadratic(b *testing.B) {
	for b.Loop() {
		_, _, _ = SolveQuadratic(1, -3, 2)
	}
}
