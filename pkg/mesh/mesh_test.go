package mesh

import (
	"math"
	"testing"
)

func TestBoundsOfCube(t *testing.T) {
	m := ParseString(cubeText)
	b := m.Bounds()

	size := b.Size()
	if math.Abs(size.X-1) > 1e-9 || math.Abs(size.Y-1) > 1e-9 || math.Abs(size.Z-1) > 1e-9 {
		t.Errorf("expected unit cube extents, got %v", size)
	}
	if c := b.Center(); c.Length() > 1e-9 {
		t.Errorf("expected cube centered at origin, got %v", c)
	}
}

func TestSurfaceAreaOfCube(t *testing.T) {
	m := ParseString(cubeText)

	if area := m.SurfaceArea(); math.Abs(area-6.0) > 1e-9 {
		t.Errorf("expected surface area 6, got %v", area)
	}
}

func TestFaceNormal(t *testing.T) {
	m := ParseString("v 0 0 0\nv 1 0 0\nv 0 0 -1\nf 1 2 3\n")

	n := m.FaceNormal(0)
	if math.Abs(n.Y-1) > 1e-9 {
		t.Errorf("expected upward face normal, got %v", n)
	}
}
