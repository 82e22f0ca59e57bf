package geometry

import "math"

// FallbackDimension is the characteristic dimension reported for empty or
// degenerate geometry, so camera and grid sizing never collapse to zero.
const FallbackDimension = 10.0

// Bounds represents an axis-aligned bounding box
type Bounds struct {
	Min Vector3
	Max Vector3
}

// NewBounds creates an empty bounding box that extends to include nothing
func NewBounds() Bounds {
	return Bounds{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// BoundsOf computes the bounding box of a point set
func BoundsOf(points []Vector3) Bounds {
	b := NewBounds()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

// Extend expands the bounding box to include a point
func (b *Bounds) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether the box has never been extended
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Center returns the center point of the bounding box.
// An empty box is centered at the origin.
func (b Bounds) Center() Vector3 {
	if b.IsEmpty() {
		return Vector3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the per-axis extents of the bounding box
func (b Bounds) Size() Vector3 {
	if b.IsEmpty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

// CharacteristicDimension returns the largest axis-aligned extent of the box.
// Empty or degenerate geometry reports FallbackDimension so downstream
// framing math stays well-defined.
func (b Bounds) CharacteristicDimension() float64 {
	size := b.Size()
	dim := math.Max(size.X, math.Max(size.Y, size.Z))
	if dim <= 0 {
		return FallbackDimension
	}
	return dim
}

// Floor returns the lowest vertical coordinate of the box, or 0 for an
// empty box. The ground grid snaps to this level.
func (b Bounds) Floor() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Min.Y
}

// Diagonal returns the length of the bounding box diagonal
func (b Bounds) Diagonal() float64 {
	return b.Size().Length()
}
