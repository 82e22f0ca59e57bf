// Package mesh ingests the textual building-geometry format produced by the
// floorplan extractor and turns it into an indexed triangle mesh.
package mesh

import (
	"github.com/planwerk/roomview/pkg/geometry"
)

// Mesh is an indexed triangle mesh. Indices references Positions in groups
// of three; Normals holds one smooth per-vertex normal for each position.
type Mesh struct {
	Positions []geometry.Vector3
	Normals   []geometry.Vector3
	Indices   []int
}

// NewMesh creates an empty mesh
func NewMesh() *Mesh {
	return &Mesh{
		Positions: make([]geometry.Vector3, 0),
		Normals:   make([]geometry.Vector3, 0),
		Indices:   make([]int, 0),
	}
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// IsEmpty reports whether the mesh has no triangles
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Triangle returns the three corner positions of triangle i
func (m *Mesh) Triangle(i int) (a, b, c geometry.Vector3) {
	return m.Positions[m.Indices[i*3]],
		m.Positions[m.Indices[i*3+1]],
		m.Positions[m.Indices[i*3+2]]
}

// FaceNormal returns the (normalized) geometric normal of triangle i
func (m *Mesh) FaceNormal(i int) geometry.Vector3 {
	a, b, c := m.Triangle(i)
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Bounds computes the axis-aligned bounding box of all vertices
func (m *Mesh) Bounds() geometry.Bounds {
	return geometry.BoundsOf(m.Positions)
}

// SurfaceArea returns the summed area of all triangles
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		total += b.Sub(a).Cross(c.Sub(a)).Length() / 2.0
	}
	return total
}

// computeNormals recomputes smooth per-vertex normals by accumulating
// area-weighted face normals. Vertices not referenced by any triangle
// keep a zero normal.
func (m *Mesh) computeNormals() {
	m.Normals = make([]geometry.Vector3, len(m.Positions))
	for i := 0; i < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a, b, c := m.Positions[ia], m.Positions[ib], m.Positions[ic]
		// Un-normalized cross product weights the contribution by area.
		n := b.Sub(a).Cross(c.Sub(a))
		m.Normals[ia] = m.Normals[ia].Add(n)
		m.Normals[ib] = m.Normals[ib].Add(n)
		m.Normals[ic] = m.Normals[ic].Add(n)
	}
	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].Normalize()
	}
}
