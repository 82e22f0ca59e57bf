package main

import (
	"math"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/planwerk/roomview/pkg/geometry"
	"github.com/planwerk/roomview/pkg/mesh"
)

// buildRaylibMesh converts the parsed mesh into a raylib mesh with baked
// per-vertex lighting, so the default material needs no shader setup
func buildRaylibMesh(m *mesh.Mesh) rl.Mesh {
	triangleCount := m.TriangleCount()
	vertexCount := triangleCount * 3

	glMesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}
	if triangleCount == 0 {
		return glMesh
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for i := 0; i < triangleCount; i++ {
		a, b, c := m.Triangle(i)
		normal := m.FaceNormal(i)

		intensity := math.Max(0.35, -normal.Dot(lightDir))
		r := uint8(126 * intensity)
		g := uint8(152 * intensity)
		bl := uint8(196 * intensity)

		for _, v := range []geometry.Vector3{a, b, c} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = 0
			texcoords[idx*2+1] = 0
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = bl
			colors[idx*4+3] = 255
			idx++
		}
	}

	glMesh.Vertices = &vertices[0]
	glMesh.Normals = &normals[0]
	glMesh.Texcoords = &texcoords[0]
	glMesh.Colors = &colors[0]

	rl.UploadMesh(&glMesh, false)
	return glMesh
}

// drawWireframe overlays the triangle edges on the solid body
func drawWireframe(m *mesh.Mesh) {
	edgeColor := rl.NewColor(222, 228, 238, 255)
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		va := toRaylib(a)
		vb := toRaylib(b)
		vc := toRaylib(c)
		rl.DrawLine3D(va, vb, edgeColor)
		rl.DrawLine3D(vb, vc, edgeColor)
		rl.DrawLine3D(vc, va, edgeColor)
	}
}

// drawGrid lays the reference grid on the ground plane, about twice the
// model size across and snapped to its lowest point
func drawGrid(bounds geometry.Bounds, dim float64) {
	center := bounds.Center()
	floor := float32(bounds.Floor())
	spacing := float32(gridSpacing(dim))
	half := float32(dim)

	minX := math32.Floor((float32(center.X)-half)/spacing) * spacing
	maxX := math32.Ceil((float32(center.X)+half)/spacing) * spacing
	minZ := math32.Floor((float32(center.Z)-half)/spacing) * spacing
	maxZ := math32.Ceil((float32(center.Z)+half)/spacing) * spacing

	minor := rl.NewColor(70, 74, 84, 255)
	major := rl.NewColor(105, 110, 122, 255)

	for i, x := 0, minX; x <= maxX+spacing/2; i, x = i+1, x+spacing {
		col := minor
		if i%5 == 0 {
			col = major
		}
		rl.DrawLine3D(rl.Vector3{X: x, Y: floor, Z: minZ}, rl.Vector3{X: x, Y: floor, Z: maxZ}, col)
	}
	for i, z := 0, minZ; z <= maxZ+spacing/2; i, z = i+1, z+spacing {
		col := minor
		if i%5 == 0 {
			col = major
		}
		rl.DrawLine3D(rl.Vector3{X: minX, Y: floor, Z: z}, rl.Vector3{X: maxX, Y: floor, Z: z}, col)
	}
}

// drawAxes places the orientation axes at the grid corner
func drawAxes(bounds geometry.Bounds, dim float64) {
	center := bounds.Center()
	origin := rl.Vector3{
		X: float32(center.X - dim),
		Y: float32(bounds.Floor()),
		Z: float32(center.Z - dim),
	}
	length := float32(dim / 2)

	rl.DrawLine3D(origin, rl.Vector3{X: origin.X + length, Y: origin.Y, Z: origin.Z}, rl.NewColor(214, 72, 72, 255))
	rl.DrawLine3D(origin, rl.Vector3{X: origin.X, Y: origin.Y + length, Z: origin.Z}, rl.NewColor(84, 190, 104, 255))
	rl.DrawLine3D(origin, rl.Vector3{X: origin.X, Y: origin.Y, Z: origin.Z + length}, rl.NewColor(86, 126, 230, 255))
}

// gridSpacing picks a 1-2-5 spacing for a readable line count
func gridSpacing(dim float64) float64 {
	target := dim / 10
	magnitude := math.Pow(10, math.Floor(math.Log10(target)))
	normalized := target / magnitude
	switch {
	case normalized < 1.5:
		return magnitude
	case normalized < 3.5:
		return 2 * magnitude
	case normalized < 7.5:
		return 5 * magnitude
	default:
		return 10 * magnitude
	}
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
