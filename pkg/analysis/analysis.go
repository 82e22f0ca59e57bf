// Package analysis computes summary statistics for meshes and room lists,
// used by the info command and the viewer's side panel.
package analysis

import (
	"fmt"

	"github.com/planwerk/roomview/pkg/building"
	"github.com/planwerk/roomview/pkg/geometry"
	"github.com/planwerk/roomview/pkg/mesh"
)

// MeshStats summarizes a parsed mesh
type MeshStats struct {
	VertexCount    int
	TriangleCount  int
	Bounds         geometry.Bounds
	Dimensions     geometry.Vector3
	Characteristic float64
	SurfaceArea    float64
}

// RoomStats summarizes the room list and its load figures
type RoomStats struct {
	RoomCount    int
	WithLoads    int
	FloorArea    float64
	Volume       float64
	CoolingTotal float64
	HeatingTotal float64
}

// AnalyzeMesh computes statistics for a mesh
func AnalyzeMesh(m *mesh.Mesh) MeshStats {
	bounds := m.Bounds()
	return MeshStats{
		VertexCount:    m.VertexCount(),
		TriangleCount:  m.TriangleCount(),
		Bounds:         bounds,
		Dimensions:     bounds.Size(),
		Characteristic: bounds.CharacteristicDimension(),
		SurfaceArea:    m.SurfaceArea(),
	}
}

// AnalyzeRooms computes statistics for a room list
func AnalyzeRooms(rooms []building.Room) RoomStats {
	stats := RoomStats{RoomCount: len(rooms)}
	for _, r := range rooms {
		stats.FloorArea += r.FloorArea()
		stats.Volume += r.Volume()
		if r.HasLoads() {
			stats.WithLoads++
		}
		if r.CoolingLoad != nil {
			stats.CoolingTotal += *r.CoolingLoad
		}
		if r.HeatingLoad != nil {
			stats.HeatingTotal += *r.HeatingLoad
		}
	}
	return stats
}

// FormatVector formats a vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
