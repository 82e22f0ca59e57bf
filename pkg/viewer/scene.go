package viewer

import (
	"image/color"
	"math"

	"github.com/planwerk/roomview/pkg/building"
	"github.com/planwerk/roomview/pkg/geometry"
	"github.com/planwerk/roomview/pkg/label"
	"github.com/planwerk/roomview/pkg/mesh"
)

// Options selects what the scene carries beyond the mesh body
type Options struct {
	ShowLabels bool
	ShowLoads  bool
}

// lightRig is the fixed two-light setup: an ambient floor for base
// visibility and one directional source placed relative to the
// characteristic dimension so shading scales with the model.
type lightRig struct {
	ambient   float64
	direction geometry.Vector3
	position  geometry.Vector3
}

type lineSegment struct {
	a, b  geometry.Vector3
	color color.RGBA
}

// Scene owns every renderable object of one viewing session: the mesh body
// with its wireframe overlay, the light rig, the ground grid, orientation
// axes and one label sprite per room. A scene is disposed and rebuilt
// whenever the mesh or room list changes identity.
type Scene struct {
	mesh    *mesh.Mesh
	bounds  geometry.Bounds
	dim     float64
	light   lightRig
	grid    []lineSegment
	axes    []lineSegment
	sprites []*labelSprite

	resources int
	disposed  bool
}

// BuildScene assembles the scene graph for a mesh and its room list
func BuildScene(m *mesh.Mesh, rooms []building.Room, opts Options) *Scene {
	bounds := m.Bounds()
	dim := bounds.CharacteristicDimension()
	center := bounds.Center()

	s := &Scene{
		mesh:   m,
		bounds: bounds,
		dim:    dim,
	}

	lightPos := center.Add(geometry.NewVector3(-0.6, 1.0, -0.8).Mul(dim * 1.5))
	s.light = lightRig{
		ambient:   0.35,
		position:  lightPos,
		direction: center.Sub(lightPos).Normalize(),
	}

	s.grid = buildGrid(bounds, dim)
	s.axes = buildAxes(bounds, dim)

	labels := label.Build(rooms, label.Options{
		ShowNames: opts.ShowLabels,
		ShowLoads: opts.ShowLoads,
	})
	s.sprites = make([]*labelSprite, 0, len(labels))
	for _, l := range labels {
		s.sprites = append(s.sprites, renderSprite(l))
	}

	// Position, normal and index buffers plus one texture per label.
	s.resources = 3 + len(s.sprites)
	acquireResources(s.resources)
	return s
}

// Bounds returns the bounding box of the scene's mesh
func (s *Scene) Bounds() geometry.Bounds {
	return s.bounds
}

// CharacteristicDimension returns the scale the scene was built around
func (s *Scene) CharacteristicDimension() float64 {
	return s.dim
}

// Mesh returns the scene's mesh body
func (s *Scene) Mesh() *mesh.Mesh {
	return s.mesh
}

// Labels returns the synthesized room labels
func (s *Scene) Labels() []label.Label {
	out := make([]label.Label, 0, len(s.sprites))
	for _, sp := range s.sprites {
		out = append(out, sp.label)
	}
	return out
}

// Dispose releases everything the scene owns. Safe to call twice; a
// disposed scene renders nothing.
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	releaseResources(s.resources)
	s.mesh = nil
	s.grid = nil
	s.axes = nil
	s.sprites = nil
}

// Disposed reports whether the scene has been torn down
func (s *Scene) Disposed() bool {
	return s.disposed
}

var (
	gridMinorColor = color.RGBA{70, 74, 84, 255}
	gridMajorColor = color.RGBA{105, 110, 122, 255}
	axisXColor     = color.RGBA{214, 72, 72, 255}
	axisYColor     = color.RGBA{84, 190, 104, 255}
	axisZColor     = color.RGBA{86, 126, 230, 255}
)

// buildGrid lays a reference grid on the ground plane, roughly twice the
// characteristic dimension across and snapped to the mesh's lowest point.
func buildGrid(bounds geometry.Bounds, dim float64) []lineSegment {
	center := bounds.Center()
	floor := bounds.Floor()
	half := dim
	spacing := gridSpacing(dim)

	minX := math.Floor((center.X-half)/spacing) * spacing
	maxX := math.Ceil((center.X+half)/spacing) * spacing
	minZ := math.Floor((center.Z-half)/spacing) * spacing
	maxZ := math.Ceil((center.Z+half)/spacing) * spacing

	var segments []lineSegment
	for i, x := 0, minX; x <= maxX+spacing/2; i, x = i+1, x+spacing {
		segments = append(segments, lineSegment{
			a:     geometry.NewVector3(x, floor, minZ),
			b:     geometry.NewVector3(x, floor, maxZ),
			color: gridLineColor(i),
		})
	}
	for i, z := 0, minZ; z <= maxZ+spacing/2; i, z = i+1, z+spacing {
		segments = append(segments, lineSegment{
			a:     geometry.NewVector3(minX, floor, z),
			b:     geometry.NewVector3(maxX, floor, z),
			color: gridLineColor(i),
		})
	}
	return segments
}

func gridLineColor(index int) color.RGBA {
	if index%5 == 0 {
		return gridMajorColor
	}
	return gridMinorColor
}

// gridSpacing picks a 1-2-5 spacing that yields a readable line count
// for the model size
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

// buildAxes places orientation axes at the grid corner, half the
// characteristic dimension long
func buildAxes(bounds geometry.Bounds, dim float64) []lineSegment {
	center := bounds.Center()
	origin := geometry.NewVector3(center.X-dim, bounds.Floor(), center.Z-dim)
	length := dim / 2

	return []lineSegment{
		{a: origin, b: origin.Add(geometry.NewVector3(length, 0, 0)), color: axisXColor},
		{a: origin, b: origin.Add(geometry.NewVector3(0, length, 0)), color: axisYColor},
		{a: origin, b: origin.Add(geometry.NewVector3(0, 0, length)), color: axisZColor},
	}
}
