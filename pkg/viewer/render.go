package viewer

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

var (
	// Dark background so the light label panels and the shaded body read
	// well; same family as the GPU variant's clear color.
	defaultBackground = color.RGBA{15, 18, 25, 255}

	bodyColor = color.RGBA{126, 152, 196, 255}
	edgeColor = color.RGBA{222, 228, 238, 255}
)

// zBias pulls wireframe edges slightly toward the camera so they stay
// visible on top of their own faces.
const edgeZBias = 0.998

// Renderer rasterizes a scene into an offscreen RGBA surface. The surface
// and its depth buffer are tracked resources, released by Dispose.
type Renderer struct {
	width      int
	height     int
	background color.RGBA
	wireframe  bool
	img        *image.RGBA
	zbuf       []float64

	resources int
	disposed  bool
}

// NewRenderer allocates a render surface. A non-positive size is a
// surface-acquisition failure and is returned to the caller.
func NewRenderer(width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cannot create %dx%d render surface", width, height)
	}
	r := &Renderer{
		width:      width,
		height:     height,
		background: defaultBackground,
		wireframe:  true,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuf:       make([]float64, width*height),
		resources:  2,
	}
	acquireResources(r.resources)
	return r, nil
}

// SetBackground overrides the clear color
func (r *Renderer) SetBackground(c color.RGBA) {
	r.background = c
}

// SetWireframe enables or disables the edge overlay
func (r *Renderer) SetWireframe(enabled bool) {
	r.wireframe = enabled
}

// Size returns the surface dimensions
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Dispose releases the render surface. Safe to call twice.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	releaseResources(r.resources)
	r.img = nil
	r.zbuf = nil
}

// Frame redraws the scene from the camera's point of view and returns the
// surface. A nil or disposed scene yields the bare background, so the
// viewport is never left undefined.
func (r *Renderer) Frame(s *Scene, c *Camera) *image.RGBA {
	if r.disposed {
		return nil
	}

	r.clear()
	if s == nil || s.disposed || c == nil {
		return r.img
	}

	w, h := float64(r.width), float64(r.height)

	for _, seg := range s.grid {
		r.drawSegment(seg, c, w, h)
	}
	for _, seg := range s.axes {
		r.drawSegment(seg, c, w, h)
	}

	r.drawBody(s, c, w, h)
	if r.wireframe {
		r.drawEdges(s, c, w, h)
	}
	r.drawSprites(s, c, w, h)

	return r.img
}

func (r *Renderer) clear() {
	for i := range r.zbuf {
		r.zbuf[i] = math.MaxFloat64
	}
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.img.SetRGBA(x, y, r.background)
		}
	}
}

func (r *Renderer) drawSegment(seg lineSegment, c *Camera, w, h float64) {
	x1, y1, z1 := c.Project(seg.a, w, h)
	x2, y2, z2 := c.Project(seg.b, w, h)
	if z1 <= nearPlane || z2 <= nearPlane {
		return
	}
	drawDepthLine(r.img, r.zbuf, point3{x1, y1, z1}, point3{x2, y2, z2}, seg.color, 1.0)
}

// drawBody renders the solid mesh with per-face shading from the light rig
func (r *Renderer) drawBody(s *Scene, c *Camera, w, h float64) {
	m := s.mesh
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, cc := m.Triangle(i)

		x1, y1, z1 := c.Project(a, w, h)
		x2, y2, z2 := c.Project(b, w, h)
		x3, y3, z3 := c.Project(cc, w, h)
		if z1 <= nearPlane || z2 <= nearPlane || z3 <= nearPlane {
			continue
		}

		normal := m.FaceNormal(i)
		intensity := s.light.ambient +
			(1-s.light.ambient)*math.Max(0, -normal.Dot(s.light.direction))

		col := color.RGBA{
			R: uint8(float64(bodyColor.R) * intensity),
			G: uint8(float64(bodyColor.G) * intensity),
			B: uint8(float64(bodyColor.B) * intensity),
			A: 255,
		}
		fillTriangle(r.img, r.zbuf, point3{x1, y1, z1}, point3{x2, y2, z2}, point3{x3, y3, z3}, col)
	}
}

// drawEdges overlays the wireframe on the solid body so flat faces remain
// legible at every zoom level
func (r *Renderer) drawEdges(s *Scene, c *Camera, w, h float64) {
	m := s.mesh
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, cc := m.Triangle(i)

		x1, y1, z1 := c.Project(a, w, h)
		x2, y2, z2 := c.Project(b, w, h)
		x3, y3, z3 := c.Project(cc, w, h)
		if z1 <= nearPlane || z2 <= nearPlane || z3 <= nearPlane {
			continue
		}

		p1 := point3{x1, y1, z1}
		p2 := point3{x2, y2, z2}
		p3 := point3{x3, y3, z3}
		drawDepthLine(r.img, r.zbuf, p1, p2, edgeColor, edgeZBias)
		drawDepthLine(r.img, r.zbuf, p2, p3, edgeColor, edgeZBias)
		drawDepthLine(r.img, r.zbuf, p3, p1, edgeColor, edgeZBias)
	}
}

// drawSprites billboards the room labels in screen space after the 3D
// pass. Labels ignore the depth buffer: identification beats placement
// fidelity, so they always render on top.
func (r *Renderer) drawSprites(s *Scene, c *Camera, w, h float64) {
	fovScale := math.Tan(c.FOV / 2)
	for _, sp := range s.sprites {
		sx, sy, depth := c.Project(sp.label.Anchor, w, h)
		if depth <= nearPlane {
			continue
		}

		// Perspective-correct pixel height for the label's world height.
		targetPx := sp.label.Height / depth / fovScale * (h / 2)
		scale := targetPx / float64(sp.img.Bounds().Dy())
		if scale < 0.6 {
			scale = 0.6
		}
		if scale > 5 {
			scale = 5
		}

		blitScaled(r.img, sp.img, int(sx), int(sy), scale)
	}
}
