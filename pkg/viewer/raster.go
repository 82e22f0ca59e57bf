package viewer

import (
	"image"
	"image/color"
	"math"
)

// point3 is a projected vertex: surface coordinates plus view depth
type point3 struct {
	x, y, z float64
}

// fillTriangle rasterizes a projected triangle with scanline z-buffering.
// Smaller z wins; pixels outside the surface are clipped.
func fillTriangle(img *image.RGBA, zbuf []float64, p0, p1, p2 point3, col color.RGBA) {
	// Sort by Y, top to bottom.
	if p0.y > p1.y {
		p0, p1 = p1, p0
	}
	if p1.y > p2.y {
		p1, p2 = p2, p1
	}
	if p0.y > p1.y {
		p0, p1 = p1, p0
	}

	bounds := img.Bounds()
	width := bounds.Max.X

	yStart := int(math.Max(0, math.Ceil(p0.y)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Floor(p2.y)))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// Long edge p0-p2 always spans the scanline; the short side is
		// p0-p1 above the middle vertex and p1-p2 below it.
		xa, za, oka := edgeAt(p0, p2, fy)
		var xb, zb float64
		var okb bool
		if fy < p1.y {
			xb, zb, okb = edgeAt(p0, p1, fy)
		} else {
			xb, zb, okb = edgeAt(p1, p2, fy)
		}
		if !oka || !okb {
			continue
		}

		if xa > xb {
			xa, xb = xb, xa
			za, zb = zb, za
		}

		xStart := int(math.Max(0, math.Ceil(xa)))
		xEnd := int(math.Min(float64(bounds.Max.X-1), math.Floor(xb)))

		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if xb != xa {
				t = (float64(x) - xa) / (xb - xa)
			}
			z := za + t*(zb-za)

			idx := y*width + x
			if idx >= 0 && idx < len(zbuf) && z < zbuf[idx] {
				zbuf[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// edgeAt intersects an edge with a horizontal scanline, interpolating depth
func edgeAt(a, b point3, y float64) (x, z float64, ok bool) {
	if a.y == b.y || y < math.Min(a.y, b.y) || y > math.Max(a.y, b.y) {
		return 0, 0, false
	}
	t := (y - a.y) / (b.y - a.y)
	return a.x + t*(b.x-a.x), a.z + t*(b.z-a.z), true
}

// drawDepthLine draws a depth-tested line between two projected points
// using Bresenham stepping with z interpolation. zBias scales the
// interpolated depth so edge overlays win against their own faces.
func drawDepthLine(img *image.RGBA, zbuf []float64, a, b point3, col color.RGBA, zBias float64) {
	bounds := img.Bounds()
	width := bounds.Max.X

	x1, y1 := int(math.Round(a.x)), int(math.Round(a.y))
	x2, y2 := int(math.Round(b.x)), int(math.Round(b.y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := dx
	if dy > steps {
		steps = dy
	}

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	step := 0
	x, y := x1, y1
	for {
		if x >= 0 && x < bounds.Max.X && y >= 0 && y < bounds.Max.Y {
			t := 0.0
			if steps > 0 {
				t = float64(step) / float64(steps)
			}
			z := (a.z + t*(b.z-a.z)) * zBias

			idx := y*width + x
			if idx >= 0 && idx < len(zbuf) && z < zbuf[idx] {
				zbuf[idx] = z
				img.SetRGBA(x, y, col)
			}
		}

		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
		step++
	}
}

// fillRoundedRect fills a rectangle with rounded corners, blending over
// whatever is already in the image
func fillRoundedRect(img *image.RGBA, r image.Rectangle, radius int, col color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if insideRounded(x, y, r, radius) {
				blendPixel(img, x, y, col)
			}
		}
	}
}

func insideRounded(x, y int, r image.Rectangle, radius int) bool {
	cx, cy := 0, 0
	switch {
	case x < r.Min.X+radius && y < r.Min.Y+radius:
		cx, cy = r.Min.X+radius, r.Min.Y+radius
	case x >= r.Max.X-radius && y < r.Min.Y+radius:
		cx, cy = r.Max.X-radius-1, r.Min.Y+radius
	case x < r.Min.X+radius && y >= r.Max.Y-radius:
		cx, cy = r.Min.X+radius, r.Max.Y-radius-1
	case x >= r.Max.X-radius && y >= r.Max.Y-radius:
		cx, cy = r.Max.X-radius-1, r.Max.Y-radius-1
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// blendPixel composites col over the existing pixel (straight alpha)
func blendPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return
	}
	if col.A == 255 {
		img.SetRGBA(x, y, col)
		return
	}
	dst := img.RGBAAt(x, y)
	a := int(col.A)
	inv := 255 - a
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((int(col.R)*a + int(dst.R)*inv) / 255),
		G: uint8((int(col.G)*a + int(dst.G)*inv) / 255),
		B: uint8((int(col.B)*a + int(dst.B)*inv) / 255),
		A: 255,
	})
}

// blitScaled draws src scaled by a uniform factor, centered horizontally on
// cx with its bottom edge at bottomY, sampling nearest-neighbor. Depth is
// ignored: sprites always render on top.
func blitScaled(dst *image.RGBA, src *image.RGBA, cx, bottomY int, scale float64) {
	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()
	outW := int(float64(srcW) * scale)
	outH := int(float64(srcH) * scale)
	if outW <= 0 || outH <= 0 {
		return
	}

	left := cx - outW/2
	top := bottomY - outH

	for y := 0; y < outH; y++ {
		sy := int(float64(y) / scale)
		if sy >= srcH {
			sy = srcH - 1
		}
		for x := 0; x < outW; x++ {
			sx := int(float64(x) / scale)
			if sx >= srcW {
				sx = srcW - 1
			}
			c := src.RGBAAt(sx, sy)
			if c.A == 0 {
				continue
			}
			blendPixel(dst, left+x, top+y, c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
