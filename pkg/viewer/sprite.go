package viewer

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/planwerk/roomview/pkg/label"
)

var (
	panelColor   = color.RGBA{235, 238, 245, 235}
	nameColor    = color.RGBA{22, 26, 34, 255}
	coolingColor = color.RGBA{36, 92, 170, 255}
	heatingColor = color.RGBA{176, 84, 24, 255}
)

// labelSprite is a room label baked into a texture at scene-build time:
// a rounded backing panel with the text lines drawn on top. The renderer
// billboards it at the label's world anchor.
type labelSprite struct {
	label label.Label
	img   *image.RGBA
}

// renderSprite rasterizes a label into its backing texture
func renderSprite(l label.Label) *labelSprite {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil() + 2
	ascent := metrics.Ascent.Ceil()
	pad := 7

	maxWidth := 0
	for _, line := range l.Lines {
		if w := font.MeasureString(face, line).Ceil(); w > maxWidth {
			maxWidth = w
		}
	}

	width := maxWidth + pad*2
	height := lineHeight*len(l.Lines) + pad*2
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	fillRoundedRect(img, img.Bounds(), 6, panelColor)

	for i, line := range l.Lines {
		w := font.MeasureString(face, line).Ceil()
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(lineColor(i, line)),
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I((width - w) / 2),
				Y: fixed.I(pad + i*lineHeight + ascent),
			},
		}
		d.DrawString(line)
	}

	return &labelSprite{label: l, img: img}
}

// lineColor picks the text color: the name line is near-black, load
// readouts are tinted by kind.
func lineColor(index int, line string) color.RGBA {
	if index == 0 {
		return nameColor
	}
	if strings.HasPrefix(line, "Cooling") {
		return coolingColor
	}
	return heatingColor
}
