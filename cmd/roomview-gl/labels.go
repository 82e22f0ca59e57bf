package main

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/planwerk/roomview/pkg/label"
)

const (
	labelFontSize   = 18
	labelLinePad    = 4
	labelPanelPad   = 8
	labelPanelAlpha = 235
)

// drawLabels billboards the room labels in screen space after the 3D
// pass. They ignore depth so every room stays identifiable.
func drawLabels(labels []label.Label, cam rl.Camera3D) {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	for _, l := range labels {
		anchor := rl.Vector3{
			X: float32(l.Anchor.X),
			Y: float32(l.Anchor.Y),
			Z: float32(l.Anchor.Z),
		}

		// Skip labels behind the camera plane.
		toAnchor := rl.Vector3Subtract(anchor, cam.Position)
		forward := rl.Vector3Subtract(cam.Target, cam.Position)
		if rl.Vector3DotProduct(toAnchor, forward) <= 0 {
			continue
		}

		screen := rl.GetWorldToScreen(anchor, cam)
		if screen.X < -200 || screen.X > float32(screenW)+200 ||
			screen.Y < -200 || screen.Y > float32(screenH)+200 {
			continue
		}

		drawLabelPanel(l, screen)
	}
}

func drawLabelPanel(l label.Label, screen rl.Vector2) {
	maxWidth := int32(0)
	for _, line := range l.Lines {
		if w := rl.MeasureText(line, labelFontSize); w > maxWidth {
			maxWidth = w
		}
	}

	lineHeight := int32(labelFontSize + labelLinePad)
	width := maxWidth + labelPanelPad*2
	height := lineHeight*int32(len(l.Lines)) + labelPanelPad*2

	left := int32(screen.X) - width/2
	top := int32(screen.Y) - height

	panel := rl.Rectangle{
		X:      float32(left),
		Y:      float32(top),
		Width:  float32(width),
		Height: float32(height),
	}
	rl.DrawRectangleRounded(panel, 0.3, 6, rl.NewColor(235, 238, 245, labelPanelAlpha))

	for i, line := range l.Lines {
		w := rl.MeasureText(line, labelFontSize)
		x := left + (width-w)/2
		y := top + labelPanelPad + int32(i)*lineHeight
		rl.DrawText(line, x, y, labelFontSize, labelLineColor(i, line))
	}
}

func labelLineColor(index int, line string) rl.Color {
	if index == 0 {
		return rl.NewColor(22, 26, 34, 255)
	}
	if strings.HasPrefix(line, "Cooling") {
		return rl.NewColor(36, 92, 170, 255)
	}
	return rl.NewColor(176, 84, 24, 255)
}
