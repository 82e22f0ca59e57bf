package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/planwerk/roomview/pkg/analysis"
	"github.com/planwerk/roomview/pkg/building"
	"github.com/planwerk/roomview/pkg/mesh"
)

// infoPanel is the side panel: model statistics, room totals and the
// annotation toggles.
type infoPanel struct {
	meshLabel  *widget.Label
	roomsLabel *widget.Label

	labelsCheck *widget.Check
	loadsCheck  *widget.Check

	container fyne.CanvasObject
}

func newInfoPanel(showLabels, showLoads bool, onToggle func(labels, loads bool)) *infoPanel {
	p := &infoPanel{
		meshLabel:  widget.NewLabel(""),
		roomsLabel: widget.NewLabel(""),
	}

	p.labelsCheck = widget.NewCheck("Room labels", func(bool) { p.fireToggle(onToggle) })
	p.loadsCheck = widget.NewCheck("Load readouts", func(bool) { p.fireToggle(onToggle) })
	p.labelsCheck.SetChecked(showLabels)
	p.loadsCheck.SetChecked(showLoads)

	instructions := widget.NewLabel(
		"• Drag to orbit the view\n" +
			"• Right-drag to pan\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Building:"),
		widget.NewSeparator(),
		p.meshLabel,
		widget.NewSeparator(),
		widget.NewLabel("Rooms:"),
		widget.NewSeparator(),
		p.roomsLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		p.labelsCheck,
		p.loadsCheck,
		widget.NewSeparator(),
		instructions,
	)

	scroll := container.NewVScroll(panel)
	scroll.SetMinSize(fyne.NewSize(280, 0))
	p.container = scroll
	return p
}

func (p *infoPanel) fireToggle(onToggle func(labels, loads bool)) {
	if onToggle != nil {
		onToggle(p.labelsCheck.Checked, p.loadsCheck.Checked)
	}
}

// update refreshes the statistics after a (re)load
func (p *infoPanel) update(m *mesh.Mesh, rooms []building.Room) {
	ms := analysis.AnalyzeMesh(m)
	p.meshLabel.SetText(fmt.Sprintf(
		"Vertices: %d\nTriangles: %d\nSurface Area: %.2f\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		ms.VertexCount,
		ms.TriangleCount,
		ms.SurfaceArea,
		ms.Dimensions.X,
		ms.Dimensions.Y,
		ms.Dimensions.Z,
	))

	rs := analysis.AnalyzeRooms(rooms)
	p.roomsLabel.SetText(fmt.Sprintf(
		"Rooms: %d\nWith loads: %d\nFloor area: %.1f m²\nVolume: %.1f m³\n\nCooling: %.1f kW\nHeating: %.1f kW",
		rs.RoomCount,
		rs.WithLoads,
		rs.FloorArea,
		rs.Volume,
		rs.CoolingTotal/1000.0,
		rs.HeatingTotal/1000.0,
	))
}
