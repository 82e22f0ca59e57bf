// Package label synthesizes the per-room billboard labels. Placement and
// scale are pure arithmetic on the room's own fields; labels never reference
// mesh topology and are recomputed whenever the scene is rebuilt.
package label

import (
	"fmt"

	"github.com/planwerk/roomview/pkg/building"
	"github.com/planwerk/roomview/pkg/geometry"
)

const (
	// Labels float 20% of the room height above the top surface so they
	// never intersect the geometry they identify.
	raiseFactor = 1.2

	// World-space label width as a fraction of the smaller footprint side.
	widthFactor = 0.8

	// Height-to-width aspect, taller when load lines are shown.
	aspectNameOnly  = 0.30
	aspectWithLoads = 0.55
)

// Options selects what the labels carry
type Options struct {
	// ShowNames disables the annotation layer entirely when false.
	ShowNames bool
	// ShowLoads adds cooling/heating readout lines for rooms that have them.
	ShowLoads bool
}

// Label is one camera-facing billboard: text lines plus a world-space
// anchor and size. The first line is always the room name.
type Label struct {
	RoomID string
	Lines  []string
	Anchor geometry.Vector3
	Width  float64
	Height float64
}

// Build synthesizes one label per room. Rooms with undefined load fields
// get a name-only label even when the load overlay is enabled.
func Build(rooms []building.Room, opts Options) []Label {
	if !opts.ShowNames {
		return nil
	}

	labels := make([]Label, 0, len(rooms))
	for _, room := range rooms {
		labels = append(labels, forRoom(room, opts))
	}
	return labels
}

func forRoom(room building.Room, opts Options) Label {
	lines := []string{room.Name}
	if opts.ShowLoads {
		if room.CoolingLoad != nil {
			lines = append(lines, formatLoad("Cooling", *room.CoolingLoad))
		}
		if room.HeatingLoad != nil {
			lines = append(lines, formatLoad("Heating", *room.HeatingLoad))
		}
	}

	cx, cy := room.FootprintCenter()
	side := room.Width
	if room.Depth < side {
		side = room.Depth
	}

	aspect := aspectNameOnly
	if len(lines) > 1 {
		aspect = aspectWithLoads
	}

	width := side * widthFactor
	return Label{
		RoomID: room.ID,
		Lines:  lines,
		// Plan coordinates map to X/Z; the vertical axis is Y.
		Anchor: geometry.NewVector3(cx, room.Z+room.Height*raiseFactor, cy),
		Width:  width,
		Height: width * aspect,
	}
}

// formatLoad renders a watt magnitude as kilowatts with one decimal place
func formatLoad(kind string, watts float64) string {
	return fmt.Sprintf("%s %.1f kW", kind, watts/1000.0)
}
