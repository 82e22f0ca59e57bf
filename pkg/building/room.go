// Package building holds the room metadata supplied alongside the mesh by
// the geometry-extraction and load-calculation collaborators.
package building

// Room describes one extracted space. X and Y locate the footprint origin
// in plan coordinates, Z is the base elevation, and Width/Depth/Height span
// the room box. Load magnitudes are in watts and optional: nil means the
// calculation collaborator has not supplied a figure for this room.
type Room struct {
	ID     string  `yaml:"id" json:"id"`
	Name   string  `yaml:"name" json:"name"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Z      float64 `yaml:"z" json:"z"`
	Width  float64 `yaml:"width" json:"width"`
	Depth  float64 `yaml:"depth" json:"depth"`
	Height float64 `yaml:"height" json:"height"`

	CoolingLoad *float64 `yaml:"cooling_load,omitempty" json:"cooling_load,omitempty"`
	HeatingLoad *float64 `yaml:"heating_load,omitempty" json:"heating_load,omitempty"`
}

// FootprintCenter returns the horizontal center of the room in plan
// coordinates.
func (r Room) FootprintCenter() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Depth/2
}

// Top returns the elevation of the room's top surface
func (r Room) Top() float64 {
	return r.Z + r.Height
}

// FloorArea returns the footprint area
func (r Room) FloorArea() float64 {
	return r.Width * r.Depth
}

// Volume returns the room box volume
func (r Room) Volume() float64 {
	return r.FloorArea() * r.Height
}

// HasLoads reports whether at least one load figure is present
func (r Room) HasLoads() bool {
	return r.CoolingLoad != nil || r.HeatingLoad != nil
}
