package building

// LoadFigure is one per-room result from the thermal load calculation,
// matched into the room list before rendering. RoomID takes priority; Room
// (the display name) is the fallback key for calculators that do not carry
// ids through.
type LoadFigure struct {
	RoomID  string   `yaml:"room_id" json:"room_id"`
	Room    string   `yaml:"room" json:"room"`
	Cooling *float64 `yaml:"cooling_load" json:"cooling_load"`
	Heating *float64 `yaml:"heating_load" json:"heating_load"`
}

// ApplyLoads merges load figures into the room list, matching by id first
// and by name second. It returns the number of rooms that received at
// least one figure. Figures that match no room are ignored.
func ApplyLoads(rooms []Room, figures []LoadFigure) int {
	byID := make(map[string]*LoadFigure)
	byName := make(map[string]*LoadFigure)
	for i := range figures {
		f := &figures[i]
		if f.RoomID != "" {
			byID[f.RoomID] = f
		}
		if f.Room != "" {
			byName[f.Room] = f
		}
	}

	matched := 0
	for i := range rooms {
		f, ok := byID[rooms[i].ID]
		if !ok {
			f, ok = byName[rooms[i].Name]
		}
		if !ok || (f.Cooling == nil && f.Heating == nil) {
			continue
		}
		if f.Cooling != nil {
			rooms[i].CoolingLoad = f.Cooling
		}
		if f.Heating != nil {
			rooms[i].HeatingLoad = f.Heating
		}
		matched++
	}
	return matched
}
