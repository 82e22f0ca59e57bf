package building

import "testing"

func f64(v float64) *float64 { return &v }

func TestApplyLoadsByID(t *testing.T) {
	rooms := []Room{
		{ID: "r1", Name: "Office"},
		{ID: "r2", Name: "Lobby"},
	}
	figures := []LoadFigure{
		{RoomID: "r2", Cooling: f64(12000), Heating: f64(8500)},
	}

	matched := ApplyLoads(rooms, figures)
	if matched != 1 {
		t.Fatalf("expected 1 matched room, got %d", matched)
	}
	if rooms[0].HasLoads() {
		t.Error("unmatched room should stay without loads")
	}
	if rooms[1].CoolingLoad == nil || *rooms[1].CoolingLoad != 12000 {
		t.Errorf("unexpected cooling load: %v", rooms[1].CoolingLoad)
	}
	if rooms[1].HeatingLoad == nil || *rooms[1].HeatingLoad != 8500 {
		t.Errorf("unexpected heating load: %v", rooms[1].HeatingLoad)
	}
}

func TestApplyLoadsFallsBackToName(t *testing.T) {
	rooms := []Room{{ID: "r1", Name: "Kitchen"}}
	figures := []LoadFigure{{Room: "Kitchen", Heating: f64(900)}}

	if matched := ApplyLoads(rooms, figures); matched != 1 {
		t.Fatalf("expected name match, got %d", matched)
	}
	if rooms[0].CoolingLoad != nil {
		t.Error("cooling load should stay unset")
	}
	if rooms[0].HeatingLoad == nil || *rooms[0].HeatingLoad != 900 {
		t.Errorf("unexpected heating load: %v", rooms[0].HeatingLoad)
	}
}

func TestApplyLoadsPrefersID(t *testing.T) {
	rooms := []Room{{ID: "r1", Name: "Office"}}
	figures := []LoadFigure{
		{Room: "Office", Cooling: f64(1)},
		{RoomID: "r1", Cooling: f64(2)},
	}

	ApplyLoads(rooms, figures)
	if rooms[0].CoolingLoad == nil || *rooms[0].CoolingLoad != 2 {
		t.Errorf("id match should win, got %v", rooms[0].CoolingLoad)
	}
}

func TestApplyLoadsIgnoresUnknownFigures(t *testing.T) {
	rooms := []Room{{ID: "r1", Name: "Office"}}
	figures := []LoadFigure{{RoomID: "zz", Room: "Nowhere", Cooling: f64(5)}}

	if matched := ApplyLoads(rooms, figures); matched != 0 {
		t.Errorf("expected no matches, got %d", matched)
	}
}
