package building

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRooms(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.yaml")
	data := `rooms:
  - id: r1
    name: Office
    x: 0
    y: 0
    z: 0
    width: 4
    depth: 4
    height: 3
    cooling_load: 12000
  - id: r2
    name: Lobby
    x: 4
    y: 0
    z: 0
    width: 6
    depth: 4
    height: 3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	rooms, err := LoadRooms(path)
	if err != nil {
		t.Fatalf("LoadRooms failed: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0].CoolingLoad == nil || *rooms[0].CoolingLoad != 12000 {
		t.Errorf("unexpected cooling load: %v", rooms[0].CoolingLoad)
	}
	if rooms[1].HasLoads() {
		t.Error("second room should carry no loads")
	}
}

func TestLoadFigures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loads.yaml")
	data := `loads:
  - room_id: r1
    cooling_load: 2500
    heating_load: 1800
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	figures, err := LoadFigures(path)
	if err != nil {
		t.Fatalf("LoadFigures failed: %v", err)
	}
	if len(figures) != 1 {
		t.Fatalf("expected 1 figure, got %d", len(figures))
	}
	if figures[0].Cooling == nil || *figures[0].Cooling != 2500 {
		t.Errorf("unexpected cooling figure: %v", figures[0].Cooling)
	}
}

func TestLoadRoomsMissingFile(t *testing.T) {
	if _, err := LoadRooms(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
