package building

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type roomsFile struct {
	Rooms []Room `yaml:"rooms"`
}

type loadsFile struct {
	Loads []LoadFigure `yaml:"loads"`
}

// LoadRooms reads a room list from a YAML file with a top-level "rooms" key
func LoadRooms(path string) ([]Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rooms file: %w", err)
	}

	var f roomsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rooms file %s: %w", path, err)
	}
	return f.Rooms, nil
}

// LoadFigures reads load-calculation results from a YAML file with a
// top-level "loads" key
func LoadFigures(path string) ([]LoadFigure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading loads file: %w", err)
	}

	var f loadsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing loads file %s: %w", path, err)
	}
	return f.Loads, nil
}
