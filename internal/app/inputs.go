package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/planwerk/roomview/internal/logger"
	"github.com/planwerk/roomview/pkg/building"
)

// Inputs are the file paths one viewing session is built from. The rooms
// and loads files are optional.
type Inputs struct {
	MeshPath  string
	RoomsPath string
	LoadsPath string
}

// Files returns the existing paths, for the watcher
func (in Inputs) Files() []string {
	var files []string
	for _, p := range []string{in.MeshPath, in.RoomsPath, in.LoadsPath} {
		if p != "" {
			files = append(files, p)
		}
	}
	return files
}

// Read loads the mesh text and the annotated room list from disk. Load
// figures are merged into the rooms by id, falling back to name.
func (in Inputs) Read() (meshText string, rooms []building.Room, err error) {
	data, err := os.ReadFile(in.MeshPath)
	if err != nil {
		return "", nil, fmt.Errorf("reading mesh file: %w", err)
	}
	meshText = string(data)

	if in.RoomsPath != "" {
		rooms, err = building.LoadRooms(in.RoomsPath)
		if err != nil {
			return "", nil, err
		}
	}

	if in.LoadsPath != "" && len(rooms) > 0 {
		figures, err := building.LoadFigures(in.LoadsPath)
		if err != nil {
			return "", nil, err
		}
		matched := building.ApplyLoads(rooms, figures)
		logger.Debug("applied load figures",
			zap.Int("figures", len(figures)),
			zap.Int("matched", matched))
	}

	return meshText, rooms, nil
}
