// Package app wires the desktop application together: viewer, side panel,
// file watching and the frame loop.
package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"

	"github.com/planwerk/roomview/internal/config"
	"github.com/planwerk/roomview/internal/logger"
	"github.com/planwerk/roomview/pkg/building"
	"github.com/planwerk/roomview/pkg/viewer"
	"github.com/planwerk/roomview/pkg/watcher"
)

// App owns one desktop session
type App struct {
	cfg    *config.Config
	inputs Inputs

	window fyne.Window
	view   *viewer.Viewer
	widget *viewWidget
	panel  *infoPanel

	// Last good inputs, kept so overlay toggles can rebuild the scene
	// without touching the disk.
	meshText string
	rooms    []building.Room
}

// Run starts the desktop application and blocks until the window closes
func Run(cfg *config.Config, inputs Inputs) error {
	meshText, rooms, err := inputs.Read()
	if err != nil {
		return err
	}

	viewCfg := viewer.Config{
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		ShowLabels: cfg.Viewer.ShowLabels,
		ShowLoads:  cfg.Viewer.ShowLoads,
	}
	if bg, ok := cfg.Viewer.BackgroundColor(); ok {
		viewCfg.Background = bg
	}
	view, err := viewer.New(viewCfg)
	if err != nil {
		return fmt.Errorf("creating viewer: %w", err)
	}

	a := &App{
		cfg:      cfg,
		inputs:   inputs,
		view:     view,
		meshText: meshText,
		rooms:    rooms,
	}

	fa := fyneapp.New()
	a.window = fa.NewWindow("roomview - " + inputs.MeshPath)

	a.widget = newViewWidget(view)
	a.panel = newInfoPanel(cfg.Viewer.ShowLabels, cfg.Viewer.ShowLoads, a.onOverlayToggle)

	a.window.SetContent(container.NewBorder(nil, nil, nil, a.panel.container, a.widget))
	a.window.Resize(fyne.NewSize(float32(cfg.Viewer.Width), float32(cfg.Viewer.Height)))

	a.applyInputs(meshText, rooms)

	var fw *watcher.FileWatcher
	if cfg.Watch.Enabled {
		fw, err = watcher.New(cfg.Watch.Debounce, logger.Log)
		if err != nil {
			logger.Warn("file watching unavailable", zap.Error(err))
		} else if err := fw.Watch(inputs.Files(), func(string) {
			fyne.Do(a.reload)
		}); err != nil {
			logger.Warn("file watching unavailable", zap.Error(err))
			fw.Close()
			fw = nil
		} else {
			fw.Start()
		}
	}

	view.StartLoop(cfg.FrameInterval(), func() {
		fyne.Do(a.widget.refreshFrame)
	})

	a.window.SetOnClosed(func() {
		if fw != nil {
			fw.Close()
		}
		view.Close()
	})

	a.window.Canvas().Focus(a.widget)
	a.window.ShowAndRun()
	return nil
}

// applyInputs rebuilds the scene from mesh text and rooms and refreshes
// the side panel
func (a *App) applyInputs(meshText string, rooms []building.Room) {
	a.meshText = meshText
	a.rooms = rooms
	a.view.Load(meshText, rooms)
	a.panel.update(a.view.Scene().Mesh(), rooms)
}

// reload re-reads the input files after a change on disk. A broken
// intermediate save keeps the previous scene.
func (a *App) reload() {
	meshText, rooms, err := a.inputs.Read()
	if err != nil {
		logger.Warn("reload skipped", zap.Error(err))
		return
	}
	logger.Info("inputs changed, reloading scene")
	a.applyInputs(meshText, rooms)
}

// onOverlayToggle rebuilds the scene with the new annotation settings
func (a *App) onOverlayToggle(labels, loads bool) {
	a.view.SetOverlay(labels, loads)
	a.applyInputs(a.meshText, a.rooms)
}
