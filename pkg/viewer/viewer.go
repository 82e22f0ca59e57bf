// Package viewer renders the building mesh as an explorable 3D scene:
// software rasterization of the shaded body with a wireframe overlay,
// ground grid, orientation axes and per-room billboard labels, driven by
// an orbit camera with damped interaction.
package viewer

import (
	"image"
	"image/color"
	"time"

	"github.com/planwerk/roomview/pkg/building"
	"github.com/planwerk/roomview/pkg/mesh"
)

// Config is the viewer's configuration surface. A zero Background keeps
// the renderer's default clear color.
type Config struct {
	Width      int
	Height     int
	ShowLabels bool
	ShowLoads  bool
	Background color.RGBA
}

// Viewer is the owning structure of one viewing session: scene, camera,
// render surface and the frame loop. Nothing else holds references into
// the scene graph, so Dispose-before-rebuild is the only lifecycle rule.
// All methods must be called from a single goroutine; the frame loop only
// fires the tick callback and leaves rendering to the caller's thread.
type Viewer struct {
	cfg      Config
	renderer  *Renderer
	scene     *Scene
	camera    *Camera
	wireframe bool

	stop   chan struct{}
	closed bool
}

// New creates a viewer with an empty scene. Surface allocation failures
// are returned, not swallowed.
func New(cfg Config) (*Viewer, error) {
	renderer, err := NewRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Background.A != 0 {
		renderer.SetBackground(cfg.Background)
	}
	return &Viewer{
		cfg:       cfg,
		renderer:  renderer,
		camera:    NewCamera(mesh.NewMesh().Bounds()),
		wireframe: true,
	}, nil
}

// Load replaces the viewer's inputs: the previous scene is disposed
// before the new one is built, and the camera reframes to the new
// geometry. Malformed mesh text degrades to an empty scene.
func (v *Viewer) Load(meshText string, rooms []building.Room) {
	if v.closed {
		return
	}
	if v.scene != nil {
		v.scene.Dispose()
	}

	m := mesh.ParseString(meshText)
	v.scene = BuildScene(m, rooms, Options{
		ShowLabels: v.cfg.ShowLabels,
		ShowLoads:  v.cfg.ShowLoads,
	})
	v.camera = NewCamera(v.scene.Bounds())
}

// ToggleWireframe flips the edge overlay and reports the new state
func (v *Viewer) ToggleWireframe() bool {
	v.wireframe = !v.wireframe
	v.renderer.SetWireframe(v.wireframe)
	return v.wireframe
}

// SetOverlay changes the annotation settings for subsequent loads
func (v *Viewer) SetOverlay(showLabels, showLoads bool) {
	v.cfg.ShowLabels = showLabels
	v.cfg.ShowLoads = showLoads
}

// Camera returns the interaction controller
func (v *Viewer) Camera() *Camera {
	return v.camera
}

// Scene returns the current scene, or nil before the first Load
func (v *Viewer) Scene() *Scene {
	return v.scene
}

// Size returns the current render surface dimensions
func (v *Viewer) Size() (width, height int) {
	return v.renderer.Size()
}

// Resize swaps the render surface for a new size. The old surface is
// released only after the new one exists.
func (v *Viewer) Resize(width, height int) error {
	if v.closed {
		return nil
	}
	renderer, err := NewRenderer(width, height)
	if err != nil {
		return err
	}
	if v.cfg.Background.A != 0 {
		renderer.SetBackground(v.cfg.Background)
	}
	renderer.SetWireframe(v.wireframe)
	v.renderer.Dispose()
	v.renderer = renderer
	v.cfg.Width, v.cfg.Height = width, height
	return nil
}

// Frame advances damped camera motion by one tick and redraws. Returns
// nil after Close.
func (v *Viewer) Frame() *image.RGBA {
	if v.closed {
		return nil
	}
	v.camera.Step()
	return v.renderer.Frame(v.scene, v.camera)
}

// StartLoop fires tick at the given interval until StopLoop or Close.
// The callback is expected to marshal onto the rendering thread and call
// Frame there; the loop itself never touches the scene graph.
func (v *Viewer) StartLoop(interval time.Duration, tick func()) {
	if v.closed || v.stop != nil {
		return
	}
	stop := make(chan struct{})
	v.stop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				tick()
			}
		}
	}()
}

// StopLoop cancels the pending next-frame callback
func (v *Viewer) StopLoop() {
	if v.stop != nil {
		close(v.stop)
		v.stop = nil
	}
}

// Close tears the viewer down: the loop stops and every owned graphics
// resource is released. Further Frame calls return nil.
func (v *Viewer) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.StopLoop()
	if v.scene != nil {
		v.scene.Dispose()
		v.scene = nil
	}
	v.renderer.Dispose()
}
