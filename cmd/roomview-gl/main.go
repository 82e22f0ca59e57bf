// roomview-gl is the GPU-accelerated viewer variant. It reuses the same
// parsing, annotation and camera model as the desktop app but renders
// through raylib instead of the software rasterizer.
package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/planwerk/roomview/internal/app"
	"github.com/planwerk/roomview/pkg/label"
	"github.com/planwerk/roomview/pkg/mesh"
	"github.com/planwerk/roomview/pkg/viewer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: roomview-gl <mesh-file> [rooms.yaml] [loads.yaml]")
		os.Exit(1)
	}

	inputs := app.Inputs{MeshPath: os.Args[1]}
	if len(os.Args) > 2 {
		inputs.RoomsPath = os.Args[2]
	}
	if len(os.Args) > 3 {
		inputs.LoadsPath = os.Args[3]
	}

	meshText, rooms, err := inputs.Read()
	if err != nil {
		fmt.Printf("Error loading inputs: %v\n", err)
		os.Exit(1)
	}

	m := mesh.ParseString(meshText)
	labels := label.Build(rooms, label.Options{ShowNames: true, ShowLoads: true})

	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(screenWidth, screenHeight, "roomview")
	rl.SetTargetFPS(60)

	bounds := m.Bounds()
	dim := bounds.CharacteristicDimension()
	glMesh := buildRaylibMesh(m)
	material := rl.LoadMaterialDefault()

	camera := viewer.NewCamera(bounds)
	rlCam := rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	showWireframe := true
	showLabels := true

	for !rl.WindowShouldClose() {
		handleInput(camera)
		if rl.IsKeyPressed(rl.KeyW) {
			showWireframe = !showWireframe
		}
		if rl.IsKeyPressed(rl.KeyL) {
			showLabels = !showLabels
		}
		camera.Step()

		pos := camera.Position()
		rlCam.Position = rl.Vector3{X: float32(pos.X), Y: float32(pos.Y), Z: float32(pos.Z)}
		rlCam.Target = rl.Vector3{
			X: float32(camera.Target.X),
			Y: float32(camera.Target.Y),
			Z: float32(camera.Target.Z),
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(rlCam)
		drawGrid(bounds, dim)
		drawAxes(bounds, dim)
		if m.TriangleCount() > 0 {
			rl.DrawMesh(glMesh, material, rl.MatrixIdentity())
			if showWireframe {
				drawWireframe(m)
			}
		}
		rl.EndMode3D()

		// Labels render in screen space after the 3D pass, always on top.
		if showLabels {
			drawLabels(labels, rlCam)
		}

		rl.EndDrawing()
	}

	if m.TriangleCount() > 0 {
		rl.UnloadMesh(&glMesh)
	}
	rl.CloseWindow()
}

// handleInput feeds mouse and preset-key interaction into the shared
// orbit camera
func handleInput(camera *viewer.Camera) {
	if rl.IsKeyPressed(rl.KeyHome) {
		camera.Reset()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		camera.TopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		camera.FrontView()
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		camera.Orbit(float64(delta.X)*0.01, -float64(delta.Y)*0.01)
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		camera.Pan(float64(delta.X), float64(delta.Y))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		camera.Zoom(-float64(wheel) * 0.1)
	}
}
