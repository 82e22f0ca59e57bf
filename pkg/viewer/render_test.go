package viewer

import (
	"image"
	"image/color"
	"testing"

	"github.com/planwerk/roomview/pkg/mesh"
)

func TestNewRendererRejectsBadSize(t *testing.T) {
	if _, err := NewRenderer(0, 100); err == nil {
		t.Error("zero width should fail")
	}
	if _, err := NewRenderer(100, -1); err == nil {
		t.Error("negative height should fail")
	}
}

func TestFrameWithoutSceneIsBackground(t *testing.T) {
	r, err := NewRenderer(64, 48)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Dispose()

	img := r.Frame(nil, nil)
	if img == nil {
		t.Fatal("expected a frame")
	}
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y) != defaultBackground {
				t.Fatalf("pixel (%d,%d) is not background before any scene loads", x, y)
			}
		}
	}
}

func TestFrameDrawsTheMesh(t *testing.T) {
	r, err := NewRenderer(320, 240)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Dispose()

	s := BuildScene(mesh.ParseString(cubeText), nil, Options{})
	defer s.Dispose()
	c := NewCamera(s.Bounds())

	img := r.Frame(s, c)
	if countNonBackground(t, img) == 0 {
		t.Error("a framed cube should cover some pixels")
	}
}

func TestLabelsRenderOnTop(t *testing.T) {
	r, err := NewRenderer(320, 240)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Dispose()

	plain := BuildScene(mesh.ParseString(cubeText), testRooms(), Options{})
	c := NewCamera(plain.Bounds())
	base := countNonBackground(t, r.Frame(plain, c))
	plain.Dispose()

	labeled := BuildScene(mesh.ParseString(cubeText), testRooms(), Options{ShowLabels: true})
	defer labeled.Dispose()
	withLabels := countNonBackground(t, r.Frame(labeled, c))

	if withLabels <= base {
		t.Errorf("label pass should add pixels: %d without, %d with", base, withLabels)
	}
}

func TestWireframeToggleChangesFrame(t *testing.T) {
	r, err := NewRenderer(320, 240)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Dispose()

	s := BuildScene(mesh.ParseString(cubeText), nil, Options{})
	defer s.Dispose()
	c := NewCamera(s.Bounds())

	withEdges := edgePixelCount(t, r.Frame(s, c))
	r.SetWireframe(false)
	withoutEdges := edgePixelCount(t, r.Frame(s, c))

	if withoutEdges >= withEdges {
		t.Errorf("disabling the wireframe should remove edge pixels: %d -> %d",
			withEdges, withoutEdges)
	}
}

func TestCustomBackground(t *testing.T) {
	r, err := NewRenderer(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Dispose()

	custom := color.RGBA{40, 10, 10, 255}
	r.SetBackground(custom)
	img := r.Frame(nil, nil)
	if img.RGBAAt(0, 0) != custom {
		t.Errorf("corner pixel %v, want %v", img.RGBAAt(0, 0), custom)
	}
}

func TestDisposedSceneRendersNothing(t *testing.T) {
	r, err := NewRenderer(64, 48)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Dispose()

	s := BuildScene(mesh.ParseString(cubeText), nil, Options{})
	c := NewCamera(s.Bounds())
	s.Dispose()

	img := r.Frame(s, c)
	if countNonBackground(t, img) != 0 {
		t.Error("a disposed scene must not draw")
	}
}

func TestDisposedRendererReturnsNil(t *testing.T) {
	r, err := NewRenderer(64, 48)
	if err != nil {
		t.Fatal(err)
	}
	r.Dispose()
	r.Dispose()

	if img := r.Frame(nil, nil); img != nil {
		t.Error("disposed renderer should stop producing frames")
	}
}

func edgePixelCount(t *testing.T, img *image.RGBA) int {
	t.Helper()
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == edgeColor {
				n++
			}
		}
	}
	return n
}

func countNonBackground(t *testing.T, img *image.RGBA) int {
	t.Helper()
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != defaultBackground {
				n++
			}
		}
	}
	return n
}
