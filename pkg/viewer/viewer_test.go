package viewer

import (
	"sync/atomic"
	"testing"
	"time"
)

const quadText = `v 0 0 0
v 4 0 0
v 4 0 4
v 0 0 4
f 1 2 3 4
`

func TestViewerLifecycleLeavesNoResources(t *testing.T) {
	base := liveResourceCount()

	v, err := New(Config{Width: 320, Height: 240, ShowLabels: true, ShowLoads: true})
	if err != nil {
		t.Fatal(err)
	}
	v.Load(cubeText, testRooms())

	loaded := liveResourceCount()
	if loaded <= base {
		t.Fatalf("loading should acquire resources, live went %d -> %d", base, loaded)
	}

	// Replacing the inputs disposes the old scene first, so the live count
	// must not grow with each reload.
	v.Load(quadText, nil)
	v.Load(cubeText, testRooms())
	if got := liveResourceCount(); got != loaded {
		t.Errorf("reloads leaked: live resources %d, want %d", got, loaded)
	}

	v.Close()
	if got := liveResourceCount(); got != base {
		t.Errorf("close left %d resources live, want %d", got, base)
	}
}

func TestTeardownThenFreshViewer(t *testing.T) {
	base := liveResourceCount()

	first, err := New(Config{Width: 160, Height: 120})
	if err != nil {
		t.Fatal(err)
	}
	first.Load(cubeText, nil)
	first.Close()

	second, err := New(Config{Width: 160, Height: 120})
	if err != nil {
		t.Fatal(err)
	}
	second.Load(quadText, nil)

	// Only the second viewer's allocations may be live now.
	want := base + int64(second.renderer.resources+second.scene.resources)
	if got := liveResourceCount(); got != want {
		t.Errorf("residual resources from the first viewer: live %d, want %d", got, want)
	}

	second.Close()
	if got := liveResourceCount(); got != base {
		t.Errorf("live resources after both closed = %d, want %d", got, base)
	}
}

func TestViewerSurfaceErrorSurfaces(t *testing.T) {
	if _, err := New(Config{Width: 0, Height: 240}); err == nil {
		t.Error("unusable surface size should fail construction")
	}
}

func TestResizeSwapsSurface(t *testing.T) {
	v, err := New(Config{Width: 100, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	defer v.Close()

	before := liveResourceCount()
	if err := v.Resize(200, 150); err != nil {
		t.Fatal(err)
	}
	if got := liveResourceCount(); got != before {
		t.Errorf("resize changed live resources %d -> %d", before, got)
	}
	if w, h := v.renderer.Size(); w != 200 || h != 150 {
		t.Errorf("surface is %dx%d after resize, want 200x150", w, h)
	}

	if err := v.Resize(0, 0); err == nil {
		t.Error("resize to an unusable size should fail")
	}
	if w, h := v.renderer.Size(); w != 200 || h != 150 {
		t.Error("failed resize must keep the previous surface")
	}
}

func TestFrameAfterCloseIsNil(t *testing.T) {
	v, err := New(Config{Width: 64, Height: 48})
	if err != nil {
		t.Fatal(err)
	}
	v.Load(cubeText, nil)

	if img := v.Frame(); img == nil {
		t.Error("open viewer should produce frames")
	}

	v.Close()
	v.Close()
	if img := v.Frame(); img != nil {
		t.Error("closed viewer must not produce frames")
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	v, err := New(Config{Width: 64, Height: 48})
	if err != nil {
		t.Fatal(err)
	}
	defer v.Close()

	var ticks atomic.Int64
	v.StartLoop(time.Millisecond, func() {
		ticks.Add(1)
	})

	deadline := time.Now().Add(time.Second)
	for ticks.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if ticks.Load() < 3 {
		t.Fatal("loop never ticked")
	}

	v.StopLoop()
	time.Sleep(10 * time.Millisecond)
	settled := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	if got := ticks.Load(); got != settled {
		t.Errorf("loop kept ticking after stop: %d -> %d", settled, got)
	}
}

func TestCloseStopsTheLoop(t *testing.T) {
	v, err := New(Config{Width: 64, Height: 48})
	if err != nil {
		t.Fatal(err)
	}

	var ticks atomic.Int64
	v.StartLoop(time.Millisecond, func() { ticks.Add(1) })
	v.Close()

	time.Sleep(10 * time.Millisecond)
	settled := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	if got := ticks.Load(); got != settled {
		t.Errorf("loop survived close: %d -> %d", settled, got)
	}
}

func TestMalformedMeshDegradesToEmptyScene(t *testing.T) {
	v, err := New(Config{Width: 64, Height: 48})
	if err != nil {
		t.Fatal(err)
	}
	defer v.Close()

	v.Load("not a mesh at all", nil)
	if v.Scene() == nil {
		t.Fatal("malformed input should still produce a scene")
	}
	if !v.Scene().Mesh().IsEmpty() {
		t.Error("malformed input should yield an empty mesh")
	}
	if v.Camera().Distance <= 0 {
		t.Error("camera must stay usable on an empty scene")
	}
}
