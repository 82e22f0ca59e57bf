package viewer

import (
	"math"
	"testing"

	"github.com/planwerk/roomview/pkg/geometry"
)

func cubeBounds() geometry.Bounds {
	b := geometry.NewBounds()
	b.Extend(geometry.NewVector3(-0.5, -0.5, -0.5))
	b.Extend(geometry.NewVector3(0.5, 0.5, 0.5))
	return b
}

func TestNewCameraFramesBounds(t *testing.T) {
	b := cubeBounds()
	c := NewCamera(b)

	if c.Target != b.Center() {
		t.Errorf("camera should target the bounds center, got %v", c.Target)
	}
	dim := b.CharacteristicDimension()
	if c.Distance < MinZoomFactor*dim || c.Distance > MaxZoomFactor*dim {
		t.Errorf("initial distance %v outside zoom limits", c.Distance)
	}
	if c.Position().Y <= c.Target.Y {
		t.Error("initial view should be elevated above the target")
	}
	// Deliberately angled, not a straight-on view.
	if c.Yaw == 0 {
		t.Error("initial yaw should be off-axis")
	}
}

func TestNewCameraEmptyBounds(t *testing.T) {
	c := NewCamera(geometry.NewBounds())

	if c.Distance <= 0 {
		t.Errorf("empty bounds must still produce a positive distance, got %v", c.Distance)
	}
	if c.Target != (geometry.Vector3{}) {
		t.Errorf("empty bounds should target the origin, got %v", c.Target)
	}
}

func TestZoomNeverEscapesLimits(t *testing.T) {
	c := NewCamera(cubeBounds())
	dim := cubeBounds().CharacteristicDimension()

	for i := 0; i < 100; i++ {
		c.Zoom(-0.4)
		c.Step()
	}
	if c.Distance < MinZoomFactor*dim-1e-9 {
		t.Errorf("zoomed in past the minimum: %v", c.Distance)
	}

	for i := 0; i < 100; i++ {
		c.Zoom(0.9)
		c.Step()
	}
	if c.Distance > MaxZoomFactor*dim+1e-9 {
		t.Errorf("zoomed out past the maximum: %v", c.Distance)
	}
}

func TestOrbitIsDamped(t *testing.T) {
	c := NewCamera(cubeBounds())
	startYaw := c.Yaw

	c.Orbit(1.0, 0)
	c.Step()
	applied := c.Yaw - startYaw
	if applied <= 0 || applied >= 1.0 {
		t.Errorf("one step should apply a partial delta, applied %v", applied)
	}

	for i := 0; i < 200; i++ {
		c.Step()
	}
	if math.Abs(c.Yaw-(startYaw+1.0)) > 1e-6 {
		t.Errorf("damped orbit should converge to the full delta, yaw off by %v",
			c.Yaw-(startYaw+1.0))
	}
}

func TestPitchCannotDipBelowGround(t *testing.T) {
	c := NewCamera(cubeBounds())

	c.Orbit(0, -20)
	for i := 0; i < 300; i++ {
		c.Step()
	}

	if c.Pitch < minPitch {
		t.Errorf("pitch fell below the floor clamp: %v", c.Pitch)
	}
	if c.Position().Y < c.Target.Y {
		t.Error("camera dipped below the ground plane")
	}

	c.Orbit(0, 20)
	for i := 0; i < 300; i++ {
		c.Step()
	}
	if c.Pitch > maxPitch {
		t.Errorf("pitch exceeded the zenith clamp: %v", c.Pitch)
	}
}

func TestResetRestoresFraming(t *testing.T) {
	c := NewCamera(cubeBounds())
	want := *c

	c.Orbit(2, 0.5)
	c.Pan(100, 50)
	c.Zoom(1.5)
	for i := 0; i < 50; i++ {
		c.Step()
	}
	c.Reset()

	if c.Target != want.Target || c.Distance != want.Distance ||
		c.Yaw != want.Yaw || c.Pitch != want.Pitch {
		t.Errorf("reset did not restore the framing pose: got %+v", c)
	}

	// Pending deltas are discarded too, so the pose holds.
	c.Step()
	if c.Yaw != want.Yaw {
		t.Error("reset left pending interaction queued")
	}
}

func TestViewPresets(t *testing.T) {
	c := NewCamera(cubeBounds())

	c.TopView()
	if c.Pitch != maxPitch || c.Yaw != 0 {
		t.Errorf("top view pose wrong: yaw %v pitch %v", c.Yaw, c.Pitch)
	}

	c.FrontView()
	if c.Pitch != minPitch || c.Yaw != 0 {
		t.Errorf("front view pose wrong: yaw %v pitch %v", c.Yaw, c.Pitch)
	}
	if c.Position().Y < c.Target.Y {
		t.Error("front view dipped below the ground plane")
	}
}

func TestPanMovesTarget(t *testing.T) {
	c := NewCamera(cubeBounds())
	before := c.Target

	c.Pan(40, 25)
	for i := 0; i < 100; i++ {
		c.Step()
	}

	if c.Target.Distance(before) == 0 {
		t.Error("pan should move the orbit target")
	}
}

func TestProjectCenterLandsMidSurface(t *testing.T) {
	c := NewCamera(cubeBounds())

	sx, sy, depth := c.Project(c.Target, 800, 600)
	if depth <= 0 {
		t.Fatalf("target should be in front of the camera, depth %v", depth)
	}
	if math.Abs(sx-400) > 1 || math.Abs(sy-300) > 1 {
		t.Errorf("target should project to the surface center, got (%v, %v)", sx, sy)
	}
}

func TestProjectBehindCameraReportsNonPositiveDepth(t *testing.T) {
	c := NewCamera(cubeBounds())

	behind := c.Position().Add(c.Position().Sub(c.Target))
	_, _, depth := c.Project(behind, 800, 600)
	if depth > nearPlane {
		t.Errorf("point behind the camera should report depth <= near plane, got %v", depth)
	}
}
