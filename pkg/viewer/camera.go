package viewer

import (
	"math"

	"github.com/planwerk/roomview/pkg/geometry"
)

// Zoom distance limits as multiples of the characteristic dimension.
const (
	MinZoomFactor = 0.5
	MaxZoomFactor = 5.0
)

const (
	// Pitch stays above the ground plane and below the zenith.
	minPitch = 0.02
	maxPitch = math.Pi/2 - 0.05

	// Fraction of each pending interaction delta consumed per frame tick.
	damping = 0.25

	pendingEpsilon = 1e-5
	panScale       = 0.0012
	nearPlane      = 0.01
)

// Camera is an orbit camera around a look-at target. Interaction does not
// move the camera directly: orbit, pan and zoom deltas accumulate as
// pending state and are consumed by Step once per frame tick, which gives
// the damped motion and keeps the update path testable without a surface.
type Camera struct {
	Target   geometry.Vector3
	Distance float64
	Yaw      float64
	Pitch    float64
	FOV      float64

	minDistance float64
	maxDistance float64

	defaultTarget   geometry.Vector3
	defaultDistance float64
	defaultYaw      float64
	defaultPitch    float64

	pendingYaw   float64
	pendingPitch float64
	pendingPanX  float64
	pendingPanY  float64
	pendingZoom  float64
}

// NewCamera frames the given bounds: the target is the bounds center and
// the start pose is an elevated, angled view (intentionally not a clean
// isometric angle) at 1.8x the characteristic dimension.
func NewCamera(bounds geometry.Bounds) *Camera {
	dim := bounds.CharacteristicDimension()
	c := &Camera{
		Target:      bounds.Center(),
		Distance:    dim * 1.8,
		Yaw:         0.7,
		Pitch:       0.55,
		FOV:         math.Pi / 4,
		minDistance: dim * MinZoomFactor,
		maxDistance: dim * MaxZoomFactor,
	}
	c.defaultTarget = c.Target
	c.defaultDistance = c.Distance
	c.defaultYaw = c.Yaw
	c.defaultPitch = c.Pitch
	c.clamp()
	return c
}

// Reset restores the framing pose and discards pending interaction
func (c *Camera) Reset() {
	c.Target = c.defaultTarget
	c.Distance = c.defaultDistance
	c.Yaw = c.defaultYaw
	c.Pitch = c.defaultPitch
	c.dropPending()
	c.clamp()
}

// TopView looks straight down onto the floor plan
func (c *Camera) TopView() {
	c.Target = c.defaultTarget
	c.Yaw = 0
	c.Pitch = maxPitch
	c.dropPending()
}

// FrontView looks at the building from ground level
func (c *Camera) FrontView() {
	c.Target = c.defaultTarget
	c.Yaw = 0
	c.Pitch = minPitch
	c.dropPending()
}

func (c *Camera) dropPending() {
	c.pendingYaw = 0
	c.pendingPitch = 0
	c.pendingPanX = 0
	c.pendingPanY = 0
	c.pendingZoom = 0
}

// Orbit queues a rotation delta in radians (horizontal, vertical)
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.pendingYaw += dYaw
	c.pendingPitch += dPitch
}

// Pan queues a view-plane translation, in surface pixels
func (c *Camera) Pan(dx, dy float64) {
	c.pendingPanX += dx
	c.pendingPanY += dy
}

// Zoom queues a relative distance change; positive moves away from the
// target. Scroll handlers feed wheel deltas scaled to taste.
func (c *Camera) Zoom(delta float64) {
	c.pendingZoom += delta
}

// Step consumes a damped fraction of the pending interaction deltas and
// re-clamps the camera. It is called once per rendered frame.
func (c *Camera) Step() {
	dYaw := consume(&c.pendingYaw)
	dPitch := consume(&c.pendingPitch)
	dPanX := consume(&c.pendingPanX)
	dPanY := consume(&c.pendingPanY)
	dZoom := consume(&c.pendingZoom)

	c.Yaw += dYaw
	c.Pitch += dPitch

	if dPanX != 0 || dPanY != 0 {
		_, right, up := c.basis()
		speed := c.Distance * panScale
		c.Target = c.Target.
			Add(right.Mul(-dPanX * speed)).
			Add(up.Mul(dPanY * speed))
	}

	if dZoom != 0 {
		c.Distance *= 1.0 + dZoom
	}

	c.clamp()
}

// consume takes the damped share of a pending delta, snapping the
// remainder to zero once it is no longer perceptible.
func consume(pending *float64) float64 {
	d := *pending * damping
	*pending -= d
	if math.Abs(*pending) < pendingEpsilon {
		d += *pending
		*pending = 0
	}
	return d
}

func (c *Camera) clamp() {
	if c.Pitch < minPitch {
		c.Pitch = minPitch
	}
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Distance < c.minDistance {
		c.Distance = c.minDistance
	}
	if c.Distance > c.maxDistance {
		c.Distance = c.maxDistance
	}
}

// Position derives the camera position from the orbit state
func (c *Camera) Position() geometry.Vector3 {
	x := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	y := c.Distance * math.Sin(c.Pitch)
	z := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)
	return c.Target.Add(geometry.NewVector3(x, y, z))
}

// basis returns the view-space forward, right and up directions
func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position()).Normalize()
	right = forward.Cross(geometry.NewVector3(0, 1, 0)).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project maps a world point to surface coordinates plus view depth.
// Points at or behind the near plane report depth <= nearPlane and must be
// skipped by the caller.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (sx, sy, depth float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position())
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= nearPlane {
		return 0, 0, z
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	sx = (x/(z*fovScale*aspect))*(width/2) + width/2
	sy = (-y/(z*fovScale))*(height/2) + height/2
	return sx, sy, z
}
