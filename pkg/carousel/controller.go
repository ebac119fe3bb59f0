// Package carousel implements the inertial rotation controller behind the
// portfolio's 3D card ring.
//
// A Controller owns the ring's rotation state. Pointer drags rotate the ring
// directly and leave behind a velocity that keeps it turning, decaying by
// friction on every frame once the pointer is released. The controller never
// talks to a device or display itself: pointer events are delivered through its
// handler methods, frames arrive from a FrameClock, and the resulting transform
// is pushed to a Surface.
package carousel

import "math"

// State is the rotation state of the ring.
type State struct {
	RotationX float64 // degrees, always within [MinX, MaxX]
	RotationY float64 // degrees, unbounded
	VelocityX float64 // degrees per frame
	VelocityY float64 // degrees per frame

	// Dragging is set between a drag-start and the matching drag-end of PointerID.
	Dragging  bool
	PointerID int
	LastX     float64
	LastY     float64

	// AutoSpin marks the idle auto-rotation styling; it has no effect on the physics.
	AutoSpin bool

	// Captured reports whether the active pointer was captured successfully.
	Captured bool
}

// Controller converts pointer drags and frame ticks into ring rotation.
// It is not safe for concurrent use; all methods must be called from the
// goroutine that owns the event loop.
type Controller struct {
	cfg      Config
	state    State
	capturer PointerCapturer
	surface  Surface
}

// NewController creates a controller in the initial resting orientation.
// A nil capturer or surface is replaced by a no-op.
func NewController(cfg Config, capturer PointerCapturer, surface Surface) *Controller {
	if capturer == nil {
		capturer = nopCapturer{}
	}
	if surface == nil {
		surface = nopSurface{}
	}

	c := &Controller{
		cfg:      cfg,
		capturer: capturer,
		surface:  surface,
		state: State{
			RotationX: clamp(cfg.InitialRotationX, cfg.MinX, cfg.MaxX),
			RotationY: DefaultRotationY,
			AutoSpin:  !cfg.ReducedMotion,
		},
	}

	c.surface.SetPresentation(c.presentation())
	return c
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a copy of the current rotation state.
func (c *Controller) State() State {
	return c.state
}

// Transform returns the transform for the current state.
func (c *Controller) Transform() TransformSpec {
	return ComputeTransform(c.state, c.cfg)
}

// Start runs one frame immediately and keeps re-registering with clock so
// OnAnimationFrame runs on every display refresh.
func (c *Controller) Start(clock FrameClock) {
	var tick func()
	tick = func() {
		c.OnAnimationFrame()
		clock.ScheduleFrame(tick)
	}
	tick()
}

// StartsDrag reports whether a pointer-down may begin a drag: any touch or
// pen contact, or the primary mouse button.
func StartsDrag(ev PointerEvent) bool {
	return ev.Kind != PointerMouse || ev.Button == ButtonPrimary
}

// OnDragStart begins a drag. Mouse events only start a drag with the primary
// button. A second pointer going down during an active drag is ignored.
func (c *Controller) OnDragStart(ev PointerEvent) {
	if !StartsDrag(ev) {
		return
	}
	if c.state.Dragging {
		return
	}

	c.state.Dragging = true
	c.state.PointerID = ev.PointerID
	c.state.LastX = ev.X
	c.state.LastY = ev.Y
	c.state.AutoSpin = false

	// Cut any inertia left over from the previous drag
	c.state.VelocityX = 0
	c.state.VelocityY = 0

	c.surface.SetPresentation(c.presentation())

	// The drag goes on without capture; it just ends when the pointer leaves.
	c.state.Captured = c.capturer.SetCapture(ev.PointerID) == nil
}

// OnDragMove rotates the ring by the pointer delta and stores the delta as
// the velocity to coast with once the drag ends.
func (c *Controller) OnDragMove(ev PointerEvent) {
	if !c.state.Dragging || ev.PointerID != c.state.PointerID {
		return
	}

	dx := ev.X - c.state.LastX
	dy := ev.Y - c.state.LastY
	vertical := c.cfg.VerticalSensitivityFactor

	c.state.RotationY += dx * c.cfg.Sensitivity
	c.state.RotationX -= dy * c.cfg.Sensitivity * vertical
	c.state.RotationX = clamp(c.state.RotationX, c.cfg.MinX, c.cfg.MaxX)

	c.state.VelocityY = dx * c.cfg.VelocityBoost
	c.state.VelocityX = -dy * c.cfg.VelocityBoost * vertical

	c.state.LastX = ev.X
	c.state.LastY = ev.Y

	c.applyTransform()
}

// OnDragEnd finishes the drag of pointerID on pointer-up or pointer-cancel
// and releases its capture. Release failures are ignored.
func (c *Controller) OnDragEnd(pointerID int) {
	if !c.endDrag(pointerID) {
		return
	}
	if c.state.Captured {
		c.state.Captured = false
		_ = c.capturer.ReleaseCapture(pointerID)
	}
}

// OnCaptureLost finishes the drag of pointerID after the environment took
// its capture away. There is nothing left to release.
func (c *Controller) OnCaptureLost(pointerID int) {
	if !c.endDrag(pointerID) {
		return
	}
	c.state.Captured = false
}

func (c *Controller) endDrag(pointerID int) bool {
	if !c.state.Dragging || pointerID != c.state.PointerID {
		return false
	}
	c.state.Dragging = false
	if c.cfg.ResumeAutoSpin {
		c.state.AutoSpin = true
	}
	c.surface.SetPresentation(c.presentation())
	return true
}

// OnAnimationFrame advances the free-running rotation by one frame: velocity
// is added to rotation, then decayed by friction and snapped to zero once it
// falls below the epsilon. It does nothing to the physics while dragging.
func (c *Controller) OnAnimationFrame() {
	if c.state.Dragging {
		return
	}

	c.state.RotationY += c.state.VelocityY
	c.state.RotationX += c.state.VelocityX

	c.state.VelocityY *= c.cfg.Friction
	c.state.VelocityX *= c.cfg.Friction

	// Avoid endless micro-motion
	if math.Abs(c.state.VelocityY) < c.cfg.VelocityEpsilon {
		c.state.VelocityY = 0
	}
	if math.Abs(c.state.VelocityX) < c.cfg.VelocityEpsilon {
		c.state.VelocityX = 0
	}

	c.state.RotationX = clamp(c.state.RotationX, c.cfg.MinX, c.cfg.MaxX)
	c.applyTransform()
}

// FocusItem turns the ring so that item index faces the viewer and stops any
// inertia. A non-positive itemCount falls back to the configured count.
// The index wraps modulo the count, so the resulting rotation is always in
// (-360, 0]: FocusItem(7, 6) sets -60, not -420.
func (c *Controller) FocusItem(index, itemCount int) {
	if itemCount <= 0 {
		itemCount = c.cfg.ItemCount
	}
	if itemCount <= 0 {
		return
	}

	c.state.RotationY = -ItemAngle(index, itemCount)
	c.state.VelocityX = 0
	c.state.VelocityY = 0
	c.applyTransform()
}

func (c *Controller) applyTransform() {
	spec := ComputeTransform(c.state, c.cfg)
	c.state.RotationX = spec.RotateX
	c.surface.Apply(spec)
}

func (c *Controller) presentation() Presentation {
	return Presentation{
		AutoSpin: c.state.AutoSpin,
		Dragging: c.state.Dragging,
	}
}
