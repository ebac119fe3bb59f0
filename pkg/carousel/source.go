package carousel

import "errors"

// ErrNotCaptured is returned by a PointerCapturer asked to release a pointer
// it does not hold.
var ErrNotCaptured = errors.New("pointer is not captured")

// PointerKind identifies the device behind a pointer event.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
	PointerPen
)

// String returns the DOM name of the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerMouse:
		return "mouse"
	case PointerTouch:
		return "touch"
	case PointerPen:
		return "pen"
	default:
		return "unknown"
	}
}

// Button identifies which button produced a pointer-down.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// PointerEvent is a down or move event from the pointer source.
type PointerEvent struct {
	PointerID int
	X, Y      float64
	Kind      PointerKind
	Button    Button
}

// FrameClock invokes a callback once on the next display refresh.
// Callers re-register to keep receiving ticks.
type FrameClock interface {
	ScheduleFrame(fn func())
}

// PointerCapturer routes subsequent events of a pointer to the ring until released.
type PointerCapturer interface {
	SetCapture(pointerID int) error
	ReleaseCapture(pointerID int) error
}

// Presentation is the cosmetic state of the ring surface.
type Presentation struct {
	AutoSpin bool
	Dragging bool
}

// Surface is where the ring's transform and presentation land.
type Surface interface {
	Apply(spec TransformSpec)
	SetPresentation(p Presentation)
}

// FrameQueue is a FrameClock driven by its owner calling Advance once per frame.
type FrameQueue struct {
	pending []func()
}

// ScheduleFrame queues fn for the next Advance.
func (q *FrameQueue) ScheduleFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Advance runs the callbacks queued before the call. Callbacks scheduled
// while advancing wait for the next frame.
func (q *FrameQueue) Advance() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

type nopCapturer struct{}

func (nopCapturer) SetCapture(int) error     { return nil }
func (nopCapturer) ReleaseCapture(int) error { return nil }

type nopSurface struct{}

func (nopSurface) Apply(TransformSpec)          {}
func (nopSurface) SetPresentation(Presentation) {}
