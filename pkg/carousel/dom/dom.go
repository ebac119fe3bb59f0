//go:build js && wasm

// Package dom attaches a carousel controller to a ring element in the browser.
package dom

import (
	"fmt"
	"syscall/js"

	"github.com/leterax/portfolio/pkg/carousel"
)

const (
	classAutoSpin = "is-autospin"
	classDragging = "is-dragging"
)

// Ring is a carousel controller bound to a DOM element.
type Ring struct {
	el    js.Value
	ctrl  *carousel.Controller
	funcs []js.Func
}

// Attach wires pointer and focus events of el to a new controller and starts
// its frame loop on requestAnimationFrame.
func Attach(el js.Value, cfg carousel.Config) *Ring {
	if PrefersReducedMotion() {
		cfg.ReducedMotion = true
		el.Get("style").Set("animation", "none")
	}

	r := &Ring{el: el}
	r.ctrl = carousel.NewController(cfg, elementCapturer{el}, elementSurface{el})

	r.listen(el, "pointerdown", func(ev js.Value) {
		pev := pointerEvent(ev)
		if !carousel.StartsDrag(pev) {
			return
		}
		// Even a second touch that cannot start a drag must not scroll or zoom
		ev.Call("preventDefault")
		r.ctrl.OnDragStart(pev)
	})
	r.listen(el, "pointermove", func(ev js.Value) {
		r.ctrl.OnDragMove(pointerEvent(ev))
	})
	r.listen(el, "pointerup", func(ev js.Value) {
		r.ctrl.OnDragEnd(ev.Get("pointerId").Int())
	})
	r.listen(el, "pointercancel", func(ev js.Value) {
		r.ctrl.OnDragEnd(ev.Get("pointerId").Int())
	})
	r.listen(el, "lostpointercapture", func(ev js.Value) {
		r.ctrl.OnCaptureLost(ev.Get("pointerId").Int())
	})

	// Keyboard focus on a card turns it to the front
	cards := el.Call("querySelectorAll", ".card")
	count := cards.Get("length").Int()
	for i := range count {
		index := i
		r.listen(cards.Index(i), "focus", func(js.Value) {
			r.ctrl.FocusItem(index, count)
		})
	}

	r.ctrl.Start(AnimationFrames{})
	return r
}

// Controller returns the controller driving the ring.
func (r *Ring) Controller() *carousel.Controller {
	return r.ctrl
}

func (r *Ring) listen(target js.Value, event string, handle func(js.Value)) {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		handle(args[0])
		return nil
	})
	r.funcs = append(r.funcs, fn)
	target.Call("addEventListener", event, fn)
}

// PrefersReducedMotion reports the user's prefers-reduced-motion setting.
func PrefersReducedMotion() bool {
	mq := js.Global().Call("matchMedia", "(prefers-reduced-motion: reduce)")
	return mq.Truthy() && mq.Get("matches").Bool()
}

func pointerEvent(ev js.Value) carousel.PointerEvent {
	kind := carousel.PointerMouse
	switch ev.Get("pointerType").String() {
	case "touch":
		kind = carousel.PointerTouch
	case "pen":
		kind = carousel.PointerPen
	}
	return carousel.PointerEvent{
		PointerID: ev.Get("pointerId").Int(),
		X:         ev.Get("clientX").Float(),
		Y:         ev.Get("clientY").Float(),
		Kind:      kind,
		Button:    carousel.Button(ev.Get("button").Int()),
	}
}

// AnimationFrames is a FrameClock backed by requestAnimationFrame.
type AnimationFrames struct{}

// ScheduleFrame runs fn on the next animation frame.
func (AnimationFrames) ScheduleFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	js.Global().Call("requestAnimationFrame", cb)
}

type elementSurface struct {
	el js.Value
}

func (s elementSurface) Apply(spec carousel.TransformSpec) {
	s.el.Get("style").Set("transform", spec.CSS())
}

func (s elementSurface) SetPresentation(p carousel.Presentation) {
	classes := s.el.Get("classList")
	classes.Call("toggle", classAutoSpin, p.AutoSpin)
	classes.Call("toggle", classDragging, p.Dragging)
}

type elementCapturer struct {
	el js.Value
}

func (c elementCapturer) SetCapture(pointerID int) error {
	return call(c.el, "setPointerCapture", pointerID)
}

func (c elementCapturer) ReleaseCapture(pointerID int) error {
	if !c.el.Call("hasPointerCapture", pointerID).Bool() {
		return carousel.ErrNotCaptured
	}
	return call(c.el, "releasePointerCapture", pointerID)
}

// call invokes a DOM method, turning a thrown exception into an error.
func call(v js.Value, method string, args ...any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", method, r)
		}
	}()
	v.Call(method, args...)
	return nil
}
