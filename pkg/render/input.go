package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/portfolio/pkg/carousel"
)

// PointerInput turns GLFW mouse, focus and key callbacks into carousel
// controller calls. It doubles as the controller's PointerCapturer: GLFW
// already keeps reporting the cursor while a button is held, so capture only
// tracks ownership and toggles the grab cursor.
type PointerInput struct {
	controller *carousel.Controller
	itemCount  int
	focused    int
	captured   bool

	setGrabbed   func(bool)
	requestClose func()
}

// NewPointerInput creates an input adapter. setGrabbed and requestClose may be nil.
func NewPointerInput(setGrabbed func(bool), requestClose func()) *PointerInput {
	return &PointerInput{
		setGrabbed:   setGrabbed,
		requestClose: requestClose,
	}
}

// Attach connects the adapter to the controller it drives.
func (p *PointerInput) Attach(controller *carousel.Controller) {
	p.controller = controller
	p.itemCount = controller.Config().ItemCount
}

// SetCapture implements carousel.PointerCapturer.
func (p *PointerInput) SetCapture(pointerID int) error {
	p.captured = true
	if p.setGrabbed != nil {
		p.setGrabbed(true)
	}
	return nil
}

// ReleaseCapture implements carousel.PointerCapturer.
func (p *PointerInput) ReleaseCapture(pointerID int) error {
	if !p.captured || pointerID != MousePointerID {
		return carousel.ErrNotCaptured
	}
	p.captured = false
	if p.setGrabbed != nil {
		p.setGrabbed(false)
	}
	return nil
}

// Captured reports whether a drag holds the mouse.
func (p *PointerInput) Captured() bool {
	return p.captured
}

// MouseButton handles a press or release at window coordinates x, y.
func (p *PointerInput) MouseButton(button glfw.MouseButton, action glfw.Action, x, y float64) {
	if p.controller == nil {
		return
	}
	switch action {
	case Press:
		p.controller.OnDragStart(carousel.PointerEvent{
			PointerID: MousePointerID,
			X:         x,
			Y:         y,
			Kind:      carousel.PointerMouse,
			Button:    buttonOf(button),
		})
	case Release:
		if button == glfw.MouseButtonLeft {
			p.controller.OnDragEnd(MousePointerID)
		}
	}
}

// CursorMoved handles cursor motion.
func (p *PointerInput) CursorMoved(x, y float64) {
	if p.controller == nil {
		return
	}
	p.controller.OnDragMove(carousel.PointerEvent{
		PointerID: MousePointerID,
		X:         x,
		Y:         y,
		Kind:      carousel.PointerMouse,
	})
}

// FocusChanged ends a drag when the window loses focus mid-drag; the
// release event will never arrive.
func (p *PointerInput) FocusChanged(focused bool) {
	if focused || p.controller == nil {
		return
	}
	if p.captured {
		p.captured = false
		if p.setGrabbed != nil {
			p.setGrabbed(false)
		}
	}
	p.controller.OnCaptureLost(MousePointerID)
}

// Key handles keyboard navigation: Tab and the arrow keys step through the
// cards, 1-9 jump to a card and Escape closes the viewer.
func (p *PointerInput) Key(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action != Press && action != Repeat {
		return
	}
	if key == KeyEscape {
		if p.requestClose != nil {
			p.requestClose()
		}
		return
	}
	if p.controller == nil || p.itemCount <= 0 {
		return
	}

	switch {
	case key == KeyTab && mods&glfw.ModShift != 0, key == KeyLeft:
		p.focus(p.focused - 1)
	case key == KeyTab, key == KeyRight:
		p.focus(p.focused + 1)
	case key >= Key1 && key <= Key9:
		index := int(key - Key1)
		if index < p.itemCount {
			p.focus(index)
		}
	}
}

// Focused returns the index of the card focused last from the keyboard.
func (p *PointerInput) Focused() int {
	return p.focused
}

func (p *PointerInput) focus(index int) {
	index %= p.itemCount
	if index < 0 {
		index += p.itemCount
	}
	p.focused = index
	p.controller.FocusItem(index, p.itemCount)
}

func buttonOf(button glfw.MouseButton) carousel.Button {
	switch button {
	case glfw.MouseButtonLeft:
		return carousel.ButtonPrimary
	case glfw.MouseButtonMiddle:
		return carousel.ButtonAuxiliary
	default:
		return carousel.ButtonSecondary
	}
}
