package termring

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leterax/portfolio/pkg/carousel"
)

// MousePointerID is the pointer id given to the terminal mouse.
const MousePointerID = 1

// Options tune how the ring is drawn and how terminal cells map to pointer motion.
type Options struct {
	// Labels are the card titles; missing labels fall back to "Card N".
	Labels []string
	// FrameInterval is the animation tick period.
	FrameInterval time.Duration
	// CellWidth and CellHeight convert cell motion into pixel-sized deltas so
	// drag sensitivity matches the browser ring.
	CellWidth  float64
	CellHeight float64
	// ViewPitch is how far the viewer looks down on the ring, in degrees.
	ViewPitch float64
}

// DefaultOptions returns the options used by the ringterm binary.
func DefaultOptions() Options {
	return Options{
		FrameInterval: 16 * time.Millisecond,
		CellWidth:     8,
		CellHeight:    16,
		ViewPitch:     20,
	}
}

var palette = []tcell.Color{
	tcell.ColorCornflowerBlue,
	tcell.ColorIndianRed,
	tcell.ColorMediumSeaGreen,
	tcell.ColorGoldenrod,
	tcell.ColorMediumPurple,
	tcell.ColorDarkTurquoise,
}

// Viewer owns a tcell screen and a carousel controller. It is the
// controller's Surface and PointerCapturer; all methods run on the goroutine
// calling Run.
type Viewer struct {
	screen     tcell.Screen
	cfg        carousel.Config
	opts       Options
	controller *carousel.Controller
	frames     carousel.FrameQueue

	transform    carousel.TransformSpec
	presentation carousel.Presentation

	buttons  tcell.ButtonMask
	captured bool
	focused  int
}

// NewViewer creates a viewer drawing to an initialized screen.
func NewViewer(screen tcell.Screen, cfg carousel.Config, opts Options) *Viewer {
	defaults := DefaultOptions()
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaults.FrameInterval
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = defaults.CellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = defaults.CellHeight
	}

	v := &Viewer{screen: screen, cfg: cfg, opts: opts}
	v.controller = carousel.NewController(cfg, v, v)
	v.controller.Start(&v.frames)
	return v
}

// Controller returns the controller driven by the viewer.
func (v *Viewer) Controller() *carousel.Controller {
	return v.controller
}

// Apply implements carousel.Surface.
func (v *Viewer) Apply(spec carousel.TransformSpec) {
	v.transform = spec
}

// SetPresentation implements carousel.Surface.
func (v *Viewer) SetPresentation(p carousel.Presentation) {
	v.presentation = p
}

// SetCapture implements carousel.PointerCapturer. Terminals keep reporting
// motion while a button is held, so capture only records ownership.
func (v *Viewer) SetCapture(int) error {
	v.captured = true
	return nil
}

// ReleaseCapture implements carousel.PointerCapturer.
func (v *Viewer) ReleaseCapture(pointerID int) error {
	if !v.captured || pointerID != MousePointerID {
		return carousel.ErrNotCaptured
	}
	v.captured = false
	return nil
}

// Run draws and animates the ring until ctx ends or the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(v.opts.FrameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.Tick()
		}
	}
}

// Tick runs one animation frame and redraws.
func (v *Viewer) Tick() {
	v.frames.Advance()
	v.Draw()
}

// HandleEvent routes one terminal event. It returns false when the user asked to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			v.loseCapture()
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.Draw()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab, tcell.KeyRight:
		v.focus(v.focused + 1)
	case tcell.KeyBacktab, tcell.KeyLeft:
		v.focus(v.focused - 1)
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == 'l':
			v.focus(v.focused + 1)
		case r == 'h':
			v.focus(v.focused - 1)
		case r >= '1' && r <= '9':
			if index := int(r - '1'); index < v.cfg.ItemCount {
				v.focus(index)
			}
		}
	}
	return true
}

// handleMouse turns button transitions into drag start, move and end.
func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x := float64(col) * v.opts.CellWidth
	y := float64(row) * v.opts.CellHeight

	buttons := ev.Buttons()
	pressed := buttons & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	newlyPressed := pressed &^ v.buttons
	released := v.buttons &^ pressed
	v.buttons = pressed

	if buttons&tcell.WheelUp != 0 {
		v.focus(v.focused - 1)
	}
	if buttons&tcell.WheelDown != 0 {
		v.focus(v.focused + 1)
	}

	ptr := carousel.PointerEvent{
		PointerID: MousePointerID,
		X:         x,
		Y:         y,
		Kind:      carousel.PointerMouse,
	}
	switch {
	case newlyPressed != 0:
		ptr.Button = buttonOf(newlyPressed)
		v.controller.OnDragStart(ptr)
	case pressed&tcell.ButtonPrimary != 0:
		v.controller.OnDragMove(ptr)
	}
	if released&tcell.ButtonPrimary != 0 {
		v.controller.OnDragEnd(MousePointerID)
	}
}

// loseCapture ends a drag whose release will never be reported.
func (v *Viewer) loseCapture() {
	v.buttons = tcell.ButtonNone
	v.captured = false
	v.controller.OnCaptureLost(MousePointerID)
}

func (v *Viewer) focus(index int) {
	count := v.cfg.ItemCount
	if count <= 0 {
		return
	}
	index %= count
	if index < 0 {
		index += count
	}
	v.focused = index
	v.controller.FocusItem(index, count)
}

func buttonOf(mask tcell.ButtonMask) carousel.Button {
	switch {
	case mask&tcell.ButtonPrimary != 0:
		return carousel.ButtonPrimary
	case mask&tcell.ButtonMiddle != 0:
		return carousel.ButtonAuxiliary
	default:
		return carousel.ButtonSecondary
	}
}

// Label returns the title drawn on card index.
func (v *Viewer) Label(index int) string {
	if index < len(v.opts.Labels) && v.opts.Labels[index] != "" {
		return v.opts.Labels[index]
	}
	return fmt.Sprintf("Card %d", index+1)
}

// Draw renders the ring and a status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	count := v.cfg.ItemCount
	radius := v.cfg.Ring.Radius
	if radius <= 0 {
		radius = carousel.DefaultRadius
	}

	cx, cy := width/2, (height-1)/2
	scaleX := float64(width) * 0.38 / radius
	scaleY := float64(height) * 0.3 / radius
	front := carousel.FrontIndex(v.transform.RotateY, count)

	for _, p := range Project(v.transform, count, radius, v.opts.ViewPitch) {
		col := cx + int(math.Round(p.X*scaleX))
		row := cy - int(math.Round(p.Y*scaleY))
		facing := carousel.Facing(carousel.ItemAngle(p.Index, count), v.transform.RotateY)
		v.drawCard(col, row, p, p.Index == front, facing < 0)
	}

	v.drawStatus(width, height)
	v.screen.Show()
}

func (v *Viewer) drawCard(col, row int, p CardPosition, isFront, turnedAway bool) {
	label := v.Label(p.Index)
	inner := len([]rune(label)) + 2
	left := col - (inner+2)/2

	style := tcell.StyleDefault.Foreground(palette[p.Index%len(palette)])
	switch {
	case isFront:
		style = style.Reverse(true).Bold(true)
	case turnedAway:
		style = style.Dim(true)
	}

	v.putRow(left, row-1, '┌', '─', '┐', inner, style)
	v.putRow(left, row+1, '└', '─', '┘', inner, style)
	v.screen.SetContent(left, row, '│', nil, style)
	v.screen.SetContent(left+inner+1, row, '│', nil, style)
	v.putString(left+1, row, " "+label+" ", style)
}

func (v *Viewer) putRow(x, y int, leftCorner, fill, rightCorner rune, inner int, style tcell.Style) {
	v.screen.SetContent(x, y, leftCorner, nil, style)
	for i := 1; i <= inner; i++ {
		v.screen.SetContent(x+i, y, fill, nil, style)
	}
	v.screen.SetContent(x+inner+1, y, rightCorner, nil, style)
}

func (v *Viewer) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *Viewer) drawStatus(width, height int) {
	state := v.controller.State()
	mode := "idle"
	switch {
	case v.presentation.Dragging:
		mode = "dragging"
	case v.presentation.AutoSpin:
		mode = "auto-spin"
	}
	status := fmt.Sprintf(" x=%6.1f° y=%7.1f° vx=%5.2f vy=%5.2f %s  [drag] rotate  [tab/1-9] focus  [q] quit",
		v.transform.RotateX, v.transform.RotateY, state.VelocityX, state.VelocityY, mode)
	if r := []rune(status); len(r) > width {
		status = string(r[:width])
	}
	v.putString(0, height-1, status, tcell.StyleDefault.Dim(true))
}
