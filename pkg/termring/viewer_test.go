package termring

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leterax/portfolio/pkg/carousel"
	"gonum.org/v1/gonum/floats"
)

func newTestViewer(t *testing.T, labels ...string) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 30)

	opts := DefaultOptions()
	opts.Labels = labels
	return NewViewer(screen, carousel.DefaultConfig(), opts), screen
}

func screenText(screen tcell.SimulationScreen) (string, []tcell.SimCell, int) {
	cells, width, height := screen.GetContents()
	var b strings.Builder
	for y := range height {
		for x := range width {
			cell := cells[y*width+x]
			if len(cell.Runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(cell.Runes[0])
		}
		b.WriteRune('\n')
	}
	return b.String(), cells, width
}

// labelAttrs returns the attributes of the first cell of label on screen.
func labelAttrs(t *testing.T, screen tcell.SimulationScreen, label string) tcell.AttrMask {
	t.Helper()
	text, cells, width := screenText(screen)
	for y, line := range strings.Split(text, "\n") {
		x := strings.Index(line, label)
		if x < 0 {
			continue
		}
		col := len([]rune(line[:x]))
		_, _, attrs := cells[y*width+col].Style.Decompose()
		return attrs
	}
	t.Fatalf("label %q not found:\n%s", label, text)
	return 0
}

func TestViewerDrawsFrontCardHighlighted(t *testing.T) {
	v, screen := newTestViewer(t, "Portfolio", "Blog")
	v.Draw()

	text, _, _ := screenText(screen)
	if !strings.Contains(text, "Portfolio") || !strings.Contains(text, "Blog") || !strings.Contains(text, "Card 6") {
		t.Fatalf("screen missing card labels:\n%s", text)
	}
	if attrs := labelAttrs(t, screen, "Portfolio"); attrs&tcell.AttrReverse == 0 {
		t.Fatal("front card label is not highlighted")
	}
}

func TestViewerDimsCardsTurnedAway(t *testing.T) {
	v, screen := newTestViewer(t)
	v.Draw()

	// Cards 3 to 5 of six sit on the far half of the ring
	for _, label := range []string{"Card 3", "Card 4", "Card 5"} {
		if attrs := labelAttrs(t, screen, label); attrs&tcell.AttrDim == 0 {
			t.Errorf("%s is not dimmed", label)
		}
	}
	for _, label := range []string{"Card 2", "Card 6"} {
		if attrs := labelAttrs(t, screen, label); attrs&(tcell.AttrDim|tcell.AttrReverse) != 0 {
			t.Errorf("%s attrs = %v, want plain", label, attrs)
		}
	}
}

func TestViewerMouseDragWithInertia(t *testing.T) {
	v, _ := newTestViewer(t)
	ctl := v.Controller()

	v.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonPrimary, tcell.ModNone))
	if !ctl.State().Dragging {
		t.Fatal("expected primary button to start a drag")
	}

	// Ten cells at eight pixels per cell
	v.HandleEvent(tcell.NewEventMouse(20, 5, tcell.ButtonPrimary, tcell.ModNone))
	if got := ctl.State().RotationY; !floats.EqualWithinAbs(got, 28, 1e-9) {
		t.Fatalf("RotationY = %v, want 28", got)
	}

	v.HandleEvent(tcell.NewEventMouse(20, 5, tcell.ButtonNone, tcell.ModNone))
	if ctl.State().Dragging {
		t.Fatal("expected release to end the drag")
	}
	if v.captured {
		t.Fatal("expected capture to be released")
	}

	v.Tick()
	if got := ctl.State().RotationY; !floats.EqualWithinAbs(got, 28+14.4, 1e-9) {
		t.Fatalf("RotationY after one frame = %v, want 42.4", got)
	}
}

func TestViewerSecondaryButtonDoesNotDrag(t *testing.T) {
	v, _ := newTestViewer(t)

	v.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonSecondary, tcell.ModNone))
	v.HandleEvent(tcell.NewEventMouse(30, 5, tcell.ButtonSecondary, tcell.ModNone))
	if v.Controller().State().Dragging {
		t.Fatal("secondary button must not start a drag")
	}
	if got := v.Controller().State().RotationY; got != 0 {
		t.Fatalf("RotationY = %v, want 0", got)
	}
}

func TestViewerFocusLossEndsDrag(t *testing.T) {
	v, _ := newTestViewer(t)

	v.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonPrimary, tcell.ModNone))
	v.HandleEvent(tcell.NewEventFocus(false))

	if v.Controller().State().Dragging {
		t.Fatal("expected focus loss to end the drag")
	}
	if err := v.ReleaseCapture(MousePointerID); !errors.Is(err, carousel.ErrNotCaptured) {
		t.Fatalf("ReleaseCapture() = %v, want ErrNotCaptured", err)
	}
}

func TestViewerKeyboardFocus(t *testing.T) {
	v, _ := newTestViewer(t)
	ctl := v.Controller()

	tests := []struct {
		ev   *tcell.EventKey
		want float64
	}{
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), -60},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), -120},
		{tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), -60},
		{tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), -240},
		{tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), -300},
		{tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), 0},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), -300},
	}
	for i, tt := range tests {
		if !v.HandleEvent(tt.ev) {
			t.Fatalf("step %d: unexpected quit", i)
		}
		if got := ctl.State().RotationY; got != tt.want {
			t.Fatalf("step %d: RotationY = %v, want %v", i, got, tt.want)
		}
	}
}

func TestViewerQuitKeys(t *testing.T) {
	v, _ := newTestViewer(t)
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		if v.HandleEvent(ev) {
			t.Fatalf("%v did not quit", ev.Name())
		}
	}
}

func TestViewerRunStopsOnEscape(t *testing.T) {
	v, screen := newTestViewer(t)

	done := make(chan error, 1)
	go func() {
		done <- v.Run(context.Background())
	}()
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("viewer did not stop")
	}
}

func TestViewerRunStopsOnCancel(t *testing.T) {
	v, _ := newTestViewer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := v.Run(ctx); err != nil {
		t.Fatalf("Run() = %v", err)
	}
}
