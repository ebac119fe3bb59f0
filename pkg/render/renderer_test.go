package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leterax/portfolio/pkg/carousel"
)

func TestToMat32(t *testing.T) {
	m := mgl64.Translate3D(1.5, -2, 3).Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(30)))
	got := toMat32(m)
	for i := range m {
		if got[i] != float32(m[i]) {
			t.Fatalf("element %d = %v, want %v", i, got[i], float32(m[i]))
		}
	}
}

func TestRingSlotsPlaceCardsOnRadius(t *testing.T) {
	slots := ringSlots(6, 2.4)
	if len(slots) != 6 {
		t.Fatalf("slots = %d, want 6", len(slots))
	}

	// Card 0 sits straight in front of the center
	pos := slots[0].Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !pos.ApproxEqualThreshold(mgl32.Vec3{0, 0, 2.4}, 1e-5) {
		t.Fatalf("card 0 at %v, want (0, 0, 2.4)", pos)
	}
	for i, slot := range slots {
		pos := slot.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		if d := pos.Len(); d < 2.4-1e-4 || d > 2.4+1e-4 {
			t.Fatalf("card %d at distance %v, want 2.4", i, d)
		}
	}
}

func TestPresentationGlow(t *testing.T) {
	if got := presentationGlow(carousel.Presentation{}, 1); got != 0 {
		t.Fatalf("idle glow = %v, want 0", got)
	}
	if got := presentationGlow(carousel.Presentation{Dragging: true, AutoSpin: true}, 1); got != DraggingGlow {
		t.Fatalf("dragging glow = %v, want %v", got, DraggingGlow)
	}
	for _, ts := range []float32{0, 0.5, 1.2, 2.9} {
		got := presentationGlow(carousel.Presentation{AutoSpin: true}, ts)
		if got < 0 || got > AutoSpinGlow {
			t.Fatalf("auto-spin glow at %v = %v, want within [0, %v]", ts, got, AutoSpinGlow)
		}
	}
}
