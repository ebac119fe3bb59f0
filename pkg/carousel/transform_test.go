package carousel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestComputeTransformClamps(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		state State
		want  TransformSpec
	}{
		{"in range", State{RotationX: 12, RotationY: 400}, TransformSpec{RotateX: 12, RotateY: 400}},
		{"above max", State{RotationX: 80, RotationY: -30}, TransformSpec{RotateX: 25, RotateY: -30}},
		{"below min", State{RotationX: -45}, TransformSpec{RotateX: -10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTransform(tt.state, cfg); got != tt.want {
				t.Fatalf("ComputeTransform() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTransformCSS(t *testing.T) {
	tests := []struct {
		spec TransformSpec
		want string
	}{
		{TransformSpec{RotateX: 10, RotateY: 0}, "rotateX(10deg) rotateY(0deg)"},
		{TransformSpec{RotateX: -2.5, RotateY: -120}, "rotateX(-2.5deg) rotateY(-120deg)"},
		{TransformSpec{RotateX: 25, RotateY: 17.5}, "rotateX(25deg) rotateY(17.5deg)"},
	}
	for _, tt := range tests {
		if got := tt.spec.CSS(); got != tt.want {
			t.Fatalf("CSS() = %q, want %q", got, tt.want)
		}
	}
}

func TestTransformMatrix(t *testing.T) {
	if got := (TransformSpec{}).Matrix(); !got.ApproxEqual(mgl64.Ident4()) {
		t.Fatalf("Matrix() of zero rotation = %v, want identity", got)
	}

	// A quarter turn around Y brings the front of the ring to the right
	m := TransformSpec{RotateY: 90}.Matrix()
	got := m.Mul4x1(mgl64.Vec4{0, 0, 1, 1}).Vec3()
	if !got.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Fatalf("front after rotateY(90) = %v, want (1, 0, 0)", got)
	}

	// A positive tilt lifts the front of the ring
	m = TransformSpec{RotateX: 90}.Matrix()
	got = m.Mul4x1(mgl64.Vec4{0, 0, 1, 1}).Vec3()
	if !got.ApproxEqualThreshold(mgl64.Vec3{0, 1, 0}, 1e-9) {
		t.Fatalf("front after rotateX(90) = %v, want (0, 1, 0)", got)
	}

	// Tilt is applied after the spin
	m = TransformSpec{RotateX: 90, RotateY: 90}.Matrix()
	got = m.Mul4x1(mgl64.Vec4{0, 0, 1, 1}).Vec3()
	if !got.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Fatalf("front after rotateX(90) rotateY(90) = %v, want (1, 0, 0)", got)
	}
}
