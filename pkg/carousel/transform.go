package carousel

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// TransformSpec is the two-axis rotation applied to the ring surface, in degrees.
type TransformSpec struct {
	RotateX float64
	RotateY float64
}

// ComputeTransform derives the surface transform from a rotation state.
// RotateX is re-clamped to the configured tilt range.
func ComputeTransform(s State, cfg Config) TransformSpec {
	return TransformSpec{
		RotateX: clamp(s.RotationX, cfg.MinX, cfg.MaxX),
		RotateY: s.RotationY,
	}
}

// CSS renders the transform as a CSS transform value.
func (t TransformSpec) CSS() string {
	return "rotateX(" + formatDeg(t.RotateX) + "deg) rotateY(" + formatDeg(t.RotateY) + "deg)"
}

// Matrix returns the rotation as a homogeneous matrix in a Y-up frame, X
// applied after Y the same way CSS composes rotateX(...) rotateY(...). CSS
// points Y down, so the tilt is mirrored: a positive RotateX lifts the front
// of the ring in both.
func (t TransformSpec) Matrix() mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(mgl64.DegToRad(-t.RotateX))
	ry := mgl64.HomogRotate3DY(mgl64.DegToRad(t.RotateY))
	return rx.Mul4(ry)
}

func formatDeg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
