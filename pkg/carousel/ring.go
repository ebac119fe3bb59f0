package carousel

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ItemAngle returns the ring angle in degrees of item index on a ring of count items.
func ItemAngle(index, count int) float64 {
	if count <= 0 {
		return 0
	}
	index %= count
	if index < 0 {
		index += count
	}
	return float64(index) * 360 / float64(count)
}

// FrontIndex returns the item closest to facing the viewer at rotationY.
func FrontIndex(rotationY float64, count int) int {
	if count <= 0 {
		return -1
	}
	step := 360 / float64(count)
	// Item i faces front when rotationY == -i*step (mod 360)
	idx := int(math.Round(-rotationY/step)) % count
	if idx < 0 {
		idx += count
	}
	return idx
}

// ItemTransforms returns the model transform of each card relative to the ring
// center: rotated to its slot and pushed out by radius.
func ItemTransforms(count int, radius float64) []mgl64.Mat4 {
	transforms := make([]mgl64.Mat4, count)
	for i := range count {
		rot := mgl64.HomogRotate3DY(mgl64.DegToRad(ItemAngle(i, count)))
		transforms[i] = rot.Mul4(mgl64.Translate3D(0, 0, radius))
	}
	return transforms
}

// Facing returns how directly a card at angleDeg faces the viewer once the
// ring is rotated by rotationY: 1 at the front, -1 at the back.
func Facing(angleDeg, rotationY float64) float64 {
	return math.Cos(mgl64.DegToRad(angleDeg + rotationY))
}
