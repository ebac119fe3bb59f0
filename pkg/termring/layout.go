// Package termring renders the card ring in a terminal and drives the
// carousel controller from terminal mouse and keyboard events.
package termring

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/leterax/portfolio/pkg/carousel"
)

// CardPosition is where a card lands once the ring transform is applied.
type CardPosition struct {
	Index int
	// X and Y are in ring units, Y up, as seen by the viewer
	X, Y float64
	// Depth is positive toward the viewer
	Depth float64
}

// Project places every card of the ring for an orthographic viewer looking
// down on the ring by viewPitch degrees. Cards are returned back to front.
func Project(spec carousel.TransformSpec, count int, radius, viewPitch float64) []CardPosition {
	if count <= 0 {
		return nil
	}

	ring := spec.Matrix()
	pitch := mgl64.DegToRad(viewPitch)
	sin, cos := math.Sin(pitch), math.Cos(pitch)

	positions := make([]CardPosition, 0, count)
	for i, slot := range carousel.ItemTransforms(count, radius) {
		p := ring.Mul4(slot).Mul4x1(mgl64.Vec4{0, 0, 0, 1})
		positions = append(positions, CardPosition{
			Index: i,
			X:     p.X(),
			Y:     p.Y()*cos - p.Z()*sin,
			Depth: p.Z()*cos + p.Y()*sin,
		})
	}

	sort.SliceStable(positions, func(a, b int) bool {
		return positions[a].Depth < positions[b].Depth
	})
	return positions
}
