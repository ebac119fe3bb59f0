package carousel

// Physics constants
const (
	// Per-frame multiplicative decay applied to both velocities when idle
	DefaultFriction = 0.92

	// Horizontal pointer delta to rotationY degrees per pixel
	DefaultSensitivity = 0.35

	// Vertical sensitivity is Sensitivity scaled by this factor
	DefaultVerticalSensitivityFactor = 0.75

	// Horizontal pointer delta to stored velocity on drag-move
	DefaultVelocityBoost = 0.18

	// Velocity components below this magnitude snap to zero
	DefaultVelocityEpsilon = 0.001
)

// Orientation constants
const (
	DefaultRotationX = 10.0
	DefaultRotationY = 0.0

	// Tilt limits keep the ring from tipping over
	DefaultMinX = -10.0
	DefaultMaxX = 25.0
)

// Ring layout constants
const (
	DefaultItemCount  = 6
	DefaultRadius     = 2.4
	DefaultCardWidth  = 1.2
	DefaultCardHeight = 1.6
)
