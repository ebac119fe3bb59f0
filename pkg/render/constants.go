package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Key constants for keyboard input
const (
	KeyEscape = glfw.KeyEscape
	KeyTab    = glfw.KeyTab
	KeyLeft   = glfw.KeyLeft
	KeyRight  = glfw.KeyRight
	Key1      = glfw.Key1
	Key9      = glfw.Key9
)

// Action constants for key and button states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// MousePointerID is the pointer id given to the GLFW mouse, matching the id
// browsers assign to the primary mouse.
const MousePointerID = 1

// Camera constants
const (
	DefaultFOV = 45.0
	MinFOV     = 20.0
	MaxFOV     = 70.0

	// The camera sits on +Z looking at the ring center
	DefaultCameraDistance = 8.0
	DefaultCameraHeight   = 0.6

	NearPlane = 0.1
	FarPlane  = 100.0
)

// Presentation constants
const (
	// Glow pulse period while the ring is idle and auto-spinning
	AutoSpinPulseSeconds = 3.0
	AutoSpinGlow         = 0.12
	DraggingGlow         = 0.05
)

// Scene colors
var (
	BackgroundColor = mgl32.Vec4{0.05, 0.05, 0.1, 1.0}
	LightPosition   = mgl32.Vec3{4.0, 6.0, 10.0}

	CardPalette = []mgl32.Vec3{
		{0.36, 0.55, 0.95},
		{0.95, 0.45, 0.45},
		{0.40, 0.80, 0.55},
		{0.95, 0.75, 0.35},
		{0.70, 0.50, 0.90},
		{0.35, 0.80, 0.85},
	}
)
