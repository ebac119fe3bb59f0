package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed perspective camera aimed at the ring center.
// Scrolling zooms by narrowing the field of view.
type Camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	worldUp  mgl32.Vec3

	fov        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera at position looking at target
func NewCamera(position, target mgl32.Vec3) *Camera {
	camera := &Camera{
		position: position,
		target:   target,
		worldUp:  mgl32.Vec3{0, 1, 0},
		fov:      DefaultFOV,
		width:    800,
		height:   600,
	}
	camera.updateProjectionMatrix()
	return camera
}

func (c *Camera) updateProjectionMatrix() {
	height := c.height
	if height <= 0 {
		// Minimized windows report a zero-height framebuffer
		height = 1
	}
	aspect := float32(c.width) / float32(height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.worldUp)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera, keeping it aimed at the target
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// LookAt aims the camera at target
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.target = target
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// HandleMouseScroll zooms in on positive offsets
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.fov -= float32(yoffset)
	c.fov = mgl32.Clamp(c.fov, MinFOV, MaxFOV)
	c.updateProjectionMatrix()
}
