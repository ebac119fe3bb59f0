package render

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leterax/portfolio/internal/openglhelper"
	"github.com/leterax/portfolio/pkg/carousel"
)

//go:embed shaders/card.vert
var cardVertexShader string

//go:embed shaders/card.frag
var cardFragmentShader string

// Renderer draws the card ring and drives the carousel controller from the
// GLFW event loop. It is the controller's Surface.
type Renderer struct {
	window *openglhelper.Window
	camera *Camera

	cardShader *openglhelper.Shader
	card       *openglhelper.Mesh

	controller *carousel.Controller
	input      *PointerInput
	frames     carousel.FrameQueue

	// Card placement relative to the ring center
	slots []mgl32.Mat4

	transform    carousel.TransformSpec
	presentation carousel.Presentation

	// Timing
	lastFrameTime float64
	deltaTime     float32
	totalTime     float32
}

// NewRenderer opens a window and prepares the ring described by cfg
func NewRenderer(width, height int, title string, cfg carousel.Config) (*Renderer, error) {
	if cfg.ItemCount <= 0 {
		return nil, fmt.Errorf("ring needs at least one card, got %d", cfg.ItemCount)
	}

	window, err := openglhelper.NewWindow(width, height, title, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	camera := NewCamera(
		mgl32.Vec3{0, DefaultCameraHeight, DefaultCameraDistance},
		mgl32.Vec3{0, 0, 0},
	)
	camera.UpdateProjectionMatrix(window.Size())

	shader, err := openglhelper.NewShader(cardVertexShader, cardFragmentShader)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	renderer := &Renderer{
		window:     window,
		camera:     camera,
		cardShader: shader,
		card:       openglhelper.NewCard(float32(cfg.Ring.CardWidth), float32(cfg.Ring.CardHeight), shader),
		slots:      ringSlots(cfg.ItemCount, cfg.Ring.Radius),
	}

	renderer.input = NewPointerInput(window.SetCursorGrabbed, func() { window.SetShouldClose(true) })
	renderer.controller = carousel.NewController(cfg, renderer.input, renderer)
	renderer.input.Attach(renderer.controller)

	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(renderer.keyCallback)
	glfwWindow.SetCursorPosCallback(renderer.cursorPosCallback)
	glfwWindow.SetMouseButtonCallback(renderer.mouseButtonCallback)
	glfwWindow.SetScrollCallback(renderer.scrollCallback)
	glfwWindow.SetFocusCallback(renderer.focusCallback)
	glfwWindow.SetFramebufferSizeCallback(renderer.framebufferSizeCallback)

	return renderer, nil
}

// Apply implements carousel.Surface.
func (r *Renderer) Apply(spec carousel.TransformSpec) {
	r.transform = spec
}

// SetPresentation implements carousel.Surface.
func (r *Renderer) SetPresentation(p carousel.Presentation) {
	r.presentation = p
}

// Controller returns the controller driven by this renderer
func (r *Renderer) Controller() *carousel.Controller {
	return r.controller
}

// Run starts the main rendering loop and releases resources when the window closes
func (r *Renderer) Run() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Each card side is its own face
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	r.controller.Start(&r.frames)
	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() {
		currentTime := glfw.GetTime()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime
		r.totalTime += r.deltaTime

		// Input callbacks run inside PollEvents, before the frame tick
		r.window.PollEvents()
		r.frames.Advance()

		r.render()
		r.window.SwapBuffers()
	}

	r.Cleanup()
}

func (r *Renderer) render() {
	r.window.Clear(BackgroundColor)

	r.cardShader.Use()
	r.cardShader.SetMat4("view", r.camera.ViewMatrix())
	r.cardShader.SetMat4("projection", r.camera.ProjectionMatrix())
	r.cardShader.SetVec3("viewPos", r.camera.Position())
	r.cardShader.SetVec3("lightPos", LightPosition)
	r.cardShader.SetFloat("glow", presentationGlow(r.presentation, r.totalTime))

	ring := toMat32(r.transform.Matrix())
	front := carousel.FrontIndex(r.transform.RotateY, len(r.slots))

	for i, slot := range r.slots {
		r.cardShader.SetMat4("model", ring.Mul4(slot))
		r.cardShader.SetVec3("cardColor", CardPalette[i%len(CardPalette)])
		r.cardShader.SetBool("highlight", i == front)
		r.card.Draw()
	}
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.card != nil {
		r.card.Delete()
		r.card = nil
	}
	if r.cardShader != nil {
		r.cardShader.Delete()
		r.cardShader = nil
	}
	r.window.Close()
}

// ringSlots converts the ring layout into float32 model matrices
func ringSlots(count int, radius float64) []mgl32.Mat4 {
	transforms := carousel.ItemTransforms(count, radius)
	slots := make([]mgl32.Mat4, len(transforms))
	for i, m := range transforms {
		slots[i] = toMat32(m)
	}
	return slots
}

func toMat32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// presentationGlow is the extra brightness of the cards: a slow pulse while
// auto-spinning, a steady tint while dragging
func presentationGlow(p carousel.Presentation, t float32) float32 {
	switch {
	case p.Dragging:
		return DraggingGlow
	case p.AutoSpin:
		phase := 2 * math.Pi * float64(t) / AutoSpinPulseSeconds
		return float32(AutoSpinGlow * (0.5 + 0.5*math.Sin(phase)))
	default:
		return 0
	}
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	r.input.Key(key, action, mods)
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.input.CursorMoved(xpos, ypos)
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	x, y := r.window.CursorPos()
	r.input.MouseButton(button, action, x, y)
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.camera.HandleMouseScroll(yoffset)
}

func (r *Renderer) focusCallback(_ *glfw.Window, focused bool) {
	r.input.FocusChanged(focused)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
}
