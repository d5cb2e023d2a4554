// Package viewer drives a Session from a GLFW window: it forwards window
// events, asks the session for a frame and submits the result to OpenGL.
package viewer

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-flycam/internal/config"
	"github.com/leterax/go-flycam/internal/log"
	"github.com/leterax/go-flycam/internal/openglhelper"
	"github.com/leterax/go-flycam/pkg/game"
	"github.com/leterax/go-flycam/pkg/geometry"
	"github.com/leterax/go-flycam/pkg/input"
	"github.com/leterax/go-flycam/pkg/render"
)

var (
	//go:embed shaders/vert.glsl
	vertexShaderSource string
	//go:embed shaders/frag.glsl
	fragmentShaderSource string
)

// Viewer owns the window, the GPU resources and the session
type Viewer struct {
	window  *openglhelper.Window
	shader  *openglhelper.Shader
	mesh    *openglhelper.Mesh
	session *game.Session
	logger  *log.Logger

	clearColor  mgl32.Vec4
	objectColor mgl32.Vec3
	mouseLook   bool
}

// New creates the window, uploads the mesh and builds the session
func New(cfg *config.Config, logger *log.Logger) (*Viewer, error) {
	opts, err := cfg.SessionOptions()
	if err != nil {
		return nil, err
	}

	data, err := geometry.ByName(cfg.Object.Mesh)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh: %w", err)
	}

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	v := &Viewer{
		window:      window,
		shader:      shader,
		mesh:        openglhelper.NewMesh(data),
		session:     game.NewSession(opts, logger),
		logger:      logger,
		clearColor:  mgl32.Vec4(cfg.Window.ClearColor),
		objectColor: cfg.Object.Color.Vec(),
		mouseLook:   cfg.Simulation.MouseLook,
	}

	logger.Info("scene ready",
		log.String("mesh", cfg.Object.Mesh),
		log.Int("vertices", data.VertexCount()),
		log.Int("indices", len(data.Indices)),
		log.Duration("timestep", opts.Timestep),
	)

	// Set up callbacks
	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(v.keyCallback)
	glfwWindow.SetCursorPosCallback(v.cursorPosCallback)
	glfwWindow.SetFocusCallback(v.focusCallback)
	glfwWindow.SetFramebufferSizeCallback(v.framebufferSizeCallback)

	if v.mouseLook {
		window.SetMouseCaptured(true)
	}

	return v, nil
}

// Session returns the simulation state driven by the viewer
func (v *Viewer) Session() *game.Session {
	return v.session
}

// Run starts the main rendering loop and releases everything on exit
func (v *Viewer) Run() {
	for !v.window.ShouldClose() {
		v.render(v.session.Frame())

		v.window.SwapBuffers()
		v.window.PollEvents()
	}

	v.Cleanup()
}

// render submits one frame's uniforms and draws the object
func (v *Viewer) render(u render.Uniforms) {
	v.window.Clear(v.clearColor)

	v.shader.Use()
	v.shader.SetMat4("model", u.Model)
	v.shader.SetMat4("view", u.View)
	v.shader.SetMat4("proj", u.Projection)
	v.shader.SetVec3("view_position", u.ViewPosition)
	v.shader.SetVec3("light_position", u.LightPosition)
	v.shader.SetVec3("light_color", u.LightColor)
	v.shader.SetVec3("object_color", v.objectColor)

	v.mesh.Draw()
}

// Cleanup frees all resources
func (v *Viewer) Cleanup() {
	sched := v.session.Scheduler()
	v.logger.Info("shutting down",
		log.Any("ticks", sched.Ticks()),
		log.Duration("dropped", sched.Dropped()),
	)

	v.mesh.Delete()
	v.shader.Delete()
	v.window.Close()
}

// Callback functions
func (v *Viewer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	// key repeats carry no new state
	if action == glfw.Repeat {
		return
	}
	pressed := action == glfw.Press

	switch {
	case key == glfw.KeyEscape && pressed:
		v.window.SetShouldClose(true)
	case key == glfw.KeyC && pressed:
		// Toggle mouse capture with C key
		v.window.ToggleMouseCaptured()
		v.session.SetMouseLook(v.mouseLook && v.window.IsMouseCaptured())
		v.logger.Debug("mouse capture toggled", log.Bool("captured", v.window.IsMouseCaptured()))
	}

	v.session.OnKey(input.Key(key), pressed)
}

func (v *Viewer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	v.session.OnPointerMove(float32(xpos), float32(ypos))
}

func (v *Viewer) focusCallback(_ *glfw.Window, focused bool) {
	v.session.OnFocus(focused)
}

func (v *Viewer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	// the projection stays fixed; only the viewport follows the window
	v.window.OnResize(width, height)
}
