package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-flycam/pkg/input"
	"github.com/leterax/go-flycam/pkg/render"
)

// Bindings maps camera actions to keys
type Bindings struct {
	Forward, Back, Left, Right input.Key
	Up, Down                   input.Key
	PitchUp, PitchDown         input.Key
	YawLeft, YawRight          input.Key
}

// DefaultBindings returns WASD movement, Space/LeftShift for vertical
// movement and IJKL for looking around.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:   input.KeyW,
		Back:      input.KeyS,
		Left:      input.KeyA,
		Right:     input.KeyD,
		Up:        input.KeySpace,
		Down:      input.KeyLeftShift,
		PitchUp:   input.KeyI,
		PitchDown: input.KeyK,
		YawLeft:   input.KeyJ,
		YawRight:  input.KeyL,
	}
}

// ControllerOptions sets the per-tick speeds
type ControllerOptions struct {
	MoveSpeed   float32 // world units per tick
	RotateSpeed float32 // degrees per tick

	MouseLook  bool
	MouseSense float32 // degrees per pixel
}

// Controller applies held input to the camera once per simulation tick.
// Speeds are per tick, never scaled by frame time.
type Controller struct {
	camera   *render.Camera
	input    *input.State
	bindings Bindings
	opts     ControllerOptions
}

// NewController creates a controller driving camera from state
func NewController(camera *render.Camera, state *input.State, bindings Bindings, opts ControllerOptions) *Controller {
	return &Controller{
		camera:   camera,
		input:    state,
		bindings: bindings,
		opts:     opts,
	}
}

// SetMouseLook enables or disables pointer driven rotation
func (c *Controller) SetMouseLook(enabled bool) {
	c.opts.MouseLook = enabled
}

// Step runs one simulation tick
func (c *Controller) Step() {
	held := c.input.IsHeld
	b := c.bindings

	var lateral mgl32.Vec2
	var vertical float32

	if held(b.Forward) {
		lateral[1] += 1
	}
	if held(b.Back) {
		lateral[1] -= 1
	}
	if held(b.Left) {
		lateral[0] -= 1
	}
	if held(b.Right) {
		lateral[0] += 1
	}
	if held(b.Down) {
		vertical -= 1
	}
	if held(b.Up) {
		vertical += 1
	}

	// diagonal movement is no faster than straight movement
	if l := lateral.Len(); l > 0 {
		c.camera.LateralMove(lateral.Mul(c.opts.MoveSpeed / l))
	}
	if vertical != 0 {
		c.camera.TranslateVertical(vertical * c.opts.MoveSpeed)
	}

	pointer := c.input.ConsumePointerDelta()
	if c.opts.MouseLook {
		// screen y grows downwards and yaw grows to the left
		c.camera.RotatePitch(-pointer.Y() * c.opts.MouseSense)
		c.camera.RotateYaw(-pointer.X() * c.opts.MouseSense)
	}

	if held(b.PitchUp) {
		c.camera.RotatePitch(c.opts.RotateSpeed)
	}
	if held(b.PitchDown) {
		c.camera.RotatePitch(-c.opts.RotateSpeed)
	}
	if held(b.YawLeft) {
		c.camera.RotateYaw(c.opts.RotateSpeed)
	}
	if held(b.YawRight) {
		c.camera.RotateYaw(-c.opts.RotateSpeed)
	}
}
