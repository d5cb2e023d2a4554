package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-flycam/internal/log"
	"github.com/leterax/go-flycam/pkg/input"
	"github.com/leterax/go-flycam/pkg/render"
)

// SessionOptions describes the initial scene and the simulation settings
type SessionOptions struct {
	Timestep        time.Duration
	MaxCatchUpTicks int
	Controller      ControllerOptions
	Bindings        Bindings

	CameraPosition mgl32.Vec3
	CameraPitch    float32
	CameraYaw      float32

	Object     render.Transform
	Projection mgl32.Mat4
	Light      render.Light

	// Clock defaults to time.Now
	Clock func() time.Time
}

// Session owns all mutable state of the viewer: camera, input, scheduler and
// the object transform. Events and frames are handled on one goroutine, so
// nothing here is locked.
type Session struct {
	camera     *render.Camera
	input      *input.State
	controller *Controller
	scheduler  *Scheduler
	composer   *render.Composer
	object     *render.Transform

	clock  func() time.Time
	logger *log.Logger
}

// NewSession builds a session from opts
func NewSession(opts SessionOptions, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Nop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	camera := render.NewCamera(opts.CameraPosition)
	camera.SetRotation(opts.CameraPitch, opts.CameraYaw)

	state := input.NewState()
	controller := NewController(camera, state, opts.Bindings, opts.Controller)
	object := opts.Object

	return &Session{
		camera:     camera,
		input:      state,
		controller: controller,
		scheduler:  NewScheduler(opts.Timestep, opts.MaxCatchUpTicks, controller.Step),
		composer:   render.NewComposer(opts.Projection, opts.Light),
		object:     &object,
		clock:      clock,
		logger:     logger,
	}
}

// OnKey records a key press or release
func (s *Session) OnKey(key input.Key, pressed bool) {
	s.input.OnKeyEvent(key, pressed)
}

// OnPointerMove records an absolute pointer position
func (s *Session) OnPointerMove(x, y float32) {
	s.input.OnPointerMove(x, y)
}

// OnFocus releases every key when focus is lost, since their release
// events will not be delivered.
func (s *Session) OnFocus(focused bool) {
	if !focused {
		s.input.ReleaseAll()
	}
	s.input.ResetPointer()
}

// SetMouseLook toggles pointer driven rotation
func (s *Session) SetMouseLook(enabled bool) {
	s.controller.SetMouseLook(enabled)
	s.input.ResetPointer()
}

// Frame advances the simulation to the current time and returns the
// uniforms for the frame. All ticks finish before the matrices are built.
func (s *Session) Frame() render.Uniforms {
	ticks, dropped := s.scheduler.Frame(s.clock())
	if dropped > 0 {
		s.logger.Warn("simulation fell behind, dropping time",
			log.Int("ticks", ticks),
			log.Duration("dropped", dropped),
		)
	}
	return s.composer.Compose(s.camera, s.object)
}

// Camera returns the session camera
func (s *Session) Camera() *render.Camera {
	return s.camera
}

// Object returns the transform of the scene object
func (s *Session) Object() *render.Transform {
	return s.object
}

// Scheduler returns the fixed step scheduler
func (s *Session) Scheduler() *Scheduler {
	return s.scheduler
}
