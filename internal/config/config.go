// Package config loads the viewer configuration from YAML on top of the
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/leterax/go-flycam/pkg/game"
	"github.com/leterax/go-flycam/pkg/input"
	"github.com/leterax/go-flycam/pkg/render"
)

var ErrInvalidConfig = errors.New("invalid config")

// Vec3 is a YAML friendly [x, y, z] triple
type Vec3 [3]float32

// Vec converts to an mgl32 vector
func (v Vec3) Vec() mgl32.Vec3 { return mgl32.Vec3(v) }

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Bindings   BindingsConfig   `yaml:"bindings"`
	Camera     CameraConfig     `yaml:"camera"`
	Projection ProjectionConfig `yaml:"projection"`
	Light      LightConfig      `yaml:"light"`
	Object     ObjectConfig     `yaml:"object"`
	Log        LogConfig        `yaml:"log"`
}

type WindowConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

type SimulationConfig struct {
	TickRate        int     `yaml:"tick_rate"`          // ticks per second
	MaxCatchUpTicks int     `yaml:"max_catch_up_ticks"` // 0 disables the bound
	MoveSpeed       float32 `yaml:"move_speed"`         // world units per tick
	RotateSpeed     float32 `yaml:"rotate_speed"`       // degrees per tick
	MouseLook       bool    `yaml:"mouse_look"`
	MouseSense      float32 `yaml:"mouse_sensitivity"` // degrees per pixel
}

// BindingsConfig names the key for each camera action
type BindingsConfig struct {
	Forward   string `yaml:"forward"`
	Back      string `yaml:"back"`
	Left      string `yaml:"left"`
	Right     string `yaml:"right"`
	Up        string `yaml:"up"`
	Down      string `yaml:"down"`
	PitchUp   string `yaml:"pitch_up"`
	PitchDown string `yaml:"pitch_down"`
	YawLeft   string `yaml:"yaw_left"`
	YawRight  string `yaml:"yaw_right"`
}

type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	Pitch    float32 `yaml:"pitch"`
	Yaw      float32 `yaml:"yaw"`
}

type ProjectionConfig struct {
	FOV  float32 `yaml:"fov"` // degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

type LightConfig struct {
	Color    Vec3 `yaml:"color"`
	Position Vec3 `yaml:"position"`
}

type ObjectConfig struct {
	Mesh     string `yaml:"mesh"` // "knot" or "cube"
	Position Vec3   `yaml:"position"`
	Rotation Vec3   `yaml:"rotation"` // radians
	Scale    Vec3   `yaml:"scale"`
	Color    Vec3   `yaml:"color"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      500,
			Height:     500,
			Title:      "flycam",
			VSync:      true,
			ClearColor: [4]float32{0.2, 0.2, 0.8, 1.0},
		},
		Simulation: SimulationConfig{
			TickRate:        60,
			MaxCatchUpTicks: 15,
			MoveSpeed:       12.0 / 60.0,
			RotateSpeed:     80.0 / 60.0,
			MouseLook:       false,
			MouseSense:      0.05,
		},
		Bindings: BindingsConfig{
			Forward:   "W",
			Back:      "S",
			Left:      "A",
			Right:     "D",
			Up:        "Space",
			Down:      "LeftShift",
			PitchUp:   "I",
			PitchDown: "K",
			YawLeft:   "J",
			YawRight:  "L",
		},
		Camera: CameraConfig{
			Position: Vec3{0, 10, 0},
			Pitch:    0,
			Yaw:      90,
		},
		Projection: ProjectionConfig{
			FOV:  75,
			Near: 0.1,
			Far:  100,
		},
		Light: LightConfig{
			Color:    Vec3{1, 1, 1},
			Position: Vec3{5, 15, 5},
		},
		Object: ObjectConfig{
			Mesh:     "knot",
			Position: Vec3{0, 0, 25},
			Scale:    Vec3{1, 1, 1},
			Color:    Vec3{1, 0, 0},
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r over the defaults and validates the result
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every value the simulation and projection depend on
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Simulation.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Simulation.TickRate)
	case c.Simulation.MaxCatchUpTicks < 0:
		return fmt.Errorf("%w: max_catch_up_ticks must not be negative", ErrInvalidConfig)
	case c.Projection.FOV <= 0 || c.Projection.FOV >= 180:
		return fmt.Errorf("%w: fov must be in (0, 180), got %v", ErrInvalidConfig, c.Projection.FOV)
	case c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near:
		return fmt.Errorf("%w: need 0 < near < far, got near=%v far=%v", ErrInvalidConfig, c.Projection.Near, c.Projection.Far)
	case c.Object.Mesh != "knot" && c.Object.Mesh != "cube":
		return fmt.Errorf("%w: unknown mesh %q", ErrInvalidConfig, c.Object.Mesh)
	}

	if _, err := c.Bindings.Resolve(); err != nil {
		return err
	}
	return nil
}

// Timestep returns the fixed simulation step
func (c *Config) Timestep() time.Duration {
	return time.Second / time.Duration(c.Simulation.TickRate)
}

// Aspect returns the window aspect ratio used by the fixed projection
func (c *Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}

// Resolve parses every key name
func (b BindingsConfig) Resolve() (game.Bindings, error) {
	var out game.Bindings
	for _, entry := range []struct {
		name string
		dst  *input.Key
	}{
		{b.Forward, &out.Forward},
		{b.Back, &out.Back},
		{b.Left, &out.Left},
		{b.Right, &out.Right},
		{b.Up, &out.Up},
		{b.Down, &out.Down},
		{b.PitchUp, &out.PitchUp},
		{b.PitchDown, &out.PitchDown},
		{b.YawLeft, &out.YawLeft},
		{b.YawRight, &out.YawRight},
	} {
		k, err := input.ParseKey(entry.name)
		if err != nil {
			return game.Bindings{}, fmt.Errorf("%w: bindings: %v", ErrInvalidConfig, err)
		}
		*entry.dst = k
	}
	return out, nil
}

// SessionOptions converts the configuration into the simulation settings
func (c *Config) SessionOptions() (game.SessionOptions, error) {
	bindings, err := c.Bindings.Resolve()
	if err != nil {
		return game.SessionOptions{}, err
	}

	p := c.Projection
	return game.SessionOptions{
		Timestep:        c.Timestep(),
		MaxCatchUpTicks: c.Simulation.MaxCatchUpTicks,
		Controller: game.ControllerOptions{
			MoveSpeed:   c.Simulation.MoveSpeed,
			RotateSpeed: c.Simulation.RotateSpeed,
			MouseLook:   c.Simulation.MouseLook,
			MouseSense:  c.Simulation.MouseSense,
		},
		Bindings:       bindings,
		CameraPosition: c.Camera.Position.Vec(),
		CameraPitch:    c.Camera.Pitch,
		CameraYaw:      c.Camera.Yaw,
		Object: render.Transform{
			Position: c.Object.Position.Vec(),
			Rotation: c.Object.Rotation.Vec(),
			Scale:    c.Object.Scale.Vec(),
		},
		Projection: render.PerspectiveLH(mgl32.DegToRad(p.FOV), c.Aspect(), p.Near, p.Far),
		Light: render.Light{
			Color:    c.Light.Color.Vec(),
			Position: c.Light.Position.Vec(),
		},
	}, nil
}
