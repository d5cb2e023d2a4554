package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-flycam/pkg/game"
	"github.com/leterax/go-flycam/pkg/input"
	"github.com/leterax/go-flycam/pkg/render"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, time.Second/60, cfg.Timestep())
	assert.Equal(t, float32(1), cfg.Aspect())
}

func TestDefaultBindingsMatchGame(t *testing.T) {
	bindings, err := Default().Bindings.Resolve()
	require.NoError(t, err)
	assert.Equal(t, game.DefaultBindings(), bindings)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	src := `
window:
  width: 800
  height: 400
simulation:
  tick_rate: 120
  max_catch_up_ticks: 0
camera:
  position: [1, 2, 3]
bindings:
  forward: Up
`
	_, err := Decode(strings.NewReader(src))
	require.Error(t, err, "unknown key name must be rejected")

	src = strings.Replace(src, "forward: Up", "forward: I", 1)
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 400, cfg.Window.Height)
	assert.Equal(t, "flycam", cfg.Window.Title)
	assert.Equal(t, time.Second/120, cfg.Timestep())
	assert.Equal(t, 0, cfg.Simulation.MaxCatchUpTicks)
	assert.Equal(t, Vec3{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, float32(90), cfg.Camera.Yaw)
	assert.Equal(t, "I", cfg.Bindings.Forward)
	assert.Equal(t, "S", cfg.Bindings.Back)
	assert.Equal(t, float32(2), cfg.Aspect())
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("window:\n  fullscreen: true\n"))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"zero tick rate", func(c *Config) { c.Simulation.TickRate = 0 }},
		{"negative catch up", func(c *Config) { c.Simulation.MaxCatchUpTicks = -1 }},
		{"fov too wide", func(c *Config) { c.Projection.FOV = 180 }},
		{"zero near", func(c *Config) { c.Projection.Near = 0 }},
		{"far before near", func(c *Config) { c.Projection.Far = 0.05 }},
		{"unknown mesh", func(c *Config) { c.Object.Mesh = "teapot" }},
		{"bad binding", func(c *Config) { c.Bindings.YawLeft = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "flycam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("object:\n  mesh: cube\n"), 0o644))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cube", cfg.Object.Mesh)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSessionOptions(t *testing.T) {
	cfg := Default()
	cfg.Bindings.Up = "E"

	opts, err := cfg.SessionOptions()
	require.NoError(t, err)

	assert.Equal(t, time.Second/60, opts.Timestep)
	assert.Equal(t, 15, opts.MaxCatchUpTicks)
	assert.Equal(t, input.Key('E'), opts.Bindings.Up)
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, opts.CameraPosition)
	assert.Equal(t, float32(90), opts.CameraYaw)
	assert.Equal(t, mgl32.Vec3{0, 0, 25}, opts.Object.Position)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, opts.Object.Scale)
	assert.Equal(t, render.PerspectiveLH(mgl32.DegToRad(75), 1, 0.1, 100), opts.Projection)
	assert.Equal(t, mgl32.Vec3{5, 15, 5}, opts.Light.Position)
	assert.InDelta(t, 12.0/60.0, opts.Controller.MoveSpeed, 1e-6)
	assert.False(t, opts.Controller.MouseLook)
}
