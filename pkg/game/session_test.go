package game

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/leterax/go-flycam/internal/log"
	"github.com/leterax/go-flycam/pkg/input"
	"github.com/leterax/go-flycam/pkg/render"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSession(maxCatchUp int, logger *log.Logger) (*Session, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts := SessionOptions{
		Timestep:        timestep,
		MaxCatchUpTicks: maxCatchUp,
		Controller:      defaultOpts(),
		Bindings:        DefaultBindings(),
		CameraPosition:  mgl32.Vec3{0, 10, 0},
		CameraYaw:       90,
		Object: render.Transform{
			Position: mgl32.Vec3{0, 0, 25},
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		Projection: render.PerspectiveLH(mgl32.DegToRad(75), 1, 0.1, 100),
		Light:      render.Light{Color: mgl32.Vec3{1, 1, 1}, Position: mgl32.Vec3{5, 15, 5}},
		Clock:      clock.Now,
	}
	return NewSession(opts, logger), clock
}

func TestSessionInitialFrame(t *testing.T) {
	s, _ := newTestSession(0, nil)

	u := s.Frame()
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, u.ViewPosition)
	assert.Equal(t, s.Camera().ViewMatrix(), u.View)
	assert.Equal(t, s.Object().ModelMatrix(), u.Model)
	assert.Equal(t, mgl32.Vec3{5, 15, 5}, u.LightPosition)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, u.LightColor)
}

func TestSessionMovesPerTick(t *testing.T) {
	s, clock := newTestSession(0, nil)
	s.Frame()

	s.OnKey(input.KeyW, true)
	clock.Advance(10 * timestep)
	u := s.Frame()

	assert.Equal(t, uint64(10), s.Scheduler().Ticks())
	assert.InDelta(t, 10*moveSpeed, u.ViewPosition.Z(), 1e-5)
	assert.Equal(t, s.Camera().Position(), u.ViewPosition)
}

func TestSessionFrameRateIndependent(t *testing.T) {
	smooth, smoothClock := newTestSession(0, nil)
	jittery, jitteryClock := newTestSession(0, nil)
	for _, s := range []*Session{smooth, jittery} {
		s.Frame()
		s.OnKey(input.KeyW, true)
		s.OnKey(input.KeyJ, true)
	}

	for i := 0; i < 120; i++ {
		smoothClock.Advance(timestep)
		smooth.Frame()
	}

	// same total time in uneven frames
	for _, d := range []time.Duration{
		3 * timestep, timestep / 4, 50 * timestep, timestep - timestep/4, 66 * timestep,
	} {
		jitteryClock.Advance(d)
		jittery.Frame()
	}

	assert.Equal(t, smooth.Scheduler().Ticks(), jittery.Scheduler().Ticks())
	assert.Equal(t, smooth.Camera().Position(), jittery.Camera().Position())

	sp, sy := smooth.Camera().Orientation()
	jp, jy := jittery.Camera().Orientation()
	assert.Equal(t, sp, jp)
	assert.Equal(t, sy, jy)
}

func TestSessionFocusLossReleasesKeys(t *testing.T) {
	s, clock := newTestSession(0, nil)
	s.Frame()

	s.OnKey(input.KeyW, true)
	s.OnFocus(false)
	clock.Advance(5 * timestep)
	u := s.Frame()

	assert.Equal(t, mgl32.Vec3{0, 10, 0}, u.ViewPosition)
}

func TestSessionMouseLookToggle(t *testing.T) {
	s, clock := newTestSession(0, nil)
	s.Frame()
	s.SetMouseLook(true)

	s.OnPointerMove(0, 0)
	s.OnPointerMove(-20, 0)
	clock.Advance(timestep)
	s.Frame()

	_, yaw := s.Camera().Orientation()
	assert.InDelta(t, 91, yaw, 1e-4)
}

func TestSessionLogsDroppedTime(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s, clock := newTestSession(5, log.FromZap(zap.New(core)))
	s.Frame()

	clock.Advance(3 * timestep)
	s.Frame()
	assert.Equal(t, 0, logs.Len())

	// a long stall, e.g. a debugger pause
	clock.Advance(10 * time.Second)
	s.Frame()

	entries := logs.FilterMessage("simulation fell behind, dropping time").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, int64(5), fields["ticks"])
	}
	assert.Equal(t, uint64(8), s.Scheduler().Ticks())
	assert.Less(t, s.Scheduler().Accumulator(), timestep)
}
