package game

import "time"

// Scheduler runs a step function at a fixed rate, independent of how often
// frames are rendered. Wall-clock time between frames is accumulated and
// consumed in whole timesteps.
type Scheduler struct {
	timestep    time.Duration
	maxCatchUp  int // 0 means unbounded
	accumulator time.Duration

	lastFrame time.Time
	started   bool

	ticks   uint64
	dropped time.Duration
	step    func()
}

// NewScheduler creates a scheduler calling step once per timestep.
// maxCatchUp bounds the ticks run for a single frame; 0 disables the bound.
func NewScheduler(timestep time.Duration, maxCatchUp int, step func()) *Scheduler {
	if timestep <= 0 {
		panic("game: scheduler timestep must be positive")
	}
	if maxCatchUp < 0 {
		maxCatchUp = 0
	}
	return &Scheduler{
		timestep:   timestep,
		maxCatchUp: maxCatchUp,
		step:       step,
	}
}

// Frame advances by the time elapsed since the previous call. The first
// call only starts the clock.
func (s *Scheduler) Frame(now time.Time) (ticks int, dropped time.Duration) {
	if !s.started {
		s.started = true
		s.lastFrame = now
		return 0, 0
	}
	delta := now.Sub(s.lastFrame)
	s.lastFrame = now
	return s.Advance(delta)
}

// Advance adds delta to the accumulator and runs every whole tick it holds.
// If the catch-up bound is hit, the remaining whole timesteps are discarded
// and returned as dropped; the fractional remainder is kept.
func (s *Scheduler) Advance(delta time.Duration) (ticks int, dropped time.Duration) {
	if delta > 0 {
		s.accumulator += delta
	}

	for s.accumulator >= s.timestep {
		if s.maxCatchUp > 0 && ticks >= s.maxCatchUp {
			rem := s.accumulator % s.timestep
			dropped = s.accumulator - rem
			s.accumulator = rem
			s.dropped += dropped
			break
		}
		s.step()
		s.accumulator -= s.timestep
		ticks++
	}

	s.ticks += uint64(ticks)
	return ticks, dropped
}

// Timestep returns the fixed simulation step
func (s *Scheduler) Timestep() time.Duration {
	return s.timestep
}

// Accumulator returns the time not yet consumed by a tick
func (s *Scheduler) Accumulator() time.Duration {
	return s.accumulator
}

// Ticks returns the total number of ticks run
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Dropped returns the total simulation time discarded by the catch-up bound
func (s *Scheduler) Dropped() time.Duration {
	return s.dropped
}
