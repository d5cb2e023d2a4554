// Package input turns raw key and pointer events into queryable state.
package input

import "github.com/go-gl/mathgl/mgl32"

// State tracks which keys are held and how far the pointer moved since the
// last time the delta was consumed.
//
// Only the last event per key is kept, so a press and release that both
// land between two simulation ticks are never observed by a tick.
type State struct {
	held map[Key]bool

	pointerLast   mgl32.Vec2
	pointerDelta  mgl32.Vec2
	pointerSeeded bool
}

// NewState creates an empty input state
func NewState() *State {
	return &State{
		held: make(map[Key]bool),
	}
}

// OnKeyEvent records the latest pressed/released state of key
func (s *State) OnKeyEvent(key Key, pressed bool) {
	s.held[key] = pressed
}

// IsHeld reports whether key is currently held. Unknown keys are not held.
func (s *State) IsHeld(key Key) bool {
	return s.held[key]
}

// ReleaseAll marks every known key as released
func (s *State) ReleaseAll() {
	for k := range s.held {
		s.held[k] = false
	}
}

// OnPointerMove accumulates the pointer movement. The first event only
// seeds the reference position.
func (s *State) OnPointerMove(x, y float32) {
	pos := mgl32.Vec2{x, y}
	if !s.pointerSeeded {
		s.pointerLast = pos
		s.pointerSeeded = true
	}
	s.pointerDelta = s.pointerDelta.Add(pos.Sub(s.pointerLast))
	s.pointerLast = pos
}

// ResetPointer forgets the reference position, e.g. after the cursor was
// captured or released and jumped.
func (s *State) ResetPointer() {
	s.pointerSeeded = false
	s.pointerDelta = mgl32.Vec2{}
}

// PointerDelta returns the accumulated pointer movement
func (s *State) PointerDelta() mgl32.Vec2 {
	return s.pointerDelta
}

// ConsumePointerDelta returns the accumulated movement and resets it
func (s *State) ConsumePointerDelta() mgl32.Vec2 {
	d := s.pointerDelta
	s.pointerDelta = mgl32.Vec2{}
	return d
}
