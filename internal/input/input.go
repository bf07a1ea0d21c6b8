// Package input tracks which keys are held across frames and which keys
// changed state during the current frame.
package input

import (
	"slices"

	"chosenoffset.com/proximity/internal/render"
)

// State holds the keyboard state for one frame.
// Pressed and Released only describe the current frame; Held persists until
// the matching key-up arrives.
type State struct {
	pressed  map[render.Key]struct{}
	released map[render.Key]struct{}
	held     map[render.Key]struct{}

	events []render.KeyEvent
}

// NewState creates an empty input state.
func NewState() *State {
	return &State{
		pressed:  make(map[render.Key]struct{}),
		released: make(map[render.Key]struct{}),
		held:     make(map[render.Key]struct{}),
	}
}

// Reset clears the per-frame pressed and released sets.
func (s *State) Reset() {
	clear(s.pressed)
	clear(s.released)
}

// Apply records a single key transition.
func (s *State) Apply(ev render.KeyEvent) {
	if ev.Down {
		s.pressed[ev.Key] = struct{}{}
		s.held[ev.Key] = struct{}{}
		return
	}
	s.released[ev.Key] = struct{}{}
	delete(s.held, ev.Key)
}

// Poll drains the pending key events from src and applies them in order.
func (s *State) Poll(src render.InputManager) {
	s.events = src.AppendKeyEvents(s.events[:0])
	for _, ev := range s.events {
		s.Apply(ev)
	}
}

// Held reports whether key is currently held down.
func (s *State) Held(key render.Key) bool {
	_, ok := s.held[key]
	return ok
}

// HeldAny reports whether any of keys is held down.
func (s *State) HeldAny(keys ...render.Key) bool {
	for _, k := range keys {
		if s.Held(k) {
			return true
		}
	}
	return false
}

// Pressed reports whether key went down this frame.
func (s *State) Pressed(key render.Key) bool {
	_, ok := s.pressed[key]
	return ok
}

// Released reports whether key went up this frame.
func (s *State) Released(key render.Key) bool {
	_, ok := s.released[key]
	return ok
}

// HeldKeys returns the held keys in ascending order.
func (s *State) HeldKeys() []render.Key {
	keys := make([]render.Key, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
