// Package planner owns the planner state and is the only mutation path for
// it. Every operation leaves the state fully updated before subscribers are
// notified.
package planner

import (
	"tableflip.dev/dayplan/pkg/selection"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/todo"
)

// State is the aggregate owned by an Engine.
type State struct {
	todos     *todo.Registry
	slots     *slot.Grid
	selection selection.Selection
	notes     []string
}

// NewState returns a state seeded with the default todo items and an empty
// grid of the given granularity.
func NewState(g slot.Granularity) *State {
	return &State{
		todos: todo.NewRegistry(todo.Seed()...),
		slots: slot.New(g),
		notes: make([]string, slot.HoursPerDay),
	}
}

// Todos exposes the registry for reads. Mutations go through the Engine.
func (s *State) Todos() todo.Reader {
	return s.todos.ReadOnly()
}

// Slots exposes the grid for reads. Mutations go through the Engine.
func (s *State) Slots() slot.Reader {
	return s.slots.ReadOnly()
}

// Armed returns the selected todo ID, if any.
func (s *State) Armed() (todo.ID, bool) {
	return s.selection.Current()
}

// Note returns the free-text note of a whole hour.
func (s *State) Note(hour int) string {
	if hour < 0 || hour >= len(s.notes) {
		return ""
	}
	return s.notes[hour]
}

// Notes returns a copy of the hour notes.
func (s *State) Notes() []string {
	out := make([]string, len(s.notes))
	copy(out, s.notes)
	return out
}

// LabelOf returns the label of the todo item with the given ID.
func (s *State) LabelOf(id todo.ID) (string, bool) {
	idx, ok := s.todos.IndexOf(id)
	if !ok {
		return "", false
	}
	return s.todos.At(idx).Label, true
}
