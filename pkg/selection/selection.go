// Package selection holds the single armed todo item waiting to be assigned.
package selection

import "tableflip.dev/dayplan/pkg/todo"

// Selection is a register holding either nothing or one todo ID.
type Selection struct {
	id    todo.ID
	armed bool
}

// Arm sets the selection, overwriting any previous one.
func (s *Selection) Arm(id todo.ID) {
	s.id = id
	s.armed = true
}

// Consume returns the current selection and resets it.
func (s *Selection) Consume() (todo.ID, bool) {
	id, ok := s.id, s.armed
	s.Clear()
	return id, ok
}

// Current returns the selection without resetting it.
func (s *Selection) Current() (todo.ID, bool) {
	return s.id, s.armed
}

// Armed reports whether a todo item is selected.
func (s *Selection) Armed() bool {
	return s.armed
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.id = ""
	s.armed = false
}
