package planner

import (
	"fmt"
	"strings"

	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/todo"
)

// Mode is the state of the assignment protocol.
type Mode int

const (
	// Idle means no todo item is armed; clicking a slot does nothing.
	Idle Mode = iota
	// Armed means the next slot click assigns the armed todo item.
	Armed
)

func (m Mode) String() string {
	if m == Armed {
		return "armed"
	}
	return "idle"
}

// Change describes which parts of the state an operation touched.
type Change uint8

const (
	// ChangeTodos marks an added, relabeled, toggled or removed todo item.
	ChangeTodos Change = 1 << iota
	// ChangeSlots marks an assignment added to or dropped from a slot.
	ChangeSlots
	// ChangeSelection marks the armed todo being set or cleared.
	ChangeSelection
	// ChangeNotes marks an edited hour note.
	ChangeNotes
)

// Persisted is the set of changes a durable store cares about.
const Persisted = ChangeTodos | ChangeSlots | ChangeNotes

// Has reports whether any bit of other is set.
func (c Change) Has(other Change) bool {
	return c&other != 0
}

func (c Change) String() string {
	var parts []string
	for _, n := range []struct {
		c    Change
		name string
	}{{ChangeTodos, "todos"}, {ChangeSlots, "slots"}, {ChangeSelection, "selection"}, {ChangeNotes, "notes"}} {
		if c.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Subscriber is notified synchronously after every operation.
type Subscriber interface {
	StateChanged(s *State, c Change)
}

// SubscriberFunc adapts a function into a Subscriber.
type SubscriberFunc func(s *State, c Change)

// StateChanged calls f.
func (f SubscriberFunc) StateChanged(s *State, c Change) {
	f(s, c)
}

// Engine performs assign, unassign and reconcile operations on a State.
type Engine struct {
	state       *State
	subscribers []Subscriber
}

// NewEngine wraps state. A nil state is replaced with a fresh half-hour one.
func NewEngine(state *State) *Engine {
	if state == nil {
		state = NewState(slot.HalfHourly)
	}
	return &Engine{state: state}
}

// State returns the owned state for reads.
func (e *Engine) State() *State {
	return e.state
}

// Subscribe registers s for change notifications.
func (e *Engine) Subscribe(s Subscriber) {
	e.subscribers = append(e.subscribers, s)
}

// Mode reports whether a todo item is armed.
func (e *Engine) Mode() Mode {
	if e.state.selection.Armed() {
		return Armed
	}
	return Idle
}

// AddTodo appends an empty todo item and returns its index.
func (e *Engine) AddTodo() int {
	idx := e.state.todos.Add()
	e.notify(ChangeTodos)
	return idx
}

// SetLabel replaces the label of todo item i.
func (e *Engine) SetLabel(i int, text string) {
	e.state.todos.SetLabel(i, text)
	e.notify(ChangeTodos)
}

// ToggleCompletion flips the completed flag of todo item i.
func (e *Engine) ToggleCompletion(i int) {
	e.state.todos.ToggleCompletion(i)
	e.notify(ChangeTodos)
}

// RemoveTodo deletes todo item i, removes it from every slot and clears the
// selection if it was armed. It returns the entry and the number of
// assignments dropped with it.
func (e *Engine) RemoveTodo(i int) (todo.Entry, int) {
	removed := e.state.todos.Remove(i)
	change := ChangeTodos
	purged := e.state.slots.Purge(removed.ID)
	if purged > 0 {
		change |= ChangeSlots
	}
	if id, ok := e.state.selection.Current(); ok && id == removed.ID {
		e.state.selection.Clear()
		change |= ChangeSelection
	}
	e.notify(change)
	return removed, purged
}

// ClickTodo arms todo item i, replacing any armed item.
func (e *Engine) ClickTodo(i int) {
	e.state.selection.Arm(e.state.todos.At(i).ID)
	e.notify(ChangeSelection)
}

// ClickSlot assigns the armed todo item to slot s and returns true. When
// nothing is armed it does nothing and returns false.
func (e *Engine) ClickSlot(s int) bool {
	if s < 0 || s >= e.state.slots.Len() {
		panic(fmt.Sprintf("planner: slot %d out of range [0,%d)", s, e.state.slots.Len()))
	}
	id, ok := e.state.selection.Current()
	if !ok {
		return false
	}
	e.state.slots.Assign(s, id)
	e.state.selection.Consume()
	e.notify(ChangeSlots | ChangeSelection)
	return true
}

// Unassign removes the assignment at position in slot s.
func (e *Engine) Unassign(s, position int) todo.ID {
	removed := e.state.slots.Unassign(s, position)
	e.notify(ChangeSlots)
	return removed
}

// Disarm clears the selection without assigning.
func (e *Engine) Disarm() {
	if !e.state.selection.Armed() {
		return
	}
	e.state.selection.Clear()
	e.notify(ChangeSelection)
}

// SetNote replaces the free-text note of a whole hour.
func (e *Engine) SetNote(hour int, text string) {
	if hour < 0 || hour >= len(e.state.notes) {
		panic(fmt.Sprintf("planner: hour %d out of range [0,%d)", hour, len(e.state.notes)))
	}
	e.state.notes[hour] = text
	e.notify(ChangeNotes)
}

// Refresh notifies subscribers without changing anything, e.g. after Restore
// at startup.
func (e *Engine) Refresh() {
	e.notify(ChangeTodos | ChangeSlots | ChangeSelection | ChangeNotes)
}

func (e *Engine) notify(c Change) {
	for _, s := range e.subscribers {
		s.StateChanged(e.state, c)
	}
}
