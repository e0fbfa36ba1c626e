package planner

import (
	"fmt"

	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/todo"
)

// Snapshot is a serializable copy of the persisted parts of a State. The
// selection is never part of a snapshot.
type Snapshot struct {
	Todos       []todo.Entry
	Assignments [][]todo.ID
	Notes       []string
}

// DefaultSnapshot is the state a planner starts with when nothing is stored.
func DefaultSnapshot(g slot.Granularity) Snapshot {
	return Snapshot{
		Todos:       todo.Seed(),
		Assignments: make([][]todo.ID, g.Slots()),
		Notes:       make([]string, slot.HoursPerDay),
	}
}

// Snapshot copies the persisted parts of the engine state.
func (e *Engine) Snapshot() Snapshot {
	return e.state.Snapshot()
}

// Snapshot copies the persisted parts of the state.
func (st *State) Snapshot() Snapshot {
	snap := Snapshot{
		Todos:       st.todos.Entries(),
		Assignments: make([][]todo.ID, st.slots.Len()),
		Notes:       st.Notes(),
	}
	for s := range snap.Assignments {
		snap.Assignments[s] = st.slots.At(s)
	}
	return snap
}

// Restore replaces the engine state with snap. The grid keeps its current
// granularity; snap must carry one sequence per slot. References to todo
// items that do not exist are dropped and the selection is cleared.
func (e *Engine) Restore(snap Snapshot) error {
	g := e.state.slots.Granularity()
	if len(snap.Assignments) != 0 && len(snap.Assignments) != g.Slots() {
		return fmt.Errorf("planner: snapshot has %d slots, grid has %d", len(snap.Assignments), g.Slots())
	}
	todos := todo.NewRegistry(snap.Todos...)
	grid := slot.New(g)
	for s, seq := range snap.Assignments {
		for _, id := range seq {
			if todos.Contains(id) {
				grid.Assign(s, id)
			}
		}
	}
	notes := make([]string, slot.HoursPerDay)
	copy(notes, snap.Notes)

	e.state.todos = todos
	e.state.slots = grid
	e.state.notes = notes
	e.state.selection.Clear()
	return nil
}
