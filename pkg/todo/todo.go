// Package todo holds the ordered registry of todo items that can be assigned
// to time slots.
package todo

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies a todo item for its whole lifetime, independent of its
// position in the registry and of its label.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// Entry is a single todo item.
type Entry struct {
	ID        ID     `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// Registry is an ordered collection of entries. Indices are positional and
// shift down when an entry before them is removed.
type Registry struct {
	entries []Entry
}

// NewRegistry builds a registry holding copies of the given entries. Entries
// without an ID are given one.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if e.ID == "" {
			e.ID = NewID()
		}
		r.entries = append(r.entries, e)
	}
	return r
}

// Seed returns the entries a fresh planner starts with.
func Seed() []Entry {
	seed := make([]Entry, 0, 4)
	for i := 1; i <= 4; i++ {
		seed = append(seed, Entry{ID: NewID(), Label: fmt.Sprintf("Task %d", i)})
	}
	return seed
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// At returns the entry at index i.
func (r *Registry) At(i int) Entry {
	r.check(i)
	return r.entries[i]
}

// Entries returns a copy of all entries in order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Add appends an empty entry and returns its index.
func (r *Registry) Add() int {
	r.entries = append(r.entries, Entry{ID: NewID()})
	return len(r.entries) - 1
}

// SetLabel replaces the label at index i.
func (r *Registry) SetLabel(i int, text string) {
	r.check(i)
	r.entries[i].Label = text
}

// ToggleCompletion flips the completed flag at index i.
func (r *Registry) ToggleCompletion(i int) {
	r.check(i)
	r.entries[i].Completed = !r.entries[i].Completed
}

// Remove deletes the entry at index i and returns it. Callers holding slot
// assignments must purge the returned ID in the same step.
func (r *Registry) Remove(i int) Entry {
	r.check(i)
	removed := r.entries[i]
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return removed
}

// IndexOf returns the current index of the entry with the given ID.
func (r *Registry) IndexOf(id ID) (int, bool) {
	for i, e := range r.entries {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindLabel returns the index of the first entry carrying label.
func (r *Registry) FindLabel(label string) (int, bool) {
	for i, e := range r.entries {
		if e.Label == label {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether an entry with the given ID exists.
func (r *Registry) Contains(id ID) bool {
	_, ok := r.IndexOf(id)
	return ok
}

func (r *Registry) check(i int) {
	if i < 0 || i >= len(r.entries) {
		panic(fmt.Sprintf("todo: index %d out of range [0,%d)", i, len(r.entries)))
	}
}

// Reader is the read side of a Registry.
type Reader interface {
	Len() int
	At(i int) Entry
	Entries() []Entry
	IndexOf(id ID) (int, bool)
	FindLabel(label string) (int, bool)
	Contains(id ID) bool
}

// ReadOnly returns a view of r that exposes no mutators, not even through a
// type assertion.
func (r *Registry) ReadOnly() Reader {
	return readOnly{r: r}
}

type readOnly struct {
	r *Registry
}

func (v readOnly) Len() int                           { return v.r.Len() }
func (v readOnly) At(i int) Entry                     { return v.r.At(i) }
func (v readOnly) Entries() []Entry                   { return v.r.Entries() }
func (v readOnly) IndexOf(id ID) (int, bool)          { return v.r.IndexOf(id) }
func (v readOnly) FindLabel(label string) (int, bool) { return v.r.FindLabel(label) }
func (v readOnly) Contains(id ID) bool                { return v.r.Contains(id) }
