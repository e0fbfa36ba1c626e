// Package slot implements the fixed grid of time slots for one day. Each slot
// holds an ordered sequence of assigned todo item IDs.
package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/dayplan/pkg/todo"
)

// Granularity selects how the day is divided.
type Granularity int

const (
	// Hourly divides the day into 24 whole-hour slots.
	Hourly Granularity = 24
	// HalfHourly divides the day into 48 half-hour slots.
	HalfHourly Granularity = 48
)

// HoursPerDay is the number of whole hours covered by every grid.
const HoursPerDay = 24

// ErrInvalidLabel is returned when a slot label cannot be parsed.
var ErrInvalidLabel = errors.New("slot: invalid label")

// ParseGranularity accepts "hour" or "half-hour" (and a few aliases).
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hour", "hourly", "60", "24":
		return Hourly, nil
	case "", "half-hour", "halfhour", "half", "30", "48":
		return HalfHourly, nil
	default:
		return 0, fmt.Errorf("slot: unknown granularity %q", s)
	}
}

// Slots returns the number of slots for the granularity.
func (g Granularity) Slots() int {
	return int(g)
}

// Minutes returns the length of one slot in minutes.
func (g Granularity) Minutes() int {
	return HoursPerDay * 60 / int(g)
}

func (g Granularity) String() string {
	switch g {
	case Hourly:
		return "hour"
	case HalfHourly:
		return "half-hour"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// Grid is a fixed-size slot grid. The slot count never changes after New.
type Grid struct {
	granularity Granularity
	slots       [][]todo.ID
}

// New builds an empty grid with the given granularity.
func New(g Granularity) *Grid {
	if g != Hourly && g != HalfHourly {
		panic(fmt.Sprintf("slot: unsupported granularity %d", int(g)))
	}
	return &Grid{granularity: g, slots: make([][]todo.ID, g.Slots())}
}

// Granularity returns the grid granularity.
func (g *Grid) Granularity() Granularity {
	return g.granularity
}

// Len returns the number of slots.
func (g *Grid) Len() int {
	return len(g.slots)
}

// At returns a copy of the assignment sequence of slot s.
func (g *Grid) At(s int) []todo.ID {
	g.check(s)
	out := make([]todo.ID, len(g.slots[s]))
	copy(out, g.slots[s])
	return out
}

// Assign appends id to slot s. Assigning the same id twice keeps both.
func (g *Grid) Assign(s int, id todo.ID) {
	g.check(s)
	g.slots[s] = append(g.slots[s], id)
}

// Unassign removes the entry at position in slot s and returns it.
func (g *Grid) Unassign(s, position int) todo.ID {
	g.check(s)
	seq := g.slots[s]
	if position < 0 || position >= len(seq) {
		panic(fmt.Sprintf("slot: position %d out of range [0,%d) in slot %d", position, len(seq), s))
	}
	removed := seq[position]
	g.slots[s] = append(seq[:position], seq[position+1:]...)
	return removed
}

// Purge removes every occurrence of id across all slots and returns how many
// were removed.
func (g *Grid) Purge(id todo.ID) int {
	removed := 0
	for s, seq := range g.slots {
		kept := seq[:0]
		for _, v := range seq {
			if v == id {
				removed++
				continue
			}
			kept = append(kept, v)
		}
		g.slots[s] = kept
	}
	return removed
}

// Assigned returns the number of assignments across all slots.
func (g *Grid) Assigned() int {
	n := 0
	for _, seq := range g.slots {
		n += len(seq)
	}
	return n
}

// Hour returns the whole hour slot s starts in.
func (g *Grid) Hour(s int) int {
	g.check(s)
	return s * g.granularity.Minutes() / 60
}

// Label renders slot s as a clock time such as "9:00" or "9:30".
func (g *Grid) Label(s int) string {
	g.check(s)
	mins := s * g.granularity.Minutes()
	return fmt.Sprintf("%d:%02d", mins/60, mins%60)
}

// Parse resolves either a slot index ("19") or a clock label ("9:30") to a
// slot index. Labels must fall on a slot boundary.
func (g *Grid) Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ":") {
		idx, err := strconv.Atoi(s)
		if err != nil || idx < 0 || idx >= g.Len() {
			return 0, fmt.Errorf("%w: %q (want 0..%d or H:MM)", ErrInvalidLabel, s, g.Len()-1)
		}
		return idx, nil
	}
	hh, mm, _ := strings.Cut(s, ":")
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h >= HoursPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m >= 60 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	mins := h*60 + m
	if mins%g.granularity.Minutes() != 0 {
		return 0, fmt.Errorf("%w: %q is not on a %d minute boundary", ErrInvalidLabel, s, g.granularity.Minutes())
	}
	return mins / g.granularity.Minutes(), nil
}

func (g *Grid) check(s int) {
	if s < 0 || s >= len(g.slots) {
		panic(fmt.Sprintf("slot: index %d out of range [0,%d)", s, len(g.slots)))
	}
}

// Reader is the read side of a Grid.
type Reader interface {
	Granularity() Granularity
	Len() int
	At(s int) []todo.ID
	Assigned() int
	Hour(s int) int
	Label(s int) string
	Parse(s string) (int, error)
}

// ReadOnly returns a view of g that exposes no mutators.
func (g *Grid) ReadOnly() Reader {
	return readOnly{g: g}
}

type readOnly struct {
	g *Grid
}

func (v readOnly) Granularity() Granularity    { return v.g.Granularity() }
func (v readOnly) Len() int                    { return v.g.Len() }
func (v readOnly) At(s int) []todo.ID          { return v.g.At(s) }
func (v readOnly) Assigned() int               { return v.g.Assigned() }
func (v readOnly) Hour(s int) int              { return v.g.Hour(s) }
func (v readOnly) Label(s int) string          { return v.g.Label(s) }
func (v readOnly) Parse(s string) (int, error) { return v.g.Parse(s) }
