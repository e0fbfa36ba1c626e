// Package link derives the connector segments that tie every slot assignment
// back to the todo item it came from.
//
// The engine never reads layout itself. A Surface answers anchor queries in
// its own screen coordinates; the engine normalizes them by the surface's
// viewport offset so segments stay correct while the surface scrolls or
// resizes.
package link

import (
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/todo"
)

// Kind names the family of an anchor.
type Kind string

const (
	KindTask Kind = "task"
	KindSlot Kind = "slot"
)

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Rect is the visual region of a rendered todo item or slot.
type Rect struct {
	Left, Top, Width, Height float64
}

// RightCenter returns the middle of the right edge.
func (r Rect) RightCenter() Point {
	return Point{X: r.Left + r.Width, Y: r.Top + r.Height/2}
}

// LeftCenter returns the middle of the left edge.
func (r Rect) LeftCenter() Point {
	return Point{X: r.Left, Y: r.Top + r.Height/2}
}

// Surface is implemented by whatever renders the planner.
type Surface interface {
	// AnchorRect returns the region of the todo item or slot at index. It
	// reports false when the element is not currently rendered.
	AnchorRect(kind Kind, index int) (Rect, bool)
	// ViewportOffset returns the origin of the drawing area.
	ViewportOffset() Point
}

// Source exposes the lists the engine reads from.
type Source interface {
	Todos() todo.Reader
	Slots() slot.Reader
}

// Segment is a single connector line.
type Segment struct {
	Task     todo.ID
	Slot     int
	Position int
	X1, Y1   float64
	X2, Y2   float64
}

// Engine recomputes segments on demand.
type Engine struct {
	source   Source
	surface  Surface
	segments []Segment
	skipped  int
}

// NewEngine returns an engine that reads from source and queries surface.
func NewEngine(source Source, surface Surface) *Engine {
	return &Engine{source: source, surface: surface}
}

// SetSource swaps the source, e.g. after the state was restored.
func (e *Engine) SetSource(source Source) {
	e.source = source
}

// Segments returns the last computed segments.
func (e *Engine) Segments() []Segment {
	out := make([]Segment, len(e.segments))
	copy(out, e.segments)
	return out
}

// Skipped returns how many assignments had no visible anchor in the last
// recompute.
func (e *Engine) Skipped() int {
	return e.skipped
}

// ViewportChanged handles scroll and resize notifications.
func (e *Engine) ViewportChanged() []Segment {
	return e.Recompute()
}

// Recompute discards all previous segments and derives them again from the
// current lists and anchors.
func (e *Engine) Recompute() []Segment {
	e.segments = e.segments[:0]
	e.skipped = 0
	if e.source == nil || e.surface == nil {
		return e.Segments()
	}

	todos := e.source.Todos()
	grid := e.source.Slots()
	offset := e.surface.ViewportOffset()

	for s := 0; s < grid.Len(); s++ {
		for pos, id := range grid.At(s) {
			idx, ok := todos.IndexOf(id)
			if !ok {
				e.skipped++
				continue
			}
			from, ok := e.surface.AnchorRect(KindTask, idx)
			if !ok {
				e.skipped++
				continue
			}
			to, ok := e.surface.AnchorRect(KindSlot, s)
			if !ok {
				e.skipped++
				continue
			}
			a := from.RightCenter()
			b := to.LeftCenter()
			e.segments = append(e.segments, Segment{
				Task:     id,
				Slot:     s,
				Position: pos,
				X1:       a.X - offset.X,
				Y1:       a.Y - offset.Y,
				X2:       b.X - offset.X,
				Y2:       b.Y - offset.Y,
			})
		}
	}
	return e.Segments()
}
