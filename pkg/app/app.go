package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/todo"
)

// Service provides high-level operations on the planner for the CLI and the
// TUI. It loads the stored snapshot once, and keeps the store in sync with
// every engine operation.
//
// Engine methods treat bad indices as programming errors; Service validates
// user input first and reports ErrOutOfRange instead.
type Service struct {
	Persistence store.Persistence
	Granularity slot.Granularity
	Logger      *zap.Logger

	engine *planner.Engine
	writer *store.Writer
}

var (
	ErrOutOfRange    = errors.New("app: index out of range")
	ErrNoPersistence = errors.New("app: no persistence configured")
)

// Open loads the stored snapshot into a new engine. Calling Open again
// returns the same engine.
func (s *Service) Open(ctx context.Context) (*planner.Engine, error) {
	if s.engine != nil {
		return s.engine, nil
	}
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	g := s.Granularity
	if g == 0 {
		g = slot.HalfHourly
	}

	e := planner.NewEngine(planner.NewState(g))
	if err := e.Restore(s.Persistence.Load(ctx, g)); err != nil {
		return nil, err
	}
	s.writer = &store.Writer{Persistence: s.Persistence, Logger: s.Logger}
	e.Subscribe(s.writer)
	s.engine = e
	return e, nil
}

// Engine returns the opened engine or nil.
func (s *Service) Engine() *planner.Engine {
	return s.engine
}

// WriteErr reports a failed write from the most recent engine change.
func (s *Service) WriteErr() error {
	if s.writer == nil {
		return nil
	}
	return s.writer.Err
}

// todoIndex converts a 1-based todo number into an index.
func todoIndex(e *planner.Engine, n int) (int, error) {
	if n < 1 || n > e.State().Todos().Len() {
		return 0, fmt.Errorf("%w: todo %d (have %d)", ErrOutOfRange, n, e.State().Todos().Len())
	}
	return n - 1, nil
}

// Todos lists the todo items.
func (s *Service) Todos(ctx context.Context) ([]todo.Entry, error) {
	e, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}
	return e.State().Todos().Entries(), nil
}

// AddTodo appends a todo item with the given label.
func (s *Service) AddTodo(ctx context.Context, label string) (todo.Entry, error) {
	e, err := s.Open(ctx)
	if err != nil {
		return todo.Entry{}, err
	}
	idx := e.AddTodo()
	if label = strings.TrimSpace(label); label != "" {
		e.SetLabel(idx, label)
	}
	return e.State().Todos().At(idx), s.WriteErr()
}

// SetLabel relabels todo number n.
func (s *Service) SetLabel(ctx context.Context, n int, label string) (todo.Entry, error) {
	e, err := s.Open(ctx)
	if err != nil {
		return todo.Entry{}, err
	}
	idx, err := todoIndex(e, n)
	if err != nil {
		return todo.Entry{}, err
	}
	e.SetLabel(idx, label)
	return e.State().Todos().At(idx), s.WriteErr()
}

// ToggleCompletion flips completion of todo number n.
func (s *Service) ToggleCompletion(ctx context.Context, n int) (todo.Entry, error) {
	e, err := s.Open(ctx)
	if err != nil {
		return todo.Entry{}, err
	}
	idx, err := todoIndex(e, n)
	if err != nil {
		return todo.Entry{}, err
	}
	e.ToggleCompletion(idx)
	return e.State().Todos().At(idx), s.WriteErr()
}

// RemoveTodo deletes todo number n and every assignment of it. It returns the
// removed entry and how many assignments went with it.
func (s *Service) RemoveTodo(ctx context.Context, n int) (todo.Entry, int, error) {
	e, err := s.Open(ctx)
	if err != nil {
		return todo.Entry{}, 0, err
	}
	idx, err := todoIndex(e, n)
	if err != nil {
		return todo.Entry{}, 0, err
	}
	removed, purged := e.RemoveTodo(idx)
	return removed, purged, s.WriteErr()
}

// ParseSlot resolves an index or clock label against the open grid.
func (s *Service) ParseSlot(ctx context.Context, spec string) (int, error) {
	e, err := s.Open(ctx)
	if err != nil {
		return 0, err
	}
	return e.State().Slots().Parse(spec)
}

// Assign arms todo number n and clicks the slot, the same two steps the TUI
// takes.
func (s *Service) Assign(ctx context.Context, n int, slotSpec string) (int, error) {
	e, err := s.Open(ctx)
	if err != nil {
		return 0, err
	}
	idx, err := todoIndex(e, n)
	if err != nil {
		return 0, err
	}
	sl, err := e.State().Slots().Parse(slotSpec)
	if err != nil {
		return 0, err
	}
	e.ClickTodo(idx)
	e.ClickSlot(sl)
	return sl, s.WriteErr()
}

// Unassign removes the assignment at 1-based position pos of a slot. A pos of
// zero removes the last assignment.
func (s *Service) Unassign(ctx context.Context, slotSpec string, pos int) (todo.ID, error) {
	e, err := s.Open(ctx)
	if err != nil {
		return "", err
	}
	sl, err := e.State().Slots().Parse(slotSpec)
	if err != nil {
		return "", err
	}
	seq := e.State().Slots().At(sl)
	if pos == 0 {
		pos = len(seq)
	}
	if pos < 1 || pos > len(seq) {
		return "", fmt.Errorf("%w: position %d in slot %s (have %d)", ErrOutOfRange, pos, e.State().Slots().Label(sl), len(seq))
	}
	removed := e.Unassign(sl, pos-1)
	return removed, s.WriteErr()
}

// SetNote replaces the note of a whole hour.
func (s *Service) SetNote(ctx context.Context, hour int, text string) error {
	e, err := s.Open(ctx)
	if err != nil {
		return err
	}
	if hour < 0 || hour >= slot.HoursPerDay {
		return fmt.Errorf("%w: hour %d", ErrOutOfRange, hour)
	}
	e.SetNote(hour, text)
	return s.WriteErr()
}

// Watch forwards change notifications from the store.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Reload replaces the engine state with what is currently stored. Subscribers
// are not notified, so nothing is written back.
func (s *Service) Reload(ctx context.Context) (*planner.Engine, error) {
	if s.engine == nil {
		return s.Open(ctx)
	}
	g := s.engine.State().Slots().Granularity()
	if err := s.engine.Restore(s.Persistence.Load(ctx, g)); err != nil {
		return nil, err
	}
	return s.engine, nil
}
