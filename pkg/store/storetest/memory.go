// Package storetest provides an in-memory store.Persistence for tests.
package storetest

import (
	"context"
	"sync"

	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/store"
)

// Memory keeps the last saved snapshot. Watch channels receive an event for
// every Emit call.
type Memory struct {
	mu       sync.Mutex
	snap     *planner.Snapshot
	saves    int
	watchers []chan store.Event
}

var _ store.Persistence = (*Memory)(nil)

// Load returns the stored snapshot or the default one.
func (m *Memory) Load(_ context.Context, g slot.Granularity) planner.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return planner.DefaultSnapshot(g)
	}
	return *m.snap
}

// Save stores snap.
func (m *Memory) Save(snap planner.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = &snap
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Watch returns a channel that is closed when ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event, 8)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()
	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

// Emit sends key to every open watcher.
func (m *Memory) Emit(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		select {
		case w <- store.Event{Key: key}:
		default:
		}
	}
}

// Watchers reports how many Watch channels are open.
func (m *Memory) Watchers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.watchers)
}
