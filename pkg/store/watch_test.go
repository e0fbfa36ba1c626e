package store

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"

	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/slot"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Granularity() slot.Granularity {
	return slot.HalfHourly
}

func (t testConfig) LogPath() string {
	return ""
}

func (t testConfig) Debug() bool {
	return false
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base}, nil)
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Save(planner.DefaultSnapshot(slot.HalfHourly)); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	select {
	case evt := <-ch:
		switch evt.Key {
		case KeyTodos, KeyAssignments, KeyNotes:
		default:
			t.Fatalf("unexpected key %q", evt.Key)
		}
	case <-deadline:
		t.Fatal("timed out waiting for key change event")
	}

	cancel()
	for range ch {
		// drain until the watcher goroutine exits
	}
}

func TestWatchRequiresBasePath(t *testing.T) {
	p := &persistence{}
	if _, err := p.Watch(context.Background()); err == nil {
		t.Fatalf("expected error without base path")
	}
}
