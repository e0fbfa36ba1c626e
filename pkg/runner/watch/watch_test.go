package watch

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"go.uber.org/goleak"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/store/storetest"
)

func init() {
	color.NoColor = true
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWatchReprintsOnChange(t *testing.T) {
	mem := &storetest.Memory{}
	out := &syncBuffer{}
	w := Watch{Service: &app.Service{Persistence: mem}, Out: out}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()

	waitFor(t, "watcher", func() bool { return mem.Watchers() == 1 })
	if strings.Contains(out.String(), "written elsewhere") {
		t.Fatalf("unexpected label before change")
	}

	writer := &app.Service{Persistence: mem}
	if _, err := writer.AddTodo(context.Background(), "written elsewhere"); err != nil {
		t.Fatalf("add: %v", err)
	}
	saves := mem.Saves()
	mem.Emit(store.KeyTodos)

	waitFor(t, "reprint", func() bool { return strings.Contains(out.String(), "written elsewhere") })

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
	if mem.Saves() != saves {
		t.Fatalf("expected follower not to write")
	}
	waitFor(t, "watcher close", func() bool { return mem.Watchers() == 0 })
}

func TestWatchFollowsAnotherProcessOnDisk(t *testing.T) {
	base := t.TempDir()
	open := func() *app.Service {
		p, err := store.Load(store.StaticConfig{Path: base}, nil)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		return &app.Service{Persistence: p}
	}
	follower := open()
	out := &syncBuffer{}
	w := Watch{Service: follower, Out: out}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()
	waitFor(t, "first print", func() bool { return strings.Contains(out.String(), "Task 1") })

	writer := open()
	if _, err := writer.SetLabel(context.Background(), 1, "renamed on disk"); err != nil {
		t.Fatalf("label: %v", err)
	}
	waitFor(t, "reprint", func() bool { return strings.Contains(out.String(), "renamed on disk") })

	if _, err := writer.Assign(context.Background(), 1, "9:30"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	waitFor(t, "agenda reprint", func() bool { return strings.Contains(out.String(), "9:30") })

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
