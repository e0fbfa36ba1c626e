package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/todo"
)

func newTestPersistence(t *testing.T) (Persistence, string, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	base := t.TempDir()
	p, err := Load(testConfig{path: base}, zap.New(core))
	require.NoError(t, err)
	return p, base, logs
}

func writeKey(t *testing.T, base, key, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(base, key), []byte(body), 0o644))
}

func labelsOf(entries []todo.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

func TestLoadMissingKeysUsesDefaults(t *testing.T) {
	p, _, logs := newTestPersistence(t)
	snap := p.Load(context.Background(), slot.HalfHourly)

	require.Equal(t, []string{"Task 1", "Task 2", "Task 3", "Task 4"}, labelsOf(snap.Todos))
	require.Len(t, snap.Assignments, 48)
	require.Len(t, snap.Notes, 24)
	require.Equal(t, 0, logs.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, _, _ := newTestPersistence(t)

	e := planner.NewEngine(planner.NewState(slot.Hourly))
	e.Subscribe(&Writer{Persistence: p})
	e.SetLabel(e.AddTodo(), "Lunch")
	e.ToggleCompletion(1)
	e.ClickTodo(4)
	e.ClickSlot(12)
	e.ClickTodo(0)
	e.ClickSlot(12)
	e.SetNote(8, "commute")
	e.ClickTodo(3) // selection is never stored

	loaded := p.Load(context.Background(), slot.Hourly)
	if diff := cmp.Diff(e.Snapshot(), loaded, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	restored := planner.NewEngine(planner.NewState(slot.Hourly))
	require.NoError(t, restored.Restore(loaded))
	require.Equal(t, planner.Idle, restored.Mode())
}

func TestMalformedKeysFallBackAndLog(t *testing.T) {
	p, base, logs := newTestPersistence(t)
	writeKey(t, base, KeyTodos, `{"not":"a list"`)
	writeKey(t, base, KeyAssignments, `[[], []]`) // wrong slot count
	writeKey(t, base, KeyNotes, `42`)

	snap := p.Load(context.Background(), slot.HalfHourly)
	require.Equal(t, []string{"Task 1", "Task 2", "Task 3", "Task 4"}, labelsOf(snap.Todos))
	require.Len(t, snap.Assignments, 48)
	require.Len(t, snap.Notes, 24)

	warned := logs.FilterMessage("malformed snapshot, using default").All()
	require.Len(t, warned, 3)
	got := map[string]bool{}
	for _, entry := range warned {
		got[entry.ContextMap()["key"].(string)] = true
	}
	require.Equal(t, map[string]bool{KeyTodos: true, KeyAssignments: true, KeyNotes: true}, got)
}

func TestLoadLegacyShapes(t *testing.T) {
	p, base, logs := newTestPersistence(t)
	writeKey(t, base, KeyTodos, `[{"text":"Write","completed":true},{"text":"Read","completed":false}]`)
	writeKey(t, base, KeyAssignments, `{"5":["Read","Write","Ghost"],"9":["Write"]}`)
	writeKey(t, base, KeyNotes, `["","","","","","","","","","standup"]`)

	snap := p.Load(context.Background(), slot.HalfHourly)
	require.Equal(t, []string{"Write", "Read"}, labelsOf(snap.Todos))
	require.True(t, snap.Todos[0].Completed)
	require.NotEmpty(t, snap.Todos[0].ID)

	write, read := snap.Todos[0].ID, snap.Todos[1].ID
	require.Equal(t, []todo.ID{read, write}, snap.Assignments[5])
	require.Equal(t, []todo.ID{write}, snap.Assignments[9])
	require.Equal(t, "standup", snap.Notes[9])
	require.Len(t, snap.Notes, 24)

	require.Equal(t, 1, logs.FilterMessage("dropped unresolved assignments").Len())
}

func TestLoadPlainLabelList(t *testing.T) {
	p, base, _ := newTestPersistence(t)
	writeKey(t, base, KeyTodos, `["a","b"]`)
	snap := p.Load(context.Background(), slot.Hourly)
	require.Equal(t, []string{"a", "b"}, labelsOf(snap.Todos))
}

func TestLoadDuplicateIDsAreReissued(t *testing.T) {
	p, base, _ := newTestPersistence(t)
	writeKey(t, base, KeyTodos, `[{"id":"x","label":"a"},{"id":"x","label":"b"}]`)
	snap := p.Load(context.Background(), slot.Hourly)
	require.Len(t, snap.Todos, 2)
	require.NotEqual(t, snap.Todos[0].ID, snap.Todos[1].ID)
}

func TestSaveWritesEmptyArraysNotNull(t *testing.T) {
	p, base, _ := newTestPersistence(t)
	require.NoError(t, p.Save(planner.DefaultSnapshot(slot.Hourly)))

	data, err := os.ReadFile(filepath.Join(base, KeyAssignments))
	require.NoError(t, err)
	require.NotContains(t, string(data), "null")
}

func TestWriterSkipsSelectionOnlyChanges(t *testing.T) {
	p, base, _ := newTestPersistence(t)
	e := planner.NewEngine(nil)
	e.Subscribe(&Writer{Persistence: p})

	e.ClickTodo(0)
	_, err := os.Stat(filepath.Join(base, KeyTodos))
	require.True(t, os.IsNotExist(err), "expected no write for a selection change")

	e.ClickSlot(0)
	_, err = os.Stat(filepath.Join(base, KeyAssignments))
	require.NoError(t, err)
}

func TestLoadRequiresBasePath(t *testing.T) {
	_, err := Load(testConfig{}, nil)
	require.Error(t, err)
}

func TestLoadSeesWritesFromAnotherStore(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	follower, err := Load(testConfig{path: base}, nil)
	require.NoError(t, err)
	writer, err := Load(testConfig{path: base}, nil)
	require.NoError(t, err)

	first := planner.NewEngine(planner.NewState(slot.HalfHourly))
	first.Subscribe(&Writer{Persistence: writer})
	first.SetLabel(0, "first")
	require.Equal(t, "first", follower.Load(ctx, slot.HalfHourly).Todos[0].Label)

	first.SetLabel(0, "second")
	first.ClickTodo(0)
	first.ClickSlot(19)
	first.SetNote(9, "standup")

	snap := follower.Load(ctx, slot.HalfHourly)
	require.Equal(t, "second", snap.Todos[0].Label)
	require.Equal(t, []todo.ID{snap.Todos[0].ID}, snap.Assignments[19])
	require.Equal(t, "standup", snap.Notes[9])
}

func TestLoadSeesFilesRewrittenOnDisk(t *testing.T) {
	ctx := context.Background()
	p, base, _ := newTestPersistence(t)
	writeKey(t, base, KeyTodos, `[{"id":"a","label":"before","completed":false}]`)
	require.Equal(t, []string{"before"}, labelsOf(p.Load(ctx, slot.HalfHourly).Todos))

	writeKey(t, base, KeyTodos, `[{"id":"a","label":"after","completed":true}]`)
	snap := p.Load(ctx, slot.HalfHourly)
	require.Equal(t, []string{"after"}, labelsOf(snap.Todos))
	require.True(t, snap.Todos[0].Completed)
}
