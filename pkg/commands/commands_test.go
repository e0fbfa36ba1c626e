package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/runner/get"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	prev := color.Output
	color.Output = &buf
	defer func() { color.Output = prev }()

	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("dayplan %s: %v\n%s", strings.Join(args, " "), err, buf.String())
	}
	return buf.String()
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	for _, path := range [][]string{
		{"ui"}, {"get"}, {"assign"}, {"unassign"}, {"note"}, {"watch"}, {"info"}, {"key"}, {"version"},
		{"todo", "add"}, {"todo", "label"}, {"todo", "done"}, {"todo", "rm"}, {"todo", "ls"},
	} {
		found, _, err := cmd.Find(path)
		if err != nil || found.Name() != path[len(path)-1] {
			t.Fatalf("expected command %v, got %v (%v)", path, found, err)
		}
	}
}

func TestTodoNumber(t *testing.T) {
	if n, err := todoNumber("3."); err != nil || n != 3 {
		t.Fatalf("expected 3, got %d, %v", n, err)
	}
	if _, err := todoNumber("three"); err == nil {
		t.Fatalf("expected error for non-number")
	}
}

func TestEndToEnd(t *testing.T) {
	color.NoColor = true
	t.Setenv("DAYPLAN_PATH", t.TempDir())
	t.Setenv("DAYPLAN_CONFIG_PATH", t.TempDir())
	t.Setenv("DAYPLAN_GRANULARITY", "hour")

	out := run(t, "todo", "add", "buy", "milk")
	if !strings.Contains(out, "buy milk") || !strings.Contains(out, "5.") {
		t.Fatalf("expected new fifth item, got:\n%s", out)
	}
	run(t, "assign", "5", "9:00")
	run(t, "assign", "1", "9")
	run(t, "note", "9", "standup")
	run(t, "unassign", "9:00")

	var agenda get.Agenda
	out = run(t, "get", "--json")
	if err := json.Unmarshal([]byte(out), &agenda); err != nil {
		t.Fatalf("expected JSON agenda, got %q: %v", out, err)
	}
	if len(agenda.Slots) != 1 {
		t.Fatalf("expected one slot, got %+v", agenda.Slots)
	}
	got := agenda.Slots[0]
	if got.Label != "9:00" || got.Note != "standup" || len(got.Todos) != 1 || got.Todos[0] != "buy milk" {
		t.Fatalf("unexpected slot %+v", got)
	}

	run(t, "todo", "rm", "5")
	out = run(t, "get", "--json")
	agenda = get.Agenda{}
	if err := json.Unmarshal([]byte(out), &agenda); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(agenda.Slots) != 1 || len(agenda.Slots[0].Todos) != 0 {
		t.Fatalf("expected only the note to remain, got %+v", agenda.Slots)
	}
}

func TestJSONErrors(t *testing.T) {
	color.NoColor = true
	t.Setenv("DAYPLAN_PATH", t.TempDir())
	t.Setenv("DAYPLAN_CONFIG_PATH", t.TempDir())

	out := run(t, "assign", "9", "1:00", "--json")
	var body map[string]string
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("expected JSON error, got %q", out)
	}
	if !strings.Contains(body["error"], "out of range") {
		t.Fatalf("expected out of range error, got %q", body["error"])
	}
}
