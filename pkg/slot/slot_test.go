package slot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/dayplan/pkg/todo"
)

func TestNewGridSizes(t *testing.T) {
	if got := New(Hourly).Len(); got != 24 {
		t.Fatalf("expected 24 hourly slots, got %d", got)
	}
	if got := New(HalfHourly).Len(); got != 48 {
		t.Fatalf("expected 48 half-hour slots, got %d", got)
	}
}

func TestAssignKeepsInsertionOrderAndDuplicates(t *testing.T) {
	g := New(HalfHourly)
	g.Assign(5, "a")
	g.Assign(5, "b")
	g.Assign(5, "a")

	want := []todo.ID{"a", "b", "a"}
	if diff := cmp.Diff(want, g.At(5)); diff != "" {
		t.Fatalf("slot 5 mismatch (-want +got):\n%s", diff)
	}
	if g.Assigned() != 3 {
		t.Fatalf("expected 3 assignments, got %d", g.Assigned())
	}
}

func TestUnassignRemovesPosition(t *testing.T) {
	g := New(Hourly)
	g.Assign(0, "a")
	g.Assign(0, "b")
	g.Assign(0, "c")

	if got := g.Unassign(0, 1); got != "b" {
		t.Fatalf("expected to remove b, got %q", got)
	}
	if diff := cmp.Diff([]todo.ID{"a", "c"}, g.At(0)); diff != "" {
		t.Fatalf("slot 0 mismatch (-want +got):\n%s", diff)
	}
}

func TestPurgeRemovesEveryOccurrence(t *testing.T) {
	g := New(HalfHourly)
	g.Assign(0, "a")
	g.Assign(1, "a")
	g.Assign(1, "b")
	g.Assign(1, "a")

	if n := g.Purge("a"); n != 3 {
		t.Fatalf("expected 3 purged, got %d", n)
	}
	for s := 0; s < g.Len(); s++ {
		for _, id := range g.At(s) {
			if id == "a" {
				t.Fatalf("slot %d still references purged id", s)
			}
		}
	}
	if diff := cmp.Diff([]todo.ID{"b"}, g.At(1)); diff != "" {
		t.Fatalf("slot 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestAtReturnsCopy(t *testing.T) {
	g := New(Hourly)
	g.Assign(3, "a")
	seq := g.At(3)
	seq[0] = "mutated"
	if g.At(3)[0] != "a" {
		t.Fatalf("grid mutated through At copy")
	}
}

func TestLabelsAndHours(t *testing.T) {
	half := New(HalfHourly)
	if got := half.Label(19); got != "9:30" {
		t.Fatalf("expected 9:30, got %q", got)
	}
	if got := half.Hour(19); got != 9 {
		t.Fatalf("expected hour 9, got %d", got)
	}
	hourly := New(Hourly)
	if got := hourly.Label(23); got != "23:00" {
		t.Fatalf("expected 23:00, got %q", got)
	}
}

func TestParse(t *testing.T) {
	g := New(HalfHourly)
	cases := map[string]int{"0": 0, "19": 19, "9:30": 19, "0:00": 0, "23:30": 47}
	for in, want := range cases {
		got, err := g.Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %d, got %d", in, want, got)
		}
	}
	for _, bad := range []string{"48", "-1", "9:15", "24:00", "x", "9:3"} {
		if _, err := g.Parse(bad); !errors.Is(err, ErrInvalidLabel) {
			t.Fatalf("parse %q: expected ErrInvalidLabel, got %v", bad, err)
		}
	}
	if _, err := New(Hourly).Parse("9:30"); err == nil {
		t.Fatalf("expected half-hour label to be rejected by hourly grid")
	}
}

func TestParseGranularity(t *testing.T) {
	if g, err := ParseGranularity("hour"); err != nil || g != Hourly {
		t.Fatalf("expected hourly, got %v (%v)", g, err)
	}
	if g, err := ParseGranularity(""); err != nil || g != HalfHourly {
		t.Fatalf("expected half-hour default, got %v (%v)", g, err)
	}
	if _, err := ParseGranularity("weekly"); err == nil {
		t.Fatalf("expected error for unknown granularity")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	cases := map[string]func(g *Grid){
		"assign":            func(g *Grid) { g.Assign(24, "a") },
		"unassign slot":     func(g *Grid) { g.Unassign(-1, 0) },
		"unassign position": func(g *Grid) { g.Unassign(0, 0) },
		"at":                func(g *Grid) { g.At(99) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn(New(Hourly))
		})
	}
}
