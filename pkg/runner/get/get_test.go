package get

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/store/storetest"
)

func init() {
	color.NoColor = true
}

func TestGetJSON(t *testing.T) {
	svc := &app.Service{Persistence: &storetest.Memory{}, Granularity: slot.Hourly}
	ctx := context.Background()
	if _, err := svc.Assign(ctx, 2, "9:00"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := svc.SetNote(ctx, 9, "standup"); err != nil {
		t.Fatalf("note: %v", err)
	}

	var buf bytes.Buffer
	g := Get{JSON: true, Service: svc, Out: &buf}
	if err := g.Do(ctx); err != nil {
		t.Fatalf("get: %v", err)
	}

	var got Agenda
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if got.Granularity != "hour" {
		t.Fatalf("expected hour granularity, got %q", got.Granularity)
	}
	want := []SlotView{{Index: 9, Label: "9:00", Todos: []string{"Task 2"}, Note: "standup"}}
	if diff := cmp.Diff(want, got.Slots); diff != "" {
		t.Fatalf("slots mismatch (-want +got):\n%s", diff)
	}
	if len(got.Todos) != 4 {
		t.Fatalf("expected 4 todos, got %d", len(got.Todos))
	}
}

func TestBuildAgendaAll(t *testing.T) {
	svc := &app.Service{Persistence: &storetest.Memory{}}
	e, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	a := BuildAgenda(e.State(), true)
	if len(a.Slots) != 48 {
		t.Fatalf("expected 48 slots, got %d", len(a.Slots))
	}
	if a.Slots[19].Label != "9:30" {
		t.Fatalf("expected 9:30, got %q", a.Slots[19].Label)
	}
	if a := BuildAgenda(e.State(), false); len(a.Slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(a.Slots))
	}
}

func TestListPretty(t *testing.T) {
	svc := &app.Service{Persistence: &storetest.Memory{}}
	var buf bytes.Buffer
	l := List{Service: svc, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(buf.String(), "Todo - 4 items") {
		t.Fatalf("expected title with count, got:\n%s", buf.String())
	}
}
