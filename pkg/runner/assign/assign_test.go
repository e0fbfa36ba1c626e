package assign

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/store/storetest"
)

func init() {
	color.NoColor = true
}

func TestAssignThenUnassign(t *testing.T) {
	mem := &storetest.Memory{}
	svc := &app.Service{Persistence: mem}
	ctx := context.Background()

	var buf bytes.Buffer
	a := Assign{Number: 3, Slot: "14:30", Service: svc, Out: &buf}
	if err := a.Do(ctx); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if !strings.Contains(buf.String(), "14:30") || !strings.Contains(buf.String(), "Task 3") {
		t.Fatalf("expected agenda row, got:\n%s", buf.String())
	}
	if mem.Saves() == 0 {
		t.Fatalf("expected assignment to be saved")
	}

	buf.Reset()
	u := Unassign{Slot: "29", Service: svc, Out: &buf}
	if err := u.Do(ctx); err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if !strings.Contains(buf.String(), `unassigned "Task 3"`) {
		t.Fatalf("expected confirmation, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "nothing scheduled") {
		t.Fatalf("expected empty agenda, got:\n%s", buf.String())
	}
}

func TestUnassignEmptySlot(t *testing.T) {
	svc := &app.Service{Persistence: &storetest.Memory{}}
	u := Unassign{Slot: "7:00", Service: svc, Out: &bytes.Buffer{}}
	if err := u.Do(context.Background()); !errors.Is(err, app.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
