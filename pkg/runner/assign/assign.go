// Package assign provides runners that place todo items into slots and take
// them out again.
package assign

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Assign schedules a todo item into a slot.
type Assign struct {
	Number  int
	Slot    string
	Service *app.Service
	Out     io.Writer
}

// Do arms the item and clicks the slot, then prints the agenda.
func (n *Assign) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not assign, no persistence")
	}
	if _, err := n.Service.Assign(ctx, n.Number, n.Slot); err != nil {
		return err
	}
	return printAgenda(n.Service, n.Out)
}

// Unassign removes one assignment from a slot.
type Unassign struct {
	Slot string
	// Position is 1-based; zero means the most recent assignment.
	Position int
	Service  *app.Service
	Out      io.Writer
}

func (n *Unassign) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not unassign, no persistence")
	}
	id, err := n.Service.Unassign(ctx, n.Slot, n.Position)
	if err != nil {
		return err
	}
	if e := n.Service.Engine(); e != nil {
		if label, ok := e.State().LabelOf(id); ok {
			out := n.Out
			if out == nil {
				out = color.Output
			}
			_, _ = color.New(color.Faint).Fprintf(out, "\n unassigned %q from %s\n", label, n.Slot)
		}
	}
	return printAgenda(n.Service, n.Out)
}

func printAgenda(svc *app.Service, out io.Writer) error {
	e := svc.Engine()
	if e == nil {
		return fmt.Errorf("assign: planner not open")
	}
	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Title("Agenda")
	pp.Agenda(e.State())
	return nil
}
