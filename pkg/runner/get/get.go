// Package get provides the runners that print the planner.
package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/todo"
)

// Get prints the todo list followed by the day agenda.
type Get struct {
	ShowID   bool
	AllSlots bool
	JSON     bool
	Service  *app.Service
	Out      io.Writer
}

// Agenda is the JSON shape of `dayplan get --json`.
type Agenda struct {
	Granularity string       `json:"granularity"`
	Todos       []todo.Entry `json:"todos"`
	Slots       []SlotView   `json:"slots"`
}

// SlotView is one slot of the agenda.
type SlotView struct {
	Index int      `json:"index"`
	Label string   `json:"label"`
	Todos []string `json:"todos"`
	Note  string   `json:"note,omitempty"`
}

func (n *Get) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no persistence")
	}
	e, err := n.Service.Open(ctx)
	if err != nil {
		return err
	}
	st := e.State()

	if n.JSON {
		b, err := json.MarshalIndent(BuildAgenda(st, n.AllSlots), "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(n.out(), string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, AllSlots: n.AllSlots, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount("Todo", st.Todos().Len(), "item")
	pp.Todos(st.Todos().Entries()...)
	pp.Title("Agenda")
	pp.Agenda(st)
	return nil
}

// BuildAgenda flattens st into its JSON view. Slots without assignments or a
// note are left out unless all is set.
func BuildAgenda(st *planner.State, all bool) Agenda {
	grid := st.Slots()
	a := Agenda{
		Granularity: grid.Granularity().String(),
		Todos:       st.Todos().Entries(),
		Slots:       []SlotView{},
	}
	for s := 0; s < grid.Len(); s++ {
		v := SlotView{Index: s, Label: grid.Label(s), Todos: []string{}}
		if s*grid.Granularity().Minutes()%60 == 0 {
			v.Note = st.Note(grid.Hour(s))
		}
		for _, id := range grid.At(s) {
			label, _ := st.LabelOf(id)
			v.Todos = append(v.Todos, label)
		}
		if !all && len(v.Todos) == 0 && v.Note == "" {
			continue
		}
		a.Slots = append(a.Slots, v)
	}
	return a
}

// List prints only the todo items.
type List struct {
	ShowID  bool
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no persistence")
	}
	todos, err := n.Service.Todos(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		b, err := json.MarshalIndent(todos, "", "  ")
		if err != nil {
			return err
		}
		out := n.Out
		if out == nil {
			out = color.Output
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount("Todo", len(todos), "item")
	pp.Todos(todos...)
	return nil
}
