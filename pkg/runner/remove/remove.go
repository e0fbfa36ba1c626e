// Package remove provides the runner for deleting todo items.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Remove deletes a todo item together with all of its slot assignments.
type Remove struct {
	Number  int
	Service *app.Service
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no persistence")
	}
	removed, dropped, err := n.Service.RemoveTodo(ctx, n.Number)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp.NewLine()
	_, _ = color.New(color.Faint).Fprintf(out, " removed %q", removed.Label)
	if dropped > 0 {
		_, _ = color.New(color.Faint).Fprintf(out, " and %d assignment(s)", dropped)
	}
	_, _ = fmt.Fprintln(out, "")
	pp.NewLine()

	todos, err := n.Service.Todos(ctx)
	if err != nil {
		return err
	}
	pp.TitleWithCount("Todo", len(todos), "item")
	pp.Todos(todos...)
	return nil
}
