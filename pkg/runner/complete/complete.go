// Package complete provides the runner logic for toggling todo completion.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Complete flips the completion flag of a todo item.
type Complete struct {
	// Number is the 1-based position of the item.
	Number  int
	Service *app.Service
	Out     io.Writer
}

// Do executes the toggle for the configured item.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no persistence")
	}
	if _, err := n.Service.ToggleCompletion(ctx, n.Number); err != nil {
		return err
	}
	todos, err := n.Service.Todos(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount("Todo", len(todos), "item")
	pp.Todos(todos...)
	return nil
}
