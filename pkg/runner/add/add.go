// Package add provides the runner for adding todo items.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Add appends a todo item and reprints the list.
type Add struct {
	Label   string
	ShowID  bool
	Service *app.Service
	Out     io.Writer
}

// Do adds the item.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no persistence")
	}
	if _, err := n.Service.AddTodo(ctx, n.Label); err != nil {
		return err
	}
	todos, err := n.Service.Todos(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount("Todo", len(todos), "item")
	pp.Todos(todos...)
	return nil
}
