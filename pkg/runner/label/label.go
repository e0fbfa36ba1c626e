// Package label provides the runner for renaming todo items.
package label

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Label replaces the text of a todo item. Slots that reference the item show
// the new text without being touched.
type Label struct {
	Number  int
	Label   string
	Service *app.Service
	Out     io.Writer
}

func (n *Label) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not label, no persistence")
	}
	if _, err := n.Service.SetLabel(ctx, n.Number, n.Label); err != nil {
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
