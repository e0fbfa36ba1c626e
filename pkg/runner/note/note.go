// Package note provides the runner for hour notes.
package note

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Note sets the free-text note attached to an hour of the day. An empty Text
// clears it.
type Note struct {
	Hour    int
	Text    string
	Service *app.Service
	Out     io.Writer
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not note, no persistence")
	}
	if err := n.Service.SetNote(ctx, n.Hour, n.Text); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Title("Agenda")
	pp.Agenda(n.Service.Engine().State())
	return nil
}
