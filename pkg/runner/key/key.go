// Package key provides CLI helpers to display the planner legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/tui"
)

type glyph struct {
	Symbol  string
	Meaning string
}

var glyphs = []glyph{
	{"☐", "open todo item"},
	{"☑", "completed todo item"},
	{"─ ╲ ╱", "connector from a todo item to a slot"},
	{"┼", "connectors crossing"},
	{"▸", "armed todo item, its connectors are highlighted"},
}

// Key prints the glyph legend and the terminal UI key bindings.
type Key struct {
	Out io.Writer
}

// Do renders both tables.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(out, "")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Meaning"))
	for _, g := range glyphs {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
	for _, b := range tui.Bindings {
		tbl.AddRow(b.Keys, b.Help)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
