package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/todo"
)

type PrettyPrint struct {
	ShowID bool
	// AllSlots prints empty slots too.
	AllSlots bool
	Out      io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Todos prints the registry with 1-based numbers, the form CLI commands take.
func (pp *PrettyPrint) Todos(entries ...todo.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, e := range entries {
		mark := "☐"
		label := e.Label
		if e.Completed {
			mark = "☑"
			label = done.Sprint(label)
		}
		if label == "" {
			label = color.New(color.Faint, color.Italic).Sprint("(empty)")
		}
		if pp.ShowID {
			tbl.AddRow(fmt.Sprintf("%d.", i+1), mark, label, y.Sprint(e.ID))
		} else {
			tbl.AddRow(fmt.Sprintf("%d.", i+1), mark, label)
		}
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Agenda prints every slot that has assignments (or all slots when AllSlots
// is set) with the hour note on the first slot of each hour.
func (pp *PrettyPrint) Agenda(st *planner.State) {
	grid := st.Slots()
	bold := color.New(color.Bold)
	faint := color.New(color.Faint, color.Italic)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	rows := 0
	for s := 0; s < grid.Len(); s++ {
		seq := grid.At(s)
		note := ""
		if s*grid.Granularity().Minutes()%60 == 0 {
			note = st.Note(grid.Hour(s))
		}
		if len(seq) == 0 && note == "" && !pp.AllSlots {
			continue
		}
		labels := make([]string, 0, len(seq))
		for _, id := range seq {
			label, _ := st.LabelOf(id)
			labels = append(labels, label)
		}
		assigned := strings.Join(labels, ", ")
		if note != "" {
			if assigned != "" {
				assigned += "  "
			}
			assigned += faint.Sprint(note)
		}
		tbl.AddRow(bold.Sprint(grid.Label(s)), assigned)
		rows++
	}
	if rows == 0 {
		_, _ = faint.Fprint(pp.out(), " nothing scheduled\n\n")
		return
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
