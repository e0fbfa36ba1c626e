package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/dayplan/pkg/link"
	"tableflip.dev/dayplan/pkg/todo"
)

// fit truncates s to width cells and pads it with spaces.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate.StringWithTail(s, uint(width), "…")
	if pad := width - ansi.PrintableRuneWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, m.height)
	lines = append(lines, m.headerLines()...)

	h := m.bodyHeight()
	gutter := link.Raster{Left: m.todoWidth(), Width: gutterWidth, Height: h}.Draw(m.links.Segments(), m.isHot)
	for row := 0; row < h; row++ {
		var b strings.Builder
		b.WriteString(m.todoRow(m.todoTop + row))
		b.WriteString(m.gutterRow(gutter, row))
		b.WriteString(m.slotRow(m.slotTop + row))
		lines = append(lines, b.String())
	}

	lines = append(lines, m.footerLines()...)
	return strings.Join(lines, "\n")
}

func (m *Model) isHot(seg link.Segment) bool {
	armed, ok := m.engine.State().Armed()
	return ok && armed == seg.Task
}

func (m *Model) headerLines() []string {
	st := m.engine.State()
	title := m.theme.Header.Title.Render("dayplan") + m.theme.Header.Detail.Render(" · "+st.Slots().Granularity().String())
	if id, ok := st.Armed(); ok {
		label, _ := st.LabelOf(id)
		title += m.theme.Header.Armed.Render(fmt.Sprintf(" · placing %q, pick a slot", label))
	}
	todoHead, slotHead := "Todo", "Schedule"
	if m.focus == paneTodos {
		todoHead += " ◂"
	} else {
		slotHead += " ◂"
	}
	pad := m.todoWidth() + gutterWidth - ansi.PrintableRuneWidth(todoHead)
	return []string{
		title,
		m.theme.Header.Heading.Render(todoHead) + strings.Repeat(" ", pad) + m.theme.Header.Heading.Render(slotHead),
	}
}

func (m *Model) todoRow(i int) string {
	w := m.todoWidth()
	st := m.engine.State()
	if i < 0 || i >= st.Todos().Len() {
		return strings.Repeat(" ", w)
	}
	e := st.Todos().At(i)
	armed, isArmed := st.Armed()
	isArmed = isArmed && armed == e.ID

	lead := "  "
	if isArmed {
		lead = "▸ "
	}
	box := "☐ "
	if e.Completed {
		box = "☑ "
	}
	text := fit(lead+box+labelOrEmpty(e), w-1) + " "

	style := lipgloss.NewStyle()
	switch {
	case isArmed:
		style = m.theme.Planner.Armed
	case e.Completed:
		style = m.theme.Planner.Done
	}
	if m.focus == paneTodos && i == m.todoCursor {
		style = style.Inherit(m.theme.Planner.Cursor)
	}
	return style.Render(text)
}

func labelOrEmpty(e todo.Entry) string {
	if e.Label == "" {
		return "(empty)"
	}
	return e.Label
}

func (m *Model) gutterRow(gutter [][]link.Cell, row int) string {
	if row >= len(gutter) {
		return strings.Repeat(" ", gutterWidth)
	}
	var b strings.Builder
	for _, c := range gutter[row] {
		switch {
		case c.Rune == ' ':
			b.WriteRune(' ')
		case c.Hot:
			b.WriteString(m.theme.Planner.Hot.Render(string(c.Rune)))
		default:
			b.WriteString(m.theme.Planner.Link.Render(string(c.Rune)))
		}
	}
	return b.String()
}

func (m *Model) slotRow(s int) string {
	st := m.engine.State()
	grid := st.Slots()
	if s < 0 || s >= grid.Len() {
		return ""
	}
	label := fmt.Sprintf("%5s ", grid.Label(s))
	if m.focus == paneSlots && s == m.slotCursor {
		label = m.theme.Planner.Cursor.Render(label)
	} else {
		label = m.theme.Planner.SlotTime.Render(label)
	}

	names := make([]string, 0, len(grid.At(s)))
	for _, id := range grid.At(s) {
		name, _ := st.LabelOf(id)
		names = append(names, name)
	}
	rest := strings.Join(names, ", ")
	note := ""
	if s*grid.Granularity().Minutes()%60 == 0 {
		note = st.Note(grid.Hour(s))
	}

	room := m.slotWidth() - 6
	if room <= 0 {
		return label
	}
	rest = truncate.StringWithTail(rest, uint(room), "…")
	if note != "" && ansi.PrintableRuneWidth(rest)+3 < room {
		if rest != "" {
			rest += "  "
		}
		rest += m.theme.Planner.Note.Render(truncate.StringWithTail(note, uint(room-ansi.PrintableRuneWidth(rest)), "…"))
	}
	return label + rest
}

func (m *Model) footerLines() []string {
	if m.editing != editNone {
		prompt := "label: "
		if m.editing == editNote {
			prompt = fmt.Sprintf("note for %d:00: ", m.editTarget)
		}
		return []string{
			m.theme.Footer.Prompt.Render(prompt) + m.input.View(),
			m.theme.Footer.Help.Render(truncate.StringWithTail("enter save · esc cancel", uint(m.width), "…")),
		}
	}
	status := m.status
	if status == "" {
		if skipped := m.links.Skipped(); skipped > 0 {
			status = fmt.Sprintf("%d connector(s) off screen", skipped)
		}
	}
	return []string{
		m.theme.Footer.Status.Render(truncate.StringWithTail(status, uint(m.width), "…")),
		m.theme.Footer.Help.Render(truncate.StringWithTail(shortHelp, uint(m.width), "…")),
	}
}
