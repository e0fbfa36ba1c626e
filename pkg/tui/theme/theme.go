package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header  HeaderTheme
	Planner PlannerTheme
	Footer  FooterTheme
}

// HeaderTheme styles the title row and the pane headings.
type HeaderTheme struct {
	Title   lipgloss.Style
	Detail  lipgloss.Style
	Armed   lipgloss.Style
	Heading lipgloss.Style
}

// PlannerTheme styles the todo rows, the gutter and the slot rows.
type PlannerTheme struct {
	Cursor   lipgloss.Style
	Armed    lipgloss.Style
	Done     lipgloss.Style
	SlotTime lipgloss.Style
	Note     lipgloss.Style
	Link     lipgloss.Style
	// Hot marks connectors of the armed todo item.
	Hot lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and input rows.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Prompt lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	armed := lipgloss.NewStyle().Foreground(accent).Bold(true)

	return Theme{
		Header: HeaderTheme{
			Title:   lipgloss.NewStyle().Bold(true),
			Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Armed:   armed,
			Heading: lipgloss.NewStyle().Bold(true).Underline(true),
		},
		Planner: PlannerTheme{
			Cursor:   lipgloss.NewStyle().Reverse(true),
			Armed:    armed,
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			SlotTime: lipgloss.NewStyle().Bold(true),
			Note:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Hot:      armed,
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Prompt: lipgloss.NewStyle().Foreground(accent),
		},
	}
}
