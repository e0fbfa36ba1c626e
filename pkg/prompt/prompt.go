// Package prompt asks for command arguments interactively when they were not
// given on the command line.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/todo"
)

// Prompter reads answers from In and draws on Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func (p Prompter) stdin() io.ReadCloser {
	if p.In == nil {
		return nil
	}
	return io.NopCloser(p.In)
}

func (p Prompter) stdout() io.WriteCloser {
	if p.Out == nil {
		return nil
	}
	return nopWriteCloser{p.Out}
}

// todoItem is what the todo picker renders.
type todoItem struct {
	Number int
	Mark   string
	Label  string
}

func todoItems(entries []todo.Entry) []todoItem {
	items := make([]todoItem, 0, len(entries))
	for i, e := range entries {
		mark := "☐"
		if e.Completed {
			mark = "☑"
		}
		items = append(items, todoItem{Number: i + 1, Mark: mark, Label: e.Label})
	}
	return items
}

// slotItem is what the slot picker renders.
type slotItem struct {
	Index    int
	Label    string
	Assigned string
}

func slotItems(st *planner.State) []slotItem {
	grid := st.Slots()
	items := make([]slotItem, 0, grid.Len())
	for s := 0; s < grid.Len(); s++ {
		names := make([]string, 0, len(grid.At(s)))
		for _, id := range grid.At(s) {
			name, _ := st.LabelOf(id)
			names = append(names, name)
		}
		items = append(items, slotItem{Index: s, Label: grid.Label(s), Assigned: strings.Join(names, ", ")})
	}
	return items
}

// contains is the searcher shared by both pickers: case and space
// insensitive substring match.
func contains(text, input string) bool {
	norm := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), " ", "")
	}
	return strings.Contains(norm(text), norm(input))
}

// Todo asks for a todo item and returns its 1-based number.
func (p Prompter) Todo(entries []todo.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, errors.New("prompt: no todo items")
	}
	items := todoItems(entries)
	sel := promptui.Select{
		HideHelp: true,
		Label:    "Todo item",
		Items:    items,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}?",
			Active:   "➜ {{ .Number }}. {{ .Mark }} {{ .Label | bold }}",
			Inactive: "  {{ .Number }}. {{ .Mark }} {{ .Label }}",
			Selected: "{{ .Label | bold }}",
		},
		Size: 10,
		Searcher: func(input string, index int) bool {
			return contains(items[index].Label, input)
		},
		Stdin:  p.stdin(),
		Stdout: p.stdout(),
	}
	i, _, err := sel.Run()
	if err != nil {
		return 0, fmt.Errorf("prompt: %w", err)
	}
	return items[i].Number, nil
}

// Slot asks for a slot and returns its label, e.g. "9:30".
func (p Prompter) Slot(st *planner.State) (string, error) {
	items := slotItems(st)
	grid := st.Slots()
	sel := promptui.Select{
		HideHelp: true,
		Label:    "Slot",
		Items:    items,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}?",
			Active:   "➜ {{ .Label | bold }} {{ .Assigned | cyan }}",
			Inactive: "  {{ .Label }} {{ .Assigned | faint }}",
			Selected: "{{ .Label | bold }}",
		},
		Size: 12,
		// Start near the working day.
		CursorPos: grid.Len() * 8 / slot.HoursPerDay,
		Searcher: func(input string, index int) bool {
			return contains(items[index].Label+" "+items[index].Assigned, input)
		},
		Stdin:  p.stdin(),
		Stdout: p.stdout(),
	}
	i, _, err := sel.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return items[i].Label, nil
}

// Text asks for a line of free text.
func (p Prompter) Text(label string) (string, error) {
	in := promptui.Prompt{
		Label: label,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }}: ",
			Valid:   "{{ . | green }}: ",
			Invalid: "{{ . | red }}: ",
			Success: "{{ . | bold }}: ",
		},
		Stdin:  p.stdin(),
		Stdout: p.stdout(),
	}
	out, err := in.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return out, nil
}
