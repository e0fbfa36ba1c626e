// Package tui hosts the Bubble Tea program for the planner. The model renders
// the todo list and the day schedule side by side and draws the connectors
// computed by the link engine in the gutter between them.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/link"
	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/tui/theme"
)

type pane int

const (
	paneTodos pane = iota
	paneSlots
)

type editKind int

const (
	editNone editKind = iota
	editLabel
	editNote
)

// Model contains UI state.
type Model struct {
	svc    *app.Service
	engine *planner.Engine
	links  *link.Engine
	logger *zap.Logger
	ctx    context.Context

	width, height int

	focus      pane
	todoCursor int
	slotCursor int
	todoTop    int
	slotTop    int

	input   textinput.Model
	editing editKind
	// editTarget is a todo index for editLabel, an hour for editNote.
	editTarget int

	status string
	theme  theme.Theme
}

// New opens the planner through svc and returns a model sized for an 80x24
// terminal until the first WindowSizeMsg arrives.
func New(svc *app.Service, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := context.Background()
	e, err := svc.Open(ctx)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	m := &Model{
		svc:    svc,
		engine: e,
		logger: logger,
		ctx:    ctx,
		width:  80,
		height: 24,
		input:  ti,
		theme:  theme.Default(),
	}
	m.links = link.NewEngine(e.State(), m)
	e.Subscribe(planner.SubscriberFunc(func(_ *planner.State, c planner.Change) {
		m.logger.Debug("state changed", zap.Stringer("change", c))
		m.syncViewport(true)
	}))
	m.syncViewport(true)
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Segments returns the connectors currently drawn.
func (m *Model) Segments() []link.Segment {
	return m.links.Segments()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncViewport(true)
	case tea.KeyPressMsg:
		if m.editing != editNone {
			m.handleEditKey(msg, &cmds)
		} else if m.handleNormalKey(msg, &cmds) {
			return m, tea.Quit
		}
	}
	return m, tea.Batch(cmds...)
}

// handleNormalKey reports true when the program should quit.
func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	st := m.engine.State()
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return true
	case "tab":
		if m.focus == paneTodos {
			m.focus = paneSlots
		} else {
			m.focus = paneTodos
		}
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "g", "home":
		m.move(-m.total())
	case "G", "end":
		m.move(m.total())
	case "enter", "space":
		m.click()
	case "esc":
		m.engine.Disarm()
	case "a":
		entry, err := m.svc.AddTodo(m.ctx, "")
		if m.report(err) {
			break
		}
		if idx, ok := st.Todos().IndexOf(entry.ID); ok {
			m.focus = paneTodos
			m.todoCursor = idx
			m.syncViewport(false)
			m.beginEdit(editLabel, idx, "", cmds)
		}
	case "e":
		if m.focus == paneSlots {
			m.beginNote(cmds)
			break
		}
		if st.Todos().Len() > 0 {
			m.beginEdit(editLabel, m.todoCursor, st.Todos().At(m.todoCursor).Label, cmds)
		}
	case "n":
		m.beginNote(cmds)
	case "x":
		if st.Todos().Len() > 0 {
			_, err := m.svc.ToggleCompletion(m.ctx, m.todoCursor+1)
			m.report(err)
		}
	case "d":
		if m.focus == paneSlots {
			m.unassignLast()
			break
		}
		if st.Todos().Len() > 0 {
			removed, _, err := m.svc.RemoveTodo(m.ctx, m.todoCursor+1)
			if !m.report(err) {
				m.status = fmt.Sprintf("deleted %q", removed.Label)
			}
		}
	case "u":
		m.unassignLast()
	}
	return false
}

func (m *Model) total() int {
	if m.focus == paneTodos {
		return m.engine.State().Todos().Len()
	}
	return m.engine.State().Slots().Len()
}

func (m *Model) move(delta int) {
	if m.focus == paneTodos {
		m.todoCursor += delta
		if m.todoCursor < 0 {
			m.todoCursor = 0
		}
	} else {
		m.slotCursor += delta
		if m.slotCursor < 0 {
			m.slotCursor = 0
		}
	}
	m.syncViewport(false)
}

func (m *Model) click() {
	st := m.engine.State()
	if m.focus == paneTodos {
		if st.Todos().Len() == 0 {
			return
		}
		m.engine.ClickTodo(m.todoCursor)
		return
	}
	if !m.engine.ClickSlot(m.slotCursor) {
		m.status = "pick a todo item first"
		return
	}
	m.report(m.svc.WriteErr())
}

func (m *Model) unassignLast() {
	grid := m.engine.State().Slots()
	if len(grid.At(m.slotCursor)) == 0 {
		m.status = grid.Label(m.slotCursor) + " is empty"
		return
	}
	_, err := m.svc.Unassign(m.ctx, fmt.Sprint(m.slotCursor), 0)
	m.report(err)
}

func (m *Model) beginNote(cmds *[]tea.Cmd) {
	hour := m.engine.State().Slots().Hour(m.slotCursor)
	m.beginEdit(editNote, hour, m.engine.State().Note(hour), cmds)
}

func (m *Model) beginEdit(kind editKind, target int, value string, cmds *[]tea.Cmd) {
	m.editing = kind
	m.editTarget = target
	m.input.SetValue(value)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) endEdit() {
	m.editing = editNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		kind, target := m.editing, m.editTarget
		m.endEdit()
		switch kind {
		case editLabel:
			_, err := m.svc.SetLabel(m.ctx, target+1, value)
			m.report(err)
		case editNote:
			m.report(m.svc.SetNote(m.ctx, target, value))
		}
	case "esc":
		m.endEdit()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

// report shows err in the status line and reports whether there was one.
func (m *Model) report(err error) bool {
	if err == nil {
		return false
	}
	m.logger.Warn("planner operation failed", zap.Error(err))
	m.status = "ERR: " + err.Error()
	return true
}

// Run launches the Bubble Tea UI.
func Run(svc *app.Service, logger *zap.Logger) error {
	m, err := New(svc, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
