package tui

import "tableflip.dev/dayplan/pkg/link"

const (
	headerRows  = 2
	footerRows  = 2
	gutterWidth = 12

	minTodoWidth = 18
	maxTodoWidth = 32
	minSlotWidth = 10
)

func (m *Model) todoWidth() int {
	w := m.width / 3
	if w < minTodoWidth {
		w = minTodoWidth
	}
	if w > maxTodoWidth {
		w = maxTodoWidth
	}
	return w
}

func (m *Model) slotLeft() int {
	return m.todoWidth() + gutterWidth
}

func (m *Model) slotWidth() int {
	w := m.width - m.slotLeft()
	if w < minSlotWidth {
		w = minSlotWidth
	}
	return w
}

func (m *Model) bodyHeight() int {
	h := m.height - headerRows - footerRows
	if h < 1 {
		h = 1
	}
	return h
}

// AnchorRect implements link.Surface. Rects are in screen cells; rows
// scrolled out of their pane have no anchor.
func (m *Model) AnchorRect(kind link.Kind, index int) (link.Rect, bool) {
	st := m.engine.State()
	switch kind {
	case link.KindTask:
		if index < 0 || index >= st.Todos().Len() {
			return link.Rect{}, false
		}
		row := index - m.todoTop
		if row < 0 || row >= m.bodyHeight() {
			return link.Rect{}, false
		}
		return link.Rect{Left: 0, Top: float64(headerRows + row), Width: float64(m.todoWidth()), Height: 1}, true
	case link.KindSlot:
		if index < 0 || index >= st.Slots().Len() {
			return link.Rect{}, false
		}
		row := index - m.slotTop
		if row < 0 || row >= m.bodyHeight() {
			return link.Rect{}, false
		}
		return link.Rect{Left: float64(m.slotLeft()), Top: float64(headerRows + row), Width: float64(m.slotWidth()), Height: 1}, true
	}
	return link.Rect{}, false
}

// ViewportOffset implements link.Surface. Segments come out relative to the
// top-left corner of the body.
func (m *Model) ViewportOffset() link.Point {
	return link.Point{X: 0, Y: headerRows}
}

// scrollTo keeps cursor inside [top, top+height) and reports whether top
// moved.
func scrollTo(top *int, cursor, height, total int) bool {
	prev := *top
	if cursor < *top {
		*top = cursor
	}
	if cursor >= *top+height {
		*top = cursor - height + 1
	}
	if maxTop := total - height; *top > maxTop {
		*top = maxTop
	}
	if *top < 0 {
		*top = 0
	}
	return *top != prev
}

// syncViewport clamps cursors and scroll offsets, and recomputes the
// connectors when either pane scrolled.
func (m *Model) syncViewport(force bool) {
	st := m.engine.State()
	if n := st.Todos().Len(); m.todoCursor >= n {
		m.todoCursor = n - 1
	}
	if m.todoCursor < 0 {
		m.todoCursor = 0
	}
	if n := st.Slots().Len(); m.slotCursor >= n {
		m.slotCursor = n - 1
	}
	h := m.bodyHeight()
	moved := scrollTo(&m.todoTop, m.todoCursor, h, st.Todos().Len())
	if scrollTo(&m.slotTop, m.slotCursor, h, st.Slots().Len()) {
		moved = true
	}
	if moved || force {
		m.links.ViewportChanged()
	}
}
