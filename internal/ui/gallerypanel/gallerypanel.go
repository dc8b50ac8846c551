// Package gallerypanel renders the selected images as tiles that can be
// reordered by dragging with the mouse or with keys.
package gallerypanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/dnd"
	"github.com/llehouerou/montage/internal/keymap"
	"github.com/llehouerou/montage/internal/ui"
	"github.com/llehouerou/montage/internal/ui/thumbnail"
)

// Selection is the ordered list the panel displays and edits.
type Selection interface {
	Selected() []catalog.Item
	Len() int
	Reorder(from, to int) error
	Remove(item catalog.Item)
}

// Model represents the gallery panel state.
type Model struct {
	ui.Base
	sel     Selection
	keys    *keymap.Resolver
	session dnd.Session
	thumbs  *thumbnail.Loader
	cursor  int
	scroll  int // first visible content line
	originX int // screen column of the panel's top-left corner
	originY int // screen row of the panel's top-left corner
}

// New creates a gallery panel over sel.
func New(sel Selection) Model {
	return Model{
		sel:  sel,
		keys: keymap.NewContextResolver(keymap.ContextGallery),
	}
}

// SetThumbnails enables pictures in full-width tiles. l should render
// ui.TileThumbWidth x ui.TileThumbHeight boxes; nil disables them.
func (m *Model) SetThumbnails(l *thumbnail.Loader) {
	m.thumbs = l
}

// LoadThumbnails returns a command loading the pictures of every selected
// item that is not cached yet.
func (m Model) LoadThumbnails() tea.Cmd {
	if m.thumbs == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, it := range m.sel.Selected() {
		if cmd := m.thumbs.Load(it.Image); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// SetOrigin records where the panel is drawn on screen, for mouse hit testing.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Cursor returns the index of the highlighted tile.
func (m Model) Cursor() int {
	return m.cursor
}

// Dragging reports whether a drag gesture is in progress.
func (m Model) Dragging() bool {
	return m.session.Active()
}

// CancelDrag ends the drag gesture, if any, without moving anything.
func (m *Model) CancelDrag() {
	m.session.End()
}

// Contains reports whether the screen cell (x, y) is inside the panel.
func (m Model) Contains(x, y int) bool {
	r := dnd.Rect{X: m.originX, Y: m.originY, Width: m.Width(), Height: m.Height()}
	return r.Contains(x, y)
}

func (m Model) contentWidth() int {
	return m.InnerWidth()
}

func (m Model) viewHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}

func (m Model) rects() []dnd.Rect {
	return Layout(m.sel.Len(), m.contentWidth())
}

// toContent converts screen coordinates to content coordinates, scroll included.
func (m Model) toContent(x, y int) (cx, cy int) {
	return x - m.originX - 1, y - m.originY - 1 - ui.HeaderHeight + m.scroll
}

// Update handles messages for the gallery panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// The dragged index would go stale once keys edit the list.
	m.session.End()

	n := m.sel.Len()
	if n == 0 {
		return m, nil
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionMoveDown:
		m.setCursor(m.cursor + 1)
	case keymap.ActionMoveUp:
		m.setCursor(m.cursor - 1)
	case keymap.ActionTop:
		m.setCursor(0)
	case keymap.ActionBottom:
		m.setCursor(n - 1)
	case keymap.ActionMoveItemDown:
		if m.cursor < n-1 {
			return m.reorder(m.cursor, m.cursor+1)
		}
	case keymap.ActionMoveItemUp:
		if m.cursor > 0 {
			return m.reorder(m.cursor, m.cursor-1)
		}
	case keymap.ActionDelete:
		item := m.sel.Selected()[m.cursor]
		m.sel.Remove(item)
		m.ClampCursor()
		return m, func() tea.Msg { return ActionMsg(Removed{Item: item}) }
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	cx, cy := m.toContent(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionRelease:
		m.session.End()
		return m, nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !m.Contains(msg.X, msg.Y) {
			return m, nil
		}
		if idx := HitTest(m.rects(), cx, cy); idx >= 0 {
			m.cursor = idx
			m.session.Begin(idx)
		}
		return m, nil

	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		if !m.session.Active() {
			return m, nil
		}
		rects := m.rects()
		idx := HitTest(rects, cx, cy)
		if idx < 0 {
			return m, nil
		}
		from, to, ok := m.session.Hover(idx, cy, rects[idx])
		if !ok {
			return m, nil
		}
		return m.reorder(from, to)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		if m.Contains(msg.X, msg.Y) {
			m.scrollBy(ui.TileHeight)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		if m.Contains(msg.X, msg.Y) {
			m.scrollBy(-ui.TileHeight)
		}
	}
	return m, nil
}

// reorder applies a move and keeps the cursor on the moved tile.
func (m Model) reorder(from, to int) (Model, tea.Cmd) {
	if err := m.sel.Reorder(from, to); err != nil {
		m.session.End()
		return m, func() tea.Msg { return ActionMsg(ReorderFailed{Err: err}) }
	}
	m.setCursor(to)
	return m, func() tea.Msg { return ActionMsg(Reordered{From: from, To: to}) }
}

func (m *Model) setCursor(idx int) {
	n := m.sel.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = max(0, min(idx, n-1))
	m.ensureVisible()
}

// ClampCursor keeps the cursor and scroll valid after the selection changed elsewhere.
func (m *Model) ClampCursor() {
	m.setCursor(m.cursor)
	m.scrollBy(0)
}

func (m *Model) ensureVisible() {
	rects := m.rects()
	if m.cursor >= len(rects) {
		return
	}
	r := rects[m.cursor]
	viewH := m.viewHeight()
	if r.Y < m.scroll {
		m.scroll = r.Y
	}
	if r.Y+r.Height > m.scroll+viewH {
		m.scroll = r.Y + r.Height - viewH
	}
	m.scrollBy(0)
}

func (m *Model) scrollBy(delta int) {
	maxScroll := max(ContentHeight(m.rects())-m.viewHeight(), 0)
	m.scroll = max(0, min(m.scroll+delta, maxScroll))
}
