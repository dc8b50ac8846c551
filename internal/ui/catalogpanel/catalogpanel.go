// Package catalogpanel lists the catalog with Add and Delete controls and a
// thumbnail preview of the highlighted image.
package catalogpanel

import (
	"strings"

	blink "github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/keymap"
	"github.com/llehouerou/montage/internal/ui"
	"github.com/llehouerou/montage/internal/ui/action"
	"github.com/llehouerou/montage/internal/ui/cursor"
	"github.com/llehouerou/montage/internal/ui/thumbnail"
)

// Column ranges of the row controls, relative to the content area.
const (
	addStart = 0
	addEnd   = 5 // "[Add]"
	delStart = 6
	delEnd   = 11 // "[Del]"
	nameCol  = 12

	minListWidth = 30
	wheelStep    = 3
)

// Disabled reports which catalog IDs can no longer be added.
type Disabled interface {
	IsDisabled(id int) bool
}

// Model represents the catalog panel state.
type Model struct {
	ui.Base
	all     []catalog.Item
	items   []catalog.Item // all, narrowed by the filter
	filter  textinput.Model
	editing bool
	sel     Disabled
	keys    *keymap.Resolver
	cursor  cursor.Cursor
	thumbs  *thumbnail.Loader
	preview thumbnail.LoadedMsg
	originX int
	originY int
}

// New creates a catalog panel. thumbs may be nil to disable previews.
func New(items []catalog.Item, sel Disabled, thumbs *thumbnail.Loader) Model {
	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter"
	filter.CharLimit = 64
	filter.Cursor.SetMode(blink.CursorStatic)

	return Model{
		all:    items,
		items:  items,
		filter: filter,
		sel:    sel,
		keys:   keymap.NewContextResolver(keymap.ContextCatalog),
		cursor: cursor.New(ui.ScrollMargin),
		thumbs: thumbs,
	}
}

// Init starts loading the preview of the first item.
func (m *Model) Init() tea.Cmd {
	return m.loadPreview()
}

// SetOrigin records where the panel is drawn on screen, for mouse hit testing.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetSize sets the panel dimensions and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.EnsureVisible(len(m.items), m.listHeight())
}

// Cursor returns the index of the highlighted item.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Filtering reports whether the filter input has the keyboard.
func (m Model) Filtering() bool {
	return m.editing
}

// FilterValue returns the current filter text.
func (m Model) FilterValue() string {
	return m.filter.Value()
}

// Visible returns the items shown after filtering.
func (m Model) Visible() []catalog.Item {
	return m.items
}

// SelectedItem returns the highlighted item, or nil for an empty catalog.
func (m Model) SelectedItem() *catalog.Item {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.cursor.Pos()]
}

// Contains reports whether the screen cell (x, y) is inside the panel.
func (m Model) Contains(x, y int) bool {
	return x >= m.originX && x < m.originX+m.Width() &&
		y >= m.originY && y < m.originY+m.Height()
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}

// previewWidth returns the width of the preview column, or 0 when it is hidden.
func (m Model) previewWidth() int {
	if m.thumbs == nil {
		return 0
	}
	w, _ := m.thumbs.Size()
	if m.InnerWidth() < w+1+minListWidth {
		return 0
	}
	return w
}

// Update handles messages for the catalog panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		if m.editing {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case thumbnail.LoadedMsg:
		if m.thumbs == nil || !m.thumbs.Fits(msg) {
			return m, nil
		}
		if it := m.SelectedItem(); it != nil && it.Image == msg.Path {
			m.preview = msg
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	act := m.keys.Resolve(msg.String())
	if act == keymap.ActionFilter {
		m.editing = true
		return m, m.filter.Focus()
	}

	n := len(m.items)
	if n == 0 {
		return m, nil
	}
	h := m.listHeight()

	switch act {
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, h)
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, h)
	case keymap.ActionTop:
		m.cursor.JumpStart()
	case keymap.ActionBottom:
		m.cursor.JumpEnd(n, h)
	case keymap.ActionAdd:
		// Disabled items still go through; the app explains why nothing happened.
		return m, requestCmd(AddRequested{Item: *m.SelectedItem()})
	case keymap.ActionDelete:
		return m, requestCmd(DeleteRequested{Item: *m.SelectedItem()})
	default:
		return m, nil
	}
	return m, m.loadPreview()
}

// handleFilterKey edits the filter. Enter keeps it, Esc clears it.
func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.filter.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, m.loadPreview()
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, tea.Batch(cmd, m.loadPreview())
}

// applyFilter narrows the list to names containing the filter text, ignoring case.
func (m *Model) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		m.items = m.all
	} else {
		m.items = make([]catalog.Item, 0, len(m.all))
		for _, it := range m.all {
			if strings.Contains(strings.ToLower(it.Name()), q) {
				m.items = append(m.items, it)
			}
		}
	}
	m.cursor.ClampToBounds(len(m.items))
	m.cursor.EnsureVisible(len(m.items), m.listHeight())
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.Contains(msg.X, msg.Y) || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	n := len(m.items)
	h := m.listHeight()

	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.cursor.Move(wheelStep, n, h)
		return m, m.loadPreview()
	case tea.MouseButtonWheelUp:
		m.cursor.Move(-wheelStep, n, h)
		return m, m.loadPreview()
	}
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	cx := msg.X - m.originX - 1
	cy := msg.Y - m.originY - 1 - ui.HeaderHeight
	if cy < 0 || cy >= h {
		return m, nil
	}
	idx := m.cursor.Offset() + cy
	if idx >= n {
		return m, nil
	}

	m.cursor.Jump(idx, n, h)
	preview := m.loadPreview()
	item := m.items[idx]

	switch {
	case cx >= addStart && cx < addEnd:
		if m.sel.IsDisabled(item.ID) {
			return m, preview
		}
		return m, tea.Batch(preview, requestCmd(AddRequested{Item: item}))
	case cx >= delStart && cx < delEnd:
		return m, tea.Batch(preview, requestCmd(DeleteRequested{Item: item}))
	}
	return m, preview
}

// loadPreview points the preview at the highlighted item and returns the
// command that renders it, if it is not cached yet.
func (m *Model) loadPreview() tea.Cmd {
	it := m.SelectedItem()
	if it == nil || m.thumbs == nil {
		return nil
	}
	if m.preview.Path == it.Image {
		return nil
	}
	if cached, ok := m.thumbs.Cached(it.Image); ok {
		m.preview = cached
		return nil
	}
	m.preview = thumbnail.LoadedMsg{Path: it.Image}
	return m.thumbs.Load(it.Image)
}

func requestCmd(a action.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg(a) }
}
