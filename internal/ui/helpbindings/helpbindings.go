// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/montage/internal/keymap"
	"github.com/llehouerou/montage/internal/ui"
	"github.com/llehouerou/montage/internal/ui/popup"
	"github.com/llehouerou/montage/internal/ui/render"
	"github.com/llehouerou/montage/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextCatalog,
	keymap.ContextGallery,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal:  "Global",
	keymap.ContextCatalog: "Catalog",
	keymap.ContextGallery: "Gallery",
}

// mouseHelp documents the pointer gestures, which have no key binding.
var mouseHelp = []keymap.Binding{
	{Keys: []string{"click [Add]"}, Description: "Add image"},
	{Keys: []string{"click [Del]"}, Description: "Remove image"},
	{Keys: []string{"drag tile"}, Description: "Reorder selection"},
}

// chromeHeight is the popup overhead: title, footer, blank lines, border and padding.
const chromeHeight = 10

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New creates a new help model.
func New() Model {
	return Model{}
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	var bindings []keymap.Binding
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			bindings = append(bindings, keymap.ByContext(ctx)...)
		}
	}
	m.lines = buildLines(bindings)
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	start := min(m.scrollOffset, len(m.lines))
	end := min(start+m.visibleHeight(), len(m.lines))

	maxWidth := 0
	for _, line := range m.lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	visible := make([]string, 0, end-start)
	for _, line := range m.lines[start:end] {
		visible = append(visible, line+strings.Repeat(" ", maxWidth-lipgloss.Width(line)))
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return b.String()
}

func buildLines(bindings []keymap.Binding) []string {
	s := styles.T().S()
	keyStyle := s.Accent
	headerStyle := s.Warning.Bold(true)

	keyWidth := 0
	for _, b := range slices.Concat(bindings, mouseHelp) {
		keyWidth = max(keyWidth, len(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	section := func(label string) {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, headerStyle.Render(label), s.Subtle.Render(render.Separator(keyWidth+16)))
	}
	entry := func(b keymap.Binding) {
		keys := strings.Join(b.Keys, ", ")
		lines = append(lines, keyStyle.Render(render.Pad(keys, keyWidth))+"  "+s.Base.Render(b.Description))
	}

	current := ""
	for _, b := range bindings {
		if b.Context != current {
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			section(label)
			current = b.Context
		}
		entry(b)
	}

	section("Mouse")
	for _, b := range mouseHelp {
		entry(b)
	}
	return lines
}

func (m Model) footer() string {
	if len(m.lines) <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chromeHeight, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
