// Package notice provides a blocking message popup with a single OK action.
package notice

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/montage/internal/ui"
	"github.com/llehouerou/montage/internal/ui/popup"
	"github.com/llehouerou/montage/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// AlreadyAdded is shown when the user adds an image that is already selected.
const AlreadyAdded = "This image is already added."

// Model is a modal notice. While active it consumes every key and mouse event.
type Model struct {
	ui.Base
	title   string
	message string
	active  bool
}

// New creates a new notice model.
func New() Model {
	return Model{}
}

// Show displays the notice.
func (m *Model) Show(title, message string, width, height int) {
	m.title = title
	m.message = message
	m.SetSize(width, height)
	m.active = true
}

// Active returns whether the notice is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Message returns the current message.
func (m Model) Message() string {
	return m.message
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "esc":
		m.active = false
		message := m.message
		return m, func() tea.Msg {
			return ActionMsg(Dismissed{Message: message})
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	title := s.Warning.Bold(true).Render(m.title)
	message := s.Base.Render(m.message)
	hint := s.Subtle.Render("Enter/Esc: OK")

	return title + "\n\n" + message + "\n\n" + hint
}
