package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/montage/internal/ui/action"
	"github.com/llehouerou/montage/internal/ui/thumbnail"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.ResizeComponents()
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case thumbnail.LoadedMsg:
		var cmd tea.Cmd
		m.CatalogPanel, cmd = m.CatalogPanel.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}
