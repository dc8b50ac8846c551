package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/montage/internal/keymap"
)

// handleKeyMsg routes a key to the open popup, the global bindings, then the focused panel.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A key press ends any mouse drag: keys can edit the list or open a
	// popup that swallows the release.
	m.GalleryPanel.CancelDrag()

	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	// The filter input takes every key, including global bindings.
	if m.Focus == FocusCatalog && m.CatalogPanel.Filtering() {
		var cmd tea.Cmd
		m.CatalogPanel, cmd = m.CatalogPanel.Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionSwitchFocus:
		m.toggleFocus()
		return m, nil
	case keymap.ActionHelp:
		return m, m.Popups.ShowHelp([]string{keymap.ContextGlobal, m.Focus.Context()})
	case keymap.ActionClearSelection:
		n := m.Gallery.Len()
		if n == 0 {
			m.setStatus("Gallery is already empty")
			return m, nil
		}
		return m, m.Popups.ShowConfirm(
			"Clear gallery",
			fmt.Sprintf("Remove all %d images from the gallery?", n),
			clearRequest{},
		)
	}

	var cmd tea.Cmd
	switch m.Focus {
	case FocusGallery:
		m.GalleryPanel, cmd = m.GalleryPanel.Update(msg)
	case FocusCatalog:
		m.CatalogPanel, cmd = m.CatalogPanel.Update(msg)
	}
	return m, cmd
}
