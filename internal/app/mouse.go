package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg routes mouse events by position. A drag in progress keeps
// receiving events wherever the pointer goes, so release always ends it.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Popups.HandleMouse(msg) {
		if msg.Action == tea.MouseActionRelease {
			m.GalleryPanel.CancelDrag()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case m.GalleryPanel.Dragging():
		m.GalleryPanel, cmd = m.GalleryPanel.Update(msg)

	case m.GalleryPanel.Contains(msg.X, msg.Y):
		if isPress(msg) {
			m.SetFocus(FocusGallery)
		}
		m.GalleryPanel, cmd = m.GalleryPanel.Update(msg)

	case m.CatalogPanel.Contains(msg.X, msg.Y):
		if isPress(msg) {
			m.SetFocus(FocusCatalog)
		}
		m.CatalogPanel, cmd = m.CatalogPanel.Update(msg)
	}
	return m, cmd
}

func isPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
