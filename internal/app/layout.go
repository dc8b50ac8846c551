package app

import (
	"github.com/llehouerou/montage/internal/ui/headerbar"
	"github.com/llehouerou/montage/internal/ui/layout"
)

// IsNarrowMode returns true when the panels are stacked vertically.
func (m *Model) IsNarrowMode() bool {
	return layout.IsNarrowMode(m.Width)
}

// ContentHeight returns the height shared by the panels.
func (m *Model) ContentHeight() int {
	return layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		StatusHeight: layout.StatusHeight,
	})
}

// ResizeComponents sizes and positions every component for the current window.
func (m *Model) ResizeComponents() {
	narrow := m.IsNarrowMode()
	contentHeight := m.ContentHeight()

	m.GalleryPanel.SetSize(
		layout.GalleryWidth(m.Width, narrow),
		layout.GalleryHeight(contentHeight, narrow),
	)
	m.GalleryPanel.SetOrigin(0, headerbar.Height)
	m.GalleryPanel.ClampCursor()

	m.CatalogPanel.SetSize(
		layout.CatalogWidth(m.Width, narrow),
		layout.CatalogHeight(contentHeight, narrow),
	)
	m.CatalogPanel.SetOrigin(layout.CatalogOrigin(m.Width, contentHeight, headerbar.Height, narrow))

	m.Popups.SetSize(m.Width, m.Height)
}
