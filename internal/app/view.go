package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/montage/internal/ui/headerbar"
	"github.com/llehouerou/montage/internal/ui/render"
	"github.com/llehouerou/montage/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := headerbar.Render(headerbar.Info{
		Selected: m.Gallery.Len(),
		Total:    m.Catalog.Len(),
		Dragging: m.GalleryPanel.Dragging(),
	}, m.Width)

	galleryView := m.GalleryPanel.View()
	catalogView := m.CatalogPanel.View()

	var panels string
	if m.IsNarrowMode() {
		// Stack vertically in narrow mode
		panels = galleryView + "\n" + catalogView
	} else {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, galleryView, catalogView)
	}

	view := header + "\n" + panels + "\n" + m.renderStatus()

	view = enforceHeight(view, m.Height)
	view = m.Popups.RenderOverlay(view)

	return view
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	text := render.TruncateAndPad(m.Status, m.Width)
	if m.StatusError {
		return s.Error.Render(text)
	}
	return s.Muted.Render(text)
}

// enforceHeight pads or truncates view to exactly targetHeight lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == targetHeight {
		return view
	}

	if len(lines) < targetHeight {
		for len(lines) < targetHeight {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}
