package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/montage/internal/dnd"
)

var (
	unfocusedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(defaultTheme.Border)

	focusedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(defaultTheme.BorderFocus)

	tileStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(defaultTheme.Border)
)

// PanelStyle returns the appropriate panel style based on focus state.
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedPanelStyle
	}
	return unfocusedPanelStyle
}

// TileStyle returns the border style for a gallery tile.
// The dragged tile is drawn faint; the hovered drop target gets the accent border.
func TileStyle(state dnd.TileState, cursor bool) lipgloss.Style {
	s := tileStyle
	switch state {
	case dnd.StateDragging:
		s = s.Faint(true).BorderStyle(lipgloss.HiddenBorder())
	case dnd.StateHoverTarget:
		s = s.BorderStyle(lipgloss.ThickBorder()).BorderForeground(defaultTheme.Primary)
	case dnd.StateIdle:
		if cursor {
			s = s.BorderStyle(lipgloss.DoubleBorder()).BorderForeground(defaultTheme.Secondary)
		}
	}
	return s
}
