// Package headerbar renders the single-line title bar at the top of the screen.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/montage/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const title = "montage"

// Info is what the header bar reports about the gallery.
type Info struct {
	Selected int
	Total    int
	Dragging bool
}

// Styles
var (
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	dragStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header bar string for the given width.
func Render(info Info, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	separator := separatorStyle.Render(" │ ")

	left := styles.ApplyGradient(title, t.Primary, t.Secondary, true) +
		separator +
		countStyle.Render(fmt.Sprintf("%d/%d selected", info.Selected, info.Total))
	if info.Dragging {
		left += separator + dragStyle.Render("dragging")
	}

	right := hintKeyStyle.Render("? help") + separator + hintKeyStyle.Render("q quit")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
