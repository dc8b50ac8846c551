package gallerypanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/dnd"
	"github.com/llehouerou/montage/internal/ui"
	"github.com/llehouerou/montage/internal/ui/render"
	"github.com/llehouerou/montage/internal/ui/styles"
	"github.com/llehouerou/montage/internal/ui/thumbnail"
)

const emptyText = "No images selected. Add some from the catalog."

// View renders the gallery panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.InnerWidth()
	viewHeight := m.viewHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	tiles := m.renderTiles(innerWidth, viewHeight)

	content := header + "\n" + separator + "\n" + tiles

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	t := styles.T()
	left := fmt.Sprintf("Gallery (%d)", m.sel.Len())

	var right string
	if idx := m.session.Index(); idx >= 0 {
		right = t.S().Accent.Render(fmt.Sprintf("moving %d", idx+1))
	} else if m.sel.Len() > 1 {
		right = t.S().Muted.Render("drag to reorder")
	}

	leftWidth := max(innerWidth-lipgloss.Width(right), 0)
	return t.S().Title.Render(render.TruncateAndPad(left, leftWidth)) + right
}

func (m Model) renderTiles(innerWidth, viewHeight int) string {
	items := m.sel.Selected()
	if len(items) == 0 {
		lines := make([]string, viewHeight)
		for i := range lines {
			lines[i] = render.EmptyLine(innerWidth)
		}
		if viewHeight > 0 {
			lines[viewHeight/2] = styles.T().S().Muted.Render(render.Center(render.Truncate(emptyText, innerWidth), innerWidth))
		}
		return strings.Join(lines, "\n")
	}

	rects := Layout(len(items), innerWidth)

	var all []string
	for start := 0; start < len(rects); {
		end := start + 1
		for end < len(rects) && rects[end].Y == rects[start].Y {
			end++
		}
		parts := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			parts = append(parts, m.renderTile(items[i], i, rects[i]))
		}
		row := lipgloss.PlaceHorizontal(innerWidth, lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
		all = append(all, strings.Split(row, "\n")...)
		start = end
	}

	lo := min(m.scroll, len(all))
	hi := min(lo+viewHeight, len(all))
	lines := append([]string(nil), all[lo:hi]...)
	for len(lines) < viewHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTile(item catalog.Item, index int, r dnd.Rect) string {
	t := styles.T()
	w := max(r.Width-2, 1)

	full := dnd.WidthFor(index, m.sel.Len()) == dnd.Full
	width := "full"
	if !full {
		width = "half"
	}

	var thumb string
	textW := w
	if full && m.thumbs != nil && w >= ui.TileThumbWidth+1+ui.MinTileWidth {
		thumb = m.tileThumbnail(item)
		textW = w - ui.TileThumbWidth - 1
	}

	title := render.TruncateAndPad(fmt.Sprintf("%d. %s", index+1, item.Name()), textW)
	meta := render.TruncateAndPad(fmt.Sprintf("id %d · %s", item.ID, width), textW)
	path := render.TruncateAndPad(item.Image, textW)

	body := t.S().Base.Bold(true).Render(title) + "\n" +
		t.S().Muted.Render(meta) + "\n" +
		t.S().Subtle.Render(path)
	if thumb != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, thumb, " ", body)
	}

	cursor := m.IsFocused() && index == m.cursor
	return styles.TileStyle(m.session.StateOf(index), cursor).
		Width(w).
		Render(body)
}

// tileThumbnail returns the cached picture of item, or a placeholder while
// it loads or when it cannot be drawn.
func (m Model) tileThumbnail(item catalog.Item) string {
	loaded, ok := m.thumbs.Cached(item.Image)
	switch {
	case !ok:
		return thumbnail.Placeholder("...", ui.TileThumbWidth, ui.TileThumbHeight)
	case loaded.Err != nil || loaded.View == "":
		return thumbnail.Placeholder("-", ui.TileThumbWidth, ui.TileThumbHeight)
	}
	return loaded.View
}
