package catalogpanel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/ui/render"
	"github.com/llehouerou/montage/internal/ui/styles"
	"github.com/llehouerou/montage/internal/ui/thumbnail"
)

const (
	addLabel = "[Add]"
	delLabel = "[Del]"
)

// View renders the catalog panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.InnerWidth()
	listHeight := m.listHeight()
	previewWidth := m.previewWidth()

	listWidth := innerWidth
	if previewWidth > 0 {
		listWidth = innerWidth - previewWidth - 1
	}

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	body := m.renderList(listWidth, listHeight)
	if previewWidth > 0 {
		preview := m.renderPreview(previewWidth, listHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", preview)
	}

	content := header + "\n" + separator + "\n" + body

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) selectedCount() int {
	n := 0
	for _, it := range m.all {
		if m.sel.IsDisabled(it.ID) {
			n++
		}
	}
	return n
}

func (m Model) renderHeader(innerWidth int) string {
	t := styles.T()
	right := t.S().Muted.Render(fmt.Sprintf("%d in gallery", m.selectedCount()))
	leftWidth := max(innerWidth-lipgloss.Width(right), 0)

	if m.editing || m.filter.Value() != "" {
		count := fmt.Sprintf(" %d/%d", len(m.items), len(m.all))
		m.filter.Width = max(leftWidth-len(count)-2, 1)
		left := ansi.Truncate(m.filter.View()+t.S().Muted.Render(count), leftWidth, "")
		return left + strings.Repeat(" ", max(leftWidth-ansi.StringWidth(left), 0)) + right
	}

	left := fmt.Sprintf("Catalog (%d)", len(m.items))
	return t.S().Title.Render(render.TruncateAndPad(left, leftWidth)) + right
}

func (m Model) renderList(width, height int) string {
	lines := make([]string, 0, height)

	if len(m.items) == 0 {
		empty := "No images in catalog"
		if len(m.all) > 0 {
			empty = "No images match the filter"
		}
		lines = append(lines, styles.T().S().Muted.Render(render.TruncateAndPad(empty, width)))
	}

	start, end := m.cursor.VisibleRange(len(m.items), height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.items[i], i == m.cursor.Pos(), width))
	}

	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(item catalog.Item, isCursor bool, width int) string {
	t := styles.T()
	disabled := m.sel.IsDisabled(item.ID)

	add := t.S().Button.Render(addLabel)
	if disabled {
		add = t.S().Disabled.Render(addLabel)
	}
	del := t.S().Error.Render(delLabel)

	marker := "  "
	if disabled {
		marker = "✓ "
	}
	nameWidth := max(width-nameCol, 0)
	name := render.TruncateAndPad(marker+item.Name(), nameWidth)

	nameStyle := t.S().Base
	if disabled {
		nameStyle = t.S().Muted
	}
	if isCursor && m.IsFocused() {
		nameStyle = t.S().Cursor
	}

	return add + " " + del + " " + nameStyle.Render(name)
}

func (m Model) renderPreview(width, height int) string {
	t := styles.T()
	_, thumbHeight := m.thumbs.Size()
	thumbHeight = min(thumbHeight, height)

	it := m.SelectedItem()
	var lines []string
	switch {
	case it == nil:
		lines = strings.Split(thumbnail.Placeholder("no image", width, thumbHeight), "\n")
	case m.preview.Path != it.Image:
		lines = strings.Split(thumbnail.Placeholder("", width, thumbHeight), "\n")
	case m.preview.View != "":
		lines = strings.Split(m.preview.View, "\n")
	case errors.Is(m.preview.Err, thumbnail.ErrRemote):
		lines = strings.Split(thumbnail.Placeholder("remote image", width, thumbHeight), "\n")
	case m.preview.Err != nil:
		lines = strings.Split(thumbnail.Placeholder("no preview", width, thumbHeight), "\n")
	default:
		lines = strings.Split(thumbnail.Placeholder("loading...", width, thumbHeight), "\n")
	}

	if it != nil {
		lines = append(lines, render.EmptyLine(width))
		lines = append(lines, t.S().Title.Render(render.TruncateAndPad(it.Name(), width)))
		info := fmt.Sprintf("id %d", it.ID)
		if m.preview.Path == it.Image && m.preview.Size > 0 {
			info += " · " + humanize.Bytes(uint64(m.preview.Size))
		}
		lines = append(lines, t.S().Muted.Render(render.TruncateAndPad(info, width)))
		status := t.S().Success.Render(render.TruncateAndPad("available", width))
		if m.sel.IsDisabled(it.ID) {
			status = t.S().Subtle.Render(render.TruncateAndPad("in gallery", width))
		}
		lines = append(lines, status)
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}
