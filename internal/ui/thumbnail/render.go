// Package thumbnail draws image previews with half-block characters.
package thumbnail

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/llehouerou/montage/internal/ui/styles"
)

// halfBlock draws the top pixel as foreground and the bottom one as background.
const halfBlock = "▀"

// Scale resizes img to fit a width x height cell box. Each cell holds two
// vertical pixels. Images already small enough are returned unchanged.
func Scale(img image.Image, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return img
	}
	return resize.Thumbnail(uint(width), uint(height*2), img, resize.Lanczos3) //nolint:gosec // bounds checked above
}

// Render scales img into a width x height cell box and returns exactly
// height lines of width cells, with the picture centered.
func Render(img image.Image, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if img == nil {
		return blank(width, height)
	}

	scaled := Scale(img, width, height)
	b := scaled.Bounds()
	imgW := min(b.Dx(), width)
	rows := min((b.Dy()+1)/2, height)

	padLeft := (width - imgW) / 2
	padTop := (height - rows) / 2
	bg := styles.T().BgBase

	lines := make([]string, 0, height)
	for range padTop {
		lines = append(lines, strings.Repeat(" ", width))
	}
	for row := range rows {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", padLeft))
		for col := range imgW {
			x := b.Min.X + col
			y := b.Min.Y + row*2
			top := hexAt(scaled, x, y, bg)
			bottom := bg
			if y+1 < b.Max.Y {
				bottom = hexAt(scaled, x, y+1, bg)
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render(halfBlock))
		}
		sb.WriteString(strings.Repeat(" ", width-imgW-padLeft))
		lines = append(lines, sb.String())
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// hexAt returns the pixel color at (x, y). Fully transparent pixels use fallback.
func hexAt(img image.Image, x, y int, fallback lipgloss.Color) lipgloss.Color {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return fallback
	}
	return lipgloss.Color(c.Clamped().Hex())
}

func blank(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Placeholder renders a centered label in a width x height box.
func Placeholder(label string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(blank(width, height), "\n")
	label = styles.T().S().Subtle.Render(lipgloss.NewStyle().MaxWidth(width).Render(label))
	w := lipgloss.Width(label)
	left := max((width-w)/2, 0)
	lines[height/2] = strings.Repeat(" ", left) + label + strings.Repeat(" ", max(width-w-left, 0))
	return strings.Join(lines, "\n")
}
