package gallerypanel

import (
	"github.com/llehouerou/montage/internal/dnd"
	"github.com/llehouerou/montage/internal/ui"
)

// Layout places n tiles in a content area of the given width.
// Full tiles take a row of their own; consecutive half tiles pair up two per
// row. When the area is too narrow for two half tiles, every tile gets a full row.
// Rects are relative to the top-left of the content area.
func Layout(n, width int) []dnd.Rect {
	rects := make([]dnd.Rect, n)
	if n == 0 || width <= 0 {
		return rects
	}

	leftW := width / 2
	rightW := width - leftW
	canPair := leftW >= ui.MinTileWidth

	y := 0
	for i := 0; i < n; i++ {
		if dnd.WidthFor(i, n) == dnd.Full || !canPair {
			rects[i] = dnd.Rect{X: 0, Y: y, Width: width, Height: ui.TileHeight}
			y += ui.TileHeight
			continue
		}

		rects[i] = dnd.Rect{X: 0, Y: y, Width: leftW, Height: ui.TileHeight}
		if i+1 < n && dnd.WidthFor(i+1, n) == dnd.Half {
			i++
			rects[i] = dnd.Rect{X: leftW, Y: y, Width: rightW, Height: ui.TileHeight}
		}
		y += ui.TileHeight
	}
	return rects
}

// ContentHeight returns the total height of the laid out tiles.
func ContentHeight(rects []dnd.Rect) int {
	h := 0
	for _, r := range rects {
		h = max(h, r.Y+r.Height)
	}
	return h
}

// HitTest returns the index of the tile containing (x, y), or -1.
func HitTest(rects []dnd.Rect, x, y int) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
