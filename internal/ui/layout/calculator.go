// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which the layout switches to narrow mode.
// In narrow mode, the catalog panel is displayed below the gallery instead of beside it.
const NarrowThreshold = 90

// StatusHeight is the height of the status line under the panels.
const StatusHeight = 1

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	StatusHeight int
}

// ContentHeight calculates the available height for the panels.
// This is the terminal height minus header and status line.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.StatusHeight, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// GalleryWidth returns the width of the gallery panel.
// In narrow mode it spans the window; otherwise it takes 3/5 of it.
func GalleryWidth(windowWidth int, narrowMode bool) int {
	if narrowMode {
		return windowWidth
	}
	return windowWidth * 3 / 5
}

// CatalogWidth returns the width of the catalog panel.
func CatalogWidth(windowWidth int, narrowMode bool) int {
	if narrowMode {
		return windowWidth
	}
	return windowWidth - GalleryWidth(windowWidth, narrowMode)
}

// GalleryHeight returns the height of the gallery panel.
// In narrow mode the gallery gets 3/5 of the content height, stacked above the catalog.
func GalleryHeight(contentHeight int, narrowMode bool) int {
	if narrowMode {
		return contentHeight * 3 / 5
	}
	return contentHeight
}

// CatalogHeight returns the height of the catalog panel.
func CatalogHeight(contentHeight int, narrowMode bool) int {
	if narrowMode {
		return contentHeight - GalleryHeight(contentHeight, narrowMode)
	}
	return contentHeight
}

// CatalogOrigin returns the top-left cell of the catalog panel, given the
// gallery's position at (0, top).
func CatalogOrigin(windowWidth, contentHeight, top int, narrowMode bool) (x, y int) {
	if narrowMode {
		return 0, top + GalleryHeight(contentHeight, narrowMode)
	}
	return GalleryWidth(windowWidth, narrowMode), top
}
