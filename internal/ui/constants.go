// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	// listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight

	// TileHeight is the height of one gallery tile including its border.
	TileHeight = 5

	// MinTileWidth is the narrowest a half-width tile may get before
	// half tiles fall back to full rows.
	MinTileWidth = 14

	// TileThumbWidth and TileThumbHeight size the picture drawn in full-width tiles.
	TileThumbWidth  = 6
	TileThumbHeight = TileHeight - BorderHeight
)
