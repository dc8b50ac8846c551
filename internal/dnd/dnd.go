// Package dnd implements the drag-to-reorder rules for selected tiles.
//
// Everything here is pure: callers supply tile rectangles and pointer
// positions, and the package decides whether a hover should move the
// dragged tile.
package dnd

// Rect is a tile's bounding box in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Decision is the outcome of a hover.
type Decision int

const (
	Skip Decision = iota
	Reorder
)

func (d Decision) String() string {
	if d == Reorder {
		return "reorder"
	}
	return "skip"
}

// Decide applies the half-height rule: a tile dragged downward only swaps
// once the pointer passes the middle of the hovered tile, and a tile dragged
// upward only once it passes back above the middle.
func Decide(dragIndex, hoverIndex, pointerY int, box Rect) Decision {
	if dragIndex == hoverIndex {
		return Skip
	}

	middle := float64(box.Height) / 2.0
	offset := float64(pointerY - box.Y)

	if dragIndex < hoverIndex && offset < middle {
		return Skip
	}
	if dragIndex > hoverIndex && offset > middle {
		return Skip
	}
	return Reorder
}

// Width is a tile's width class.
type Width int

const (
	Half Width = iota
	Full
)

func (w Width) String() string {
	if w == Full {
		return "full"
	}
	return "half"
}

// WidthFor returns Full for the first and last of n tiles and Half otherwise.
func WidthFor(index, n int) Width {
	if index == 0 || index == n-1 {
		return Full
	}
	return Half
}
