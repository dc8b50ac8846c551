package dnd

// TileState is how a tile should be drawn during a drag.
type TileState int

const (
	StateIdle TileState = iota
	StateDragging
	StateHoverTarget
)

// Session tracks one drag gesture from press to release.
// The zero value is an idle session.
type Session struct {
	active bool
	index  int
	hover  int
}

// Begin starts dragging the tile at index.
func (s *Session) Begin(index int) {
	s.active = true
	s.index = index
	s.hover = -1
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool {
	return s.active
}

// Index returns the current position of the dragged tile, or -1 when idle.
func (s *Session) Index() int {
	if !s.active {
		return -1
	}
	return s.index
}

// HoverIndex returns the tile under the pointer, or -1.
func (s *Session) HoverIndex() int {
	if !s.active {
		return -1
	}
	return s.hover
}

// End finishes the drag.
func (s *Session) End() {
	s.active = false
	s.index = -1
	s.hover = -1
}

// Hover records the pointer over the tile at hoverIndex with bounds box.
// When the move should happen it returns the (from, to) pair and updates the
// tracked index to hoverIndex, so the next hover compares against the tile's
// new position.
func (s *Session) Hover(hoverIndex, pointerY int, box Rect) (from, to int, ok bool) {
	if !s.active {
		return 0, 0, false
	}
	s.hover = hoverIndex
	if Decide(s.index, hoverIndex, pointerY, box) == Skip {
		return 0, 0, false
	}
	from = s.index
	s.index = hoverIndex
	return from, hoverIndex, true
}

// StateOf returns the draw state for the tile at index.
func (s *Session) StateOf(index int) TileState {
	if !s.active {
		return StateIdle
	}
	if index == s.index {
		return StateDragging
	}
	if index == s.hover {
		return StateHoverTarget
	}
	return StateIdle
}
