package dnd

import "testing"

func TestDecide(t *testing.T) {
	box := Rect{X: 0, Y: 10, Width: 20, Height: 6} // middle at offset 3

	tests := []struct {
		name     string
		drag     int
		hover    int
		pointerY int
		want     Decision
	}{
		{"same tile", 2, 2, 15, Skip},
		{"down, above middle", 0, 2, 11, Skip},
		{"down, at middle", 0, 2, 13, Reorder},
		{"down, below middle", 0, 2, 15, Reorder},
		{"up, below middle", 3, 1, 15, Skip},
		{"up, at middle", 3, 1, 13, Reorder},
		{"up, above middle", 3, 1, 10, Reorder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.drag, tt.hover, tt.pointerY, box); got != tt.want {
				t.Errorf("Decide(%d, %d, %d) = %v, want %v", tt.drag, tt.hover, tt.pointerY, got, tt.want)
			}
		})
	}
}

func TestDecide_OddHeightMiddle(t *testing.T) {
	box := Rect{Y: 0, Height: 3} // middle 1.5

	if got := Decide(0, 1, 1, box); got != Skip {
		t.Errorf("offset 1 < 1.5 moving down: got %v, want skip", got)
	}
	if got := Decide(0, 1, 2, box); got != Reorder {
		t.Errorf("offset 2 > 1.5 moving down: got %v, want reorder", got)
	}
	if got := Decide(2, 1, 2, box); got != Skip {
		t.Errorf("offset 2 > 1.5 moving up: got %v, want skip", got)
	}
}

func TestWidthFor(t *testing.T) {
	tests := []struct {
		index, n int
		want     Width
	}{
		{0, 1, Full},
		{0, 2, Full},
		{1, 2, Full},
		{0, 4, Full},
		{1, 4, Half},
		{2, 4, Half},
		{3, 4, Full},
	}
	for _, tt := range tests {
		if got := WidthFor(tt.index, tt.n); got != tt.want {
			t.Errorf("WidthFor(%d, %d) = %v, want %v", tt.index, tt.n, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}

	inside := [][2]int{{2, 3}, {5, 4}}
	outside := [][2]int{{1, 3}, {6, 3}, {2, 5}, {2, 2}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = false, want true", p[0], p[1])
		}
	}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = true, want false", p[0], p[1])
		}
	}
}
