package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/montage/internal/dnd"
)

func TestApplyGradient_PreservesText(t *testing.T) {
	tests := []string{"", "m", "montage", "héllo wörld"}
	for _, text := range tests {
		got := ansi.Strip(ApplyGradient(text, "#a78bfa", "#f1a208", true))
		if got != text {
			t.Errorf("ApplyGradient(%q) stripped = %q", text, got)
		}
	}
}

func TestToColor_FallsBackForANSI(t *testing.T) {
	r, g, b, _ := toColor("240").RGBA()
	if r != g || g != b {
		t.Errorf("ANSI fallback should be gray, got %d,%d,%d", r, g, b)
	}
}

func TestTileStyle_States(t *testing.T) {
	idle := TileStyle(dnd.StateIdle, false).Render("x")
	dragging := TileStyle(dnd.StateDragging, false).Render("x")
	hover := TileStyle(dnd.StateHoverTarget, false).Render("x")

	if !strings.Contains(ansi.Strip(idle), "─") {
		t.Errorf("idle tile should have a normal border: %q", ansi.Strip(idle))
	}
	if strings.Contains(ansi.Strip(dragging), "─") {
		t.Errorf("dragged tile border should be hidden: %q", ansi.Strip(dragging))
	}
	if !strings.Contains(ansi.Strip(hover), "━") {
		t.Errorf("hover target should have a thick border: %q", ansi.Strip(hover))
	}

	// Every state keeps the same footprint so the layout does not shift mid-drag
	w := func(s string) int { return len(strings.Split(s, "\n")) }
	if w(idle) != w(dragging) || w(idle) != w(hover) {
		t.Error("tile heights differ between states")
	}
}

func TestPanelStyle(t *testing.T) {
	if PanelStyle(true).GetBorderTopForeground() == PanelStyle(false).GetBorderTopForeground() {
		t.Error("focused and unfocused panels should differ in border color")
	}
}

func TestTheme_StylesCached(t *testing.T) {
	if T().S() != T().S() {
		t.Error("S() should return the same cached styles")
	}
}
