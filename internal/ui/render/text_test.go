package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "sunset.png", "sunset.png"},
		{"newline", "a\nb.png", "ab.png"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp", "a\u00a0b", "a b"},
		{"invalid byte", "a\xffb", "ab"},
		{"unicode kept", "日本.jpg", "日本.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "..."},
		{"", 10, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
		}
	}
}

func TestTruncateAndPad_ExactWidth(t *testing.T) {
	inputs := []string{"", "abc", "a much longer file name.png", "日本語の名前.png"}
	for _, in := range inputs {
		got := TruncateAndPad(in, 12)
		if w := lipgloss.Width(got); w != 12 {
			t.Errorf("TruncateAndPad(%q, 12) width = %d, want 12", in, w)
		}
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abcdef", 4, "abcdef"},
	}
	for _, tt := range tests {
		if got := Center(tt.s, tt.width); got != tt.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 12); got != "left   right" {
		t.Errorf("Row() = %q", got)
	}
	if got := Row("left", "right", 4); got != "left right" {
		t.Errorf("Row() overflow = %q, want single space gap", got)
	}
}

func TestSeparatorAndEmptyLine(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := EmptyLine(2); got != "  " {
		t.Errorf("EmptyLine(2) = %q", got)
	}
	if Separator(-1) != "" || EmptyLine(-1) != "" {
		t.Error("negative widths should yield empty strings")
	}
}
