// Package overlay composes popups over a rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose draws top over base. Leading and trailing spaces of each top line
// are transparent; everything between them replaces the base cells.
// Both inputs may contain ANSI styling.
func Compose(base, top string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, topLine := range strings.Split(top, "\n") {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(topLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		content := ansi.Cut(topLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// A wide rune straddling startCol is dropped by Cut; pad to keep alignment.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}

		line := prefix + content
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			want := width - endCol
			switch w := ansi.StringWidth(suffix); {
			case w > want:
				suffix = " " + ansi.Cut(suffix, w-want+1, w)
			case w < want:
				suffix += strings.Repeat(" ", want-w)
			}
			line += suffix
		}
		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}
