package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Initials returns up to two initials from a display name, one per word,
// matching the original avatar fallback ("Мария Сова" → "МС").
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		initials = append(initials, []rune(word)[0])
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// Truncate cuts a single line to the given display width, appending an
// ellipsis when anything was removed. ANSI-aware so styled previews keep
// their escape sequences intact.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return ansi.Cut(s, 0, width-1) + "…"
}

// FirstLine returns the text up to the first newline.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
