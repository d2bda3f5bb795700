package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// OverlayAt draws popup over base with its top-left corner at column x,
// line y. Base lines are extended with blank lines or spaces when the popup
// reaches past them; base content to the right of the popup is preserved.
func OverlayAt(base, popup string, x, y int) string {
	if popup == "" {
		return base
	}
	x = max(0, x)
	y = max(0, y)
	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")
	for len(baseLines) < y+len(popupLines) {
		baseLines = append(baseLines, "")
	}
	for i, p := range popupLines {
		row := y + i
		line := baseLines[row]
		pw := ansi.StringWidth(p)
		left := PadRight(line, x)
		right := dropColumns(line, x+pw)
		baseLines[row] = left + p + right
	}
	return strings.Join(baseLines, "\n")
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	if ansi.StringWidth(s) <= cols {
		return ""
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}
