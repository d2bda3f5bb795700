package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Segment is one piece of a horizontal bar of controls.
type Segment struct {
	Rendered string
	Width    int
}

// Bar joins segments left to right with gap spaces between them and returns
// the start column of every segment alongside the rendered line.
func Bar(segments []Segment, gap int) (string, []int) {
	starts := make([]int, len(segments))
	var b strings.Builder
	x := 0
	for i, s := range segments {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", gap))
			x += gap
		}
		starts[i] = x
		b.WriteString(s.Rendered)
		x += s.Width
	}
	return b.String(), starts
}

// PadRight truncates s to width display columns and pads it with spaces up
// to exactly width.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Fit is PadRight with an ellipsis when s does not fit.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	return PadRight(s, width)
}
