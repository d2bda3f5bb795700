package widgets

import (
	"strconv"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/datatable/internal/theme"
)

// Button is a clickable label. Disabled buttons render muted.
type Button struct {
	Label    string
	Disabled bool
}

func (b Button) Text() string { return "[" + b.Label + "]" }

func (b Button) Width() int { return ansi.StringWidth(b.Text()) }

func (b Button) Render() string {
	if b.Disabled {
		return theme.ButtonOff.Render(b.Text())
	}
	return theme.ButtonStyle.Render(b.Text())
}

// Checkbox is a labelled two-state box.
type Checkbox struct {
	Label   string
	Checked bool
}

func (c Checkbox) Text() string {
	if c.Checked {
		return "[x] " + c.Label
	}
	return "[ ] " + c.Label
}

func (c Checkbox) Width() int { return ansi.StringWidth(c.Text()) }

func (c Checkbox) Render(focused bool) string {
	if focused {
		return theme.CursorStyle.Render(c.Text())
	}
	return theme.CellStyle.Render(c.Text())
}

// Select shows a label followed by step controls around the current value:
// "Rows ‹ 5 ›". The step arrows are the only interactive parts.
type Select struct {
	Label   string
	Value   int
	CanPrev bool
	CanNext bool
}

const (
	selectPrev = "‹"
	selectNext = "›"
)

func (s Select) valueText() string { return " " + strconv.Itoa(s.Value) + " " }

func (s Select) Text() string {
	return s.Label + " " + selectPrev + s.valueText() + selectNext
}

func (s Select) Width() int { return ansi.StringWidth(s.Text()) }

// PrevOffset and NextOffset give the column offsets of the step arrows
// relative to the start of the rendered select.
func (s Select) PrevOffset() int { return ansi.StringWidth(s.Label + " ") }

func (s Select) NextOffset() int {
	return s.PrevOffset() + ansi.StringWidth(selectPrev+s.valueText())
}

func (s Select) Render() string {
	arrow := func(glyph string, enabled bool) string {
		if enabled {
			return theme.SortStyle.Render(glyph)
		}
		return theme.LabelStyle.Render(glyph)
	}
	return theme.LabelStyle.Render(s.Label+" ") +
		arrow(selectPrev, s.CanPrev) +
		theme.CellStyle.Render(s.valueText()) +
		arrow(selectNext, s.CanNext)
}
