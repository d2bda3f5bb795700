package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/datatable/internal/theme"
	"github.com/jask/datatable/internal/widgets"
)

const (
	pinGlyph    = "◆"
	ascGlyph    = "▲"
	descGlyph   = "▼"
	handleGlyph = "│"
	barGap      = 2
	editLabel   = "[Edit]"
	deleteLabel = "[Delete]"
)

var actionsWidth = ansi.StringWidth(editLabel + " " + deleteLabel)

type regionKind int

const (
	regionSearch regionKind = iota
	regionRowsPrev
	regionRowsNext
	regionPagePrev
	regionPageNext
	regionDropdownButton
	regionDropdownItem
	regionHeader
	regionHandle
	regionCell
	regionEdit
	regionDelete
	regionPopup
)

// region is a clickable screen span [x0, x1) on line y.
type region struct {
	kind     regionKind
	x0, x1   int
	y        int
	accessor string
	group    Group
	index    int
	slot     int
	row      int
}

func hitTest(regions []region, x, y int) (region, bool) {
	for _, r := range regions {
		if r.y == y && x >= r.x0 && x < r.x1 {
			return r, true
		}
	}
	return region{}, false
}

// slot is one visible column in render order. index is the column's
// position within its group, which is also its position in that group's
// width sequence.
type slot struct {
	col   Column
	group Group
	index int
	pos   int
}

// visibleSlots lists visible columns pinned first, then unpinned, each in
// declared order.
func (m *Model) visibleSlots() []slot {
	pinned, unpinned := partition(m.columns)
	out := make([]slot, 0, len(m.columns))
	for i, c := range pinned {
		if m.settings.IsVisible(c.Accessor) {
			out = append(out, slot{col: c, group: GroupPinned, index: i})
		}
	}
	for i, c := range unpinned {
		if m.settings.IsVisible(c.Accessor) {
			out = append(out, slot{col: c, group: GroupUnpinned, index: i})
		}
	}
	for i := range out {
		out[i].pos = i
	}
	return out
}

func (m *Model) visibleUnpinnedCount() int {
	n := 0
	for _, s := range m.visibleSlots() {
		if s.group == GroupUnpinned {
			n++
		}
	}
	return n
}

// renderedSlots drops the first scrollCol unpinned slots; pinned slots
// never scroll.
func (m *Model) renderedSlots() []slot {
	all := m.visibleSlots()
	out := make([]slot, 0, len(all))
	skipped := 0
	for _, s := range all {
		if s.group == GroupUnpinned && skipped < m.scrollCol {
			skipped++
			continue
		}
		out = append(out, s)
	}
	return out
}

func (m *Model) cellsFor(s slot) int {
	return max(2, int(m.layout.Width(s.group, s.index))/m.cellPx)
}

// View renders the control bar, header and body.
func (m *Model) View() string {
	out, _ := m.render()
	return out
}

// render produces the view together with its clickable regions so mouse
// hit-testing always matches what was drawn.
func (m *Model) render() (string, []region) {
	var lines []string
	var regions []region

	dropdownX := -1
	if bar, regs, ddx, ok := m.controlBar(0); ok {
		lines = append(lines, bar)
		regions = append(regions, regs...)
		dropdownX = ddx
	}

	headerY := len(lines)
	slots := m.renderedSlots()
	header, regs := m.headerLine(slots, headerY)
	lines = append(lines, header)
	regions = append(regions, regs...)

	body, regs := m.bodyLines(slots, headerY+1)
	lines = append(lines, body...)
	regions = append(regions, regs...)

	out := strings.Join(lines, "\n")
	if m.settings.DropdownOpen && dropdownX >= 0 {
		popup, dregs := m.dropdown(dropdownX, headerY)
		out = widgets.OverlayAt(out, popup, dropdownX, headerY)
		regions = append(dregs, regions...)
	}
	if m.width > 0 {
		clipped := strings.Split(out, "\n")
		for i, l := range clipped {
			clipped[i] = ansi.Truncate(l, m.width, "")
		}
		out = strings.Join(clipped, "\n")
	}
	return out, regions
}

func (m *Model) controlBar(y int) (string, []region, int, bool) {
	if !m.withSearch && !m.withPagination && !m.withColumnFilter {
		return "", nil, -1, false
	}
	type pending struct {
		seg   widgets.Segment
		place func(start int) []region
	}
	var parts []pending
	dropdownX := -1
	dropdownPart := -1

	if m.withSearch {
		view := m.search.View()
		w := ansi.StringWidth(view)
		parts = append(parts, pending{
			seg: widgets.Segment{Rendered: view, Width: w},
			place: func(start int) []region {
				return []region{{kind: regionSearch, x0: start, x1: start + w, y: y}}
			},
		})
	}

	if m.withPagination {
		sel := widgets.Select{
			Label:   "Rows per page:",
			Value:   m.settings.RowsPerPage,
			CanPrev: m.canFewerRows(),
			CanNext: m.canMoreRows(),
		}
		parts = append(parts, pending{
			seg: widgets.Segment{Rendered: sel.Render(), Width: sel.Width()},
			place: func(start int) []region {
				return []region{
					{kind: regionRowsPrev, x0: start + sel.PrevOffset(), x1: start + sel.PrevOffset() + 1, y: y},
					{kind: regionRowsNext, x0: start + sel.NextOffset(), x1: start + sel.NextOffset() + 1, y: y},
				}
			},
		})

		prev := widgets.Button{Label: "‹", Disabled: !m.CanPrevPage()}
		next := widgets.Button{Label: "›", Disabled: !m.CanNextPage()}
		label := fmt.Sprintf("Page %d/%d", m.settings.Page, max(1, m.PageCount()))
		labelW := ansi.StringWidth(label)
		rendered := prev.Render() + " " + theme.LabelStyle.Render(label) + " " + next.Render()
		width := prev.Width() + 1 + labelW + 1 + next.Width()
		parts = append(parts, pending{
			seg: widgets.Segment{Rendered: rendered, Width: width},
			place: func(start int) []region {
				nextX := start + prev.Width() + 1 + labelW + 1
				return []region{
					{kind: regionPagePrev, x0: start, x1: start + prev.Width(), y: y},
					{kind: regionPageNext, x0: nextX, x1: nextX + next.Width(), y: y},
				}
			},
		})
	}

	if m.withColumnFilter {
		btn := widgets.Button{Label: "Select Columns"}
		dropdownPart = len(parts)
		parts = append(parts, pending{
			seg: widgets.Segment{Rendered: btn.Render(), Width: btn.Width()},
			place: func(start int) []region {
				return []region{{kind: regionDropdownButton, x0: start, x1: start + btn.Width(), y: y}}
			},
		})
	}

	segs := make([]widgets.Segment, len(parts))
	for i, p := range parts {
		segs[i] = p.seg
	}
	line, starts := widgets.Bar(segs, barGap)
	var regions []region
	for i, p := range parts {
		regions = append(regions, p.place(starts[i])...)
	}
	if dropdownPart >= 0 {
		dropdownX = starts[dropdownPart]
	}
	return line, regions, dropdownX, true
}

func (m *Model) headerLine(slots []slot, y int) (string, []region) {
	var b strings.Builder
	var regions []region
	active, resizing := m.layout.Resizing()
	x := 0
	for _, s := range slots {
		w := m.cellsFor(s)
		b.WriteString(m.headerCell(s, w-1))
		handle := theme.HandleStyle
		if resizing && active.Group == s.group && active.Index == s.index {
			handle = theme.HandleActive
		}
		b.WriteString(handle.Render(handleGlyph))
		regions = append(regions,
			region{kind: regionHeader, x0: x, x1: x + w - 1, y: y, accessor: s.col.Accessor, group: s.group, index: s.index, slot: s.pos},
			region{kind: regionHandle, x0: x + w - 1, x1: x + w, y: y, accessor: s.col.Accessor, group: s.group, index: s.index, slot: s.pos},
		)
		x += w
	}
	if m.hasActions() {
		b.WriteString(theme.HeaderStyle.Render(widgets.PadRight("Actions", actionsWidth)))
	}
	return b.String(), regions
}

// headerCell lays out "◆ Header ▲" in width cells, keeping both glyphs
// visible when the header text has to be truncated.
func (m *Model) headerCell(s slot, width int) string {
	prefix, suffix := "", ""
	if s.col.Pinned {
		prefix = pinGlyph + " "
	}
	if sc := m.settings.Sort; sc != nil && sc.Key == s.col.Accessor {
		suffix = " " + ascGlyph
		if sc.Direction == Descending {
			suffix = " " + descGlyph
		}
	}
	style := theme.HeaderStyle
	if s.pos == m.focusCol {
		style = theme.HeaderActive
	}
	avail := width - ansi.StringWidth(prefix) - ansi.StringWidth(suffix)
	if avail < 1 {
		return style.Render(widgets.Fit(prefix+s.col.Header+suffix, width))
	}
	return theme.PinStyle.Render(prefix) +
		style.Render(widgets.Fit(s.col.Header, avail)) +
		theme.SortStyle.Render(suffix)
}

func (m *Model) bodyLines(slots []slot, y0 int) ([]string, []region) {
	rows := m.PageRows()
	if len(rows) == 0 {
		return []string{theme.LabelStyle.Render("No rows")}, nil
	}
	lines := make([]string, 0, len(rows))
	var regions []region
	for i, r := range rows {
		y := y0 + i
		cursor := i == m.cursor
		var b strings.Builder
		x := 0
		for _, s := range slots {
			w := m.cellsFor(s)
			text := widgets.Fit(Stringify(r.Value(s.col.Accessor)), w-1)
			if cursor {
				b.WriteString(text + handleGlyph)
			} else {
				b.WriteString(theme.CellStyle.Render(text) + theme.HandleStyle.Render(handleGlyph))
			}
			regions = append(regions, region{kind: regionCell, x0: x, x1: x + w, y: y, row: i})
			x += w
		}
		line := b.String()
		if cursor {
			line = theme.CursorStyle.Render(line)
		}
		if m.hasActions() {
			editW := ansi.StringWidth(editLabel)
			delX := x + editW + 1
			line += theme.EditStyle.Render(editLabel) + " " + theme.DeleteStyle.Render(deleteLabel)
			regions = append(regions,
				region{kind: regionEdit, x0: x, x1: x + editW, y: y, row: i},
				region{kind: regionDelete, x0: delX, x1: delX + ansi.StringWidth(deleteLabel), y: y, row: i},
			)
		}
		lines = append(lines, line)
	}
	return lines, regions
}

// dropdown renders the column checklist popup with its top-left corner at
// (x, y) and returns the regions of its checkboxes.
func (m *Model) dropdown(x, y int) (string, []region) {
	items := make([]string, 0, len(m.columns))
	regions := make([]region, 0, len(m.columns))
	for i, c := range m.columns {
		cb := widgets.Checkbox{Label: c.Header, Checked: m.settings.IsVisible(c.Accessor)}
		items = append(items, cb.Render(i == m.dropdownCursor))
		// border plus one cell of padding on the left, border on top
		regions = append(regions, region{
			kind:     regionDropdownItem,
			x0:       x + 2,
			x1:       x + 2 + cb.Width(),
			y:        y + 1 + i,
			accessor: c.Accessor,
			index:    i,
		})
	}
	if len(items) == 0 {
		items = append(items, theme.LabelStyle.Render("No columns"))
	}
	popup := theme.DropdownStyle.Render(strings.Join(items, "\n"))
	// the rest of the popup swallows clicks meant for what it covers
	w, h := lipgloss.Width(popup), lipgloss.Height(popup)
	for line := 0; line < h; line++ {
		regions = append(regions, region{kind: regionPopup, x0: x, x1: x + w, y: y + line})
	}
	return popup, regions
}
