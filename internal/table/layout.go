package table

import "strconv"

// Width is a column width in pixels.
type Width int

const (
	// MinWidth is the hard floor for every column width.
	MinWidth Width = 50
	// DefaultWidth is the mount-time width of every column.
	DefaultWidth Width = 150
)

func (w Width) String() string { return strconv.Itoa(int(w)) + "px" }

// Group selects one of the two independently tracked width sequences.
type Group int

const (
	GroupPinned Group = iota
	GroupUnpinned
)

func (g Group) String() string {
	if g == GroupPinned {
		return "pinned"
	}
	return "unpinned"
}

// Resize is the drag gesture state. The zero value is Idle.
type Resize struct {
	Active     bool
	Group      Group
	Index      int
	StartX     int
	StartWidth Width
}

// Layout owns the pinned and unpinned width sequences and at most one
// resize gesture.
type Layout struct {
	pinned   []Width
	unpinned []Width
	initial  Width
	resize   Resize
}

// NewLayout sizes both groups with def, raised to MinWidth if needed.
func NewLayout(pinnedCount, unpinnedCount int, def Width) *Layout {
	def = max(def, MinWidth)
	return &Layout{
		pinned:   filled(pinnedCount, def),
		unpinned: filled(unpinnedCount, def),
		initial:  def,
	}
}

func filled(n int, w Width) []Width {
	out := make([]Width, n)
	for i := range out {
		out[i] = w
	}
	return out
}

func (l *Layout) group(g Group) []Width {
	if g == GroupPinned {
		return l.pinned
	}
	return l.unpinned
}

// Widths returns a copy of the group's widths.
func (l *Layout) Widths(g Group) []Width {
	src := l.group(g)
	out := make([]Width, len(src))
	copy(out, src)
	return out
}

// Width returns the width at index i of group g, or the initial width when
// i is out of range.
func (l *Layout) Width(g Group, i int) Width {
	ws := l.group(g)
	if i < 0 || i >= len(ws) {
		return l.initial
	}
	return ws[i]
}

// Reset resizes both groups to new partition sizes, keeping widths at
// indices that still exist. Any gesture in progress is ended.
func (l *Layout) Reset(pinnedCount, unpinnedCount int) {
	l.EndResize()
	l.pinned = resized(l.pinned, pinnedCount, l.initial)
	l.unpinned = resized(l.unpinned, unpinnedCount, l.initial)
}

func resized(ws []Width, n int, def Width) []Width {
	out := filled(n, def)
	copy(out, ws)
	return out
}

// BeginResize moves Idle to Resizing for column index of group g, starting
// at pointer x. It refuses while another gesture is active and for indexes
// outside the group.
func (l *Layout) BeginResize(g Group, index, x int) bool {
	if l.resize.Active {
		return false
	}
	ws := l.group(g)
	if index < 0 || index >= len(ws) {
		return false
	}
	l.resize = Resize{
		Active:     true,
		Group:      g,
		Index:      index,
		StartX:     x,
		StartWidth: ws[index],
	}
	return true
}

// DragTo applies a pointer move. The new width is StartWidth plus the
// pointer delta, floored at MinWidth, written only at the recorded index of
// the recorded group.
func (l *Layout) DragTo(x int) (Width, bool) {
	if !l.resize.Active {
		return 0, false
	}
	w := max(l.resize.StartWidth+Width(x-l.resize.StartX), MinWidth)
	l.group(l.resize.Group)[l.resize.Index] = w
	return w, true
}

// EndResize returns to Idle. It reports whether a gesture was active.
func (l *Layout) EndResize() bool {
	if !l.resize.Active {
		return false
	}
	l.resize = Resize{}
	return true
}

// Resizing reports the active gesture, if any.
func (l *Layout) Resizing() (Resize, bool) {
	return l.resize, l.resize.Active
}
