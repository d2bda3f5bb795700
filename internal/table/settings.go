package table

// SortDirection orders the sort stage.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortConfig names the single active sort key.
type SortConfig struct {
	Key       string
	Direction SortDirection
}

// Settings is the interactive, non-layout table state. Operations never
// modify the receiver; each returns the complete next state so callers
// swap it in one assignment.
type Settings struct {
	Page         int
	RowsPerPage  int
	Sort         *SortConfig
	Visible      map[string]bool
	Search       string
	DropdownOpen bool
}

// NewSettings returns the mount-time state: page 1, no sort, every declared
// column visible, empty search, dropdown closed.
func NewSettings(columns []Column, rowsPerPage int) Settings {
	visible := make(map[string]bool, len(columns))
	for _, c := range columns {
		visible[c.Accessor] = true
	}
	return Settings{
		Page:        1,
		RowsPerPage: rowsPerPage,
		Visible:     visible,
	}
}

// RequestSort applies a header click. Non-sortable columns are ignored.
// A new key sorts ascending, a second click flips to descending, and
// further clicks leave it descending.
func (s Settings) RequestSort(col Column) Settings {
	if !col.Sortable {
		return s
	}
	next := SortConfig{Key: col.Accessor, Direction: Ascending}
	if s.Sort != nil && s.Sort.Key == col.Accessor {
		next.Direction = Descending
	}
	s.Sort = &next
	return s
}

// ToggleColumn flips accessor's membership in the visible set. Hiding the
// last visible column is allowed.
func (s Settings) ToggleColumn(accessor string) Settings {
	visible := make(map[string]bool, len(s.Visible)+1)
	for k, v := range s.Visible {
		if v {
			visible[k] = true
		}
	}
	if visible[accessor] {
		delete(visible, accessor)
	} else {
		visible[accessor] = true
	}
	s.Visible = visible
	return s
}

// SetSearch stores text verbatim. The current page is left alone, so a
// narrower search can leave Page past the last page until the user steps.
func (s Settings) SetSearch(text string) Settings {
	s.Search = text
	return s
}

// SetRowsPerPage replaces the page size without clamping Page. Values
// below one are ignored.
func (s Settings) SetRowsPerPage(n int) Settings {
	if n < 1 {
		return s
	}
	s.RowsPerPage = n
	return s
}

// SetPage assigns p without clamping.
func (s Settings) SetPage(p int) Settings {
	s.Page = p
	return s
}

// StepPage moves delta pages and clamps into [1, max(1, pageCount)].
func (s Settings) StepPage(delta, pageCount int) Settings {
	s.Page = clampPage(s.Page+delta, pageCount)
	return s
}

func (s Settings) ToggleDropdown() Settings {
	s.DropdownOpen = !s.DropdownOpen
	return s
}

func (s Settings) IsVisible(accessor string) bool { return s.Visible[accessor] }

// VisibleCount counts visible accessors among columns.
func (s Settings) VisibleCount(columns []Column) int {
	n := 0
	for _, c := range columns {
		if s.Visible[c.Accessor] {
			n++
		}
	}
	return n
}

func clampPage(p, pageCount int) int {
	last := max(1, pageCount)
	if p < 1 {
		return 1
	}
	if p > last {
		return last
	}
	return p
}
