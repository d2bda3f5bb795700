package table

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DefaultRowsPerPageOptions are the page sizes offered by the selector.
var DefaultRowsPerPageOptions = []int{2, 5, 10, 15}

const (
	defaultRowsPerPage = 5
	defaultCellPx      = 10
	searchWidth        = 20
)

// Config configures a table. Filters, pagination and search are off by
// default. When OnEdit or OnDelete is set an Actions column is rendered;
// callbacks receive the row's index within the rendered page.
type Config struct {
	Columns          []Column
	Rows             []Row
	WithColumnFilter bool
	WithPagination   bool
	WithSearch       bool
	OnEdit           func(rowIndex int)
	OnDelete         func(rowIndex int)

	RowsPerPage        int
	RowsPerPageOptions []int
	DefaultWidth       Width
	CellPx             int
	KeyMap             *KeyMap
}

// Model is an embeddable Bubble Tea component. All state changes happen
// inside Update on the program goroutine.
type Model struct {
	id      string
	columns []Column
	rows    []Row
	rowsGen uint64
	colsGen uint64

	withColumnFilter bool
	withPagination   bool
	withSearch       bool
	onEdit           func(int)
	onDelete         func(int)
	rppOptions       []int
	cellPx           int

	settings Settings
	layout   *Layout
	pipeline Pipeline
	search   textinput.Model
	keys     KeyMap

	cursor         int
	focusCol       int
	scrollCol      int
	dropdownCursor int
	width          int
}

// New mounts a table: page 1, no sort, all columns visible, every width at
// the default.
func New(cfg Config) *Model {
	rpp := cfg.RowsPerPage
	if rpp < 1 {
		rpp = defaultRowsPerPage
	}
	opts := cfg.RowsPerPageOptions
	if len(opts) == 0 {
		opts = DefaultRowsPerPageOptions
	}
	cellPx := cfg.CellPx
	if cellPx < 1 {
		cellPx = defaultCellPx
	}
	def := cfg.DefaultWidth
	if def == 0 {
		def = DefaultWidth
	}
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}

	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.Placeholder = "Search..."
	ti.Width = searchWidth

	pinned, unpinned := partition(cfg.Columns)
	return &Model{
		id:               uuid.NewString(),
		columns:          cfg.Columns,
		rows:             cfg.Rows,
		rowsGen:          1,
		colsGen:          1,
		withColumnFilter: cfg.WithColumnFilter,
		withPagination:   cfg.WithPagination,
		withSearch:       cfg.WithSearch,
		onEdit:           cfg.OnEdit,
		onDelete:         cfg.OnDelete,
		rppOptions:       append([]int(nil), opts...),
		cellPx:           cellPx,
		settings:         NewSettings(cfg.Columns, rpp),
		layout:           NewLayout(len(pinned), len(unpinned), def),
		search:           ti,
		keys:             keys,
	}
}

func (m *Model) ID() string { return m.id }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Settings() Settings { return m.settings }

func (m *Model) Columns() []Column { return m.columns }

// KeyMap returns the active bindings, for help rendering.
func (m *Model) KeyMap() KeyMap { return m.keys }

// Widths returns the current pixel widths of a column group.
func (m *Model) Widths(g Group) []Width { return m.layout.Widths(g) }

// Resizing reports the active resize gesture, if any.
func (m *Model) Resizing() (Resize, bool) { return m.layout.Resizing() }

// Focused reports whether the search box has keyboard focus.
func (m *Model) Focused() bool { return m.search.Focused() }

// SetSize bounds rendering to width cells; zero means unbounded.
func (m *Model) SetSize(width int) { m.width = width }

// SetRows replaces the row sequence.
func (m *Model) SetRows(rows []Row) {
	m.rows = rows
	m.rowsGen++
	m.clampCursor()
}

// SetColumns replaces the column set. Existing accessors keep their
// visibility; new accessors start visible. Widths are kept per group index.
func (m *Model) SetColumns(columns []Column) {
	visible := make(map[string]bool, len(columns))
	for _, c := range columns {
		if _, known := findColumn(m.columns, c.Accessor); !known || m.settings.IsVisible(c.Accessor) {
			visible[c.Accessor] = true
		}
	}
	s := m.settings
	s.Visible = visible
	m.settings = s
	m.columns = columns
	m.colsGen++
	pinned, unpinned := partition(columns)
	m.layout.Reset(len(pinned), len(unpinned))
	m.clampFocus()
}

// DerivedRows returns the sorted and search-filtered rows.
func (m *Model) DerivedRows() []Row {
	return m.pipeline.Derive(m.rows, m.rowsGen, m.columns, m.colsGen, m.settings.Sort, m.settings.Search)
}

// PageRows returns the rows actually rendered: the derived rows, windowed
// to the current page when pagination is on.
func (m *Model) PageRows() []Row {
	rows := m.DerivedRows()
	if !m.withPagination {
		return rows
	}
	return Paginate(rows, m.settings.Page, m.settings.RowsPerPage)
}

// PageCount is the number of pages of derived rows.
func (m *Model) PageCount() int {
	return PageCount(len(m.DerivedRows()), m.settings.RowsPerPage)
}

// CanPrevPage and CanNextPage drive the pager's disabled states.
func (m *Model) CanPrevPage() bool { return m.settings.Page > 1 }

func (m *Model) CanNextPage() bool { return m.settings.Page < max(1, m.PageCount()) }

// RequestSort sorts by accessor as a header click would. Unknown and
// non-sortable columns are ignored.
func (m *Model) RequestSort(accessor string) {
	col, ok := findColumn(m.columns, accessor)
	if !ok {
		return
	}
	m.settings = m.settings.RequestSort(col)
}

func (m *Model) ToggleColumn(accessor string) {
	m.settings = m.settings.ToggleColumn(accessor)
	m.clampFocus()
}

// SetSearch replaces the search term and mirrors it into the search box.
func (m *Model) SetSearch(text string) {
	m.search.SetValue(text)
	m.settings = m.settings.SetSearch(text)
	m.clampCursor()
}

func (m *Model) SetRowsPerPage(n int) {
	m.settings = m.settings.SetRowsPerPage(n)
	m.clampCursor()
}

// SetPage assigns the page directly, without clamping.
func (m *Model) SetPage(p int) {
	m.settings = m.settings.SetPage(p)
	m.clampCursor()
}

func (m *Model) NextPage() {
	m.settings = m.settings.StepPage(1, m.PageCount())
	m.clampCursor()
}

func (m *Model) PrevPage() {
	m.settings = m.settings.StepPage(-1, m.PageCount())
	m.clampCursor()
}

func (m *Model) ToggleDropdown() {
	m.settings = m.settings.ToggleDropdown()
	m.dropdownCursor = 0
}

// Edit invokes the edit callback for the row at index within the rendered
// page and emits a RowActionMsg.
func (m *Model) Edit(index int) tea.Cmd { return m.rowAction(ActionEdit, index) }

// Delete invokes the delete callback for the row at index within the
// rendered page and emits a RowActionMsg.
func (m *Model) Delete(index int) tea.Cmd { return m.rowAction(ActionDelete, index) }

func (m *Model) hasActions() bool { return m.onEdit != nil || m.onDelete != nil }

func (m *Model) rowAction(action RowAction, index int) tea.Cmd {
	fn := m.onEdit
	if action == ActionDelete {
		fn = m.onDelete
	}
	if fn == nil {
		return nil
	}
	fn(index)
	id := m.id
	return func() tea.Msg {
		return RowActionMsg{TableID: id, Action: action, Index: index}
	}
}

// Update handles mouse, key and search-box messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.layout.DragTo(msg.X * m.cellPx)
		return nil
	case tea.MouseActionRelease:
		m.layout.EndResize()
		return nil
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		// A press while a gesture is live means its release was lost;
		// tear the gesture down before handling the new press.
		m.layout.EndResize()
		return m.press(msg.X, msg.Y)
	}
	return nil
}

func (m *Model) press(x, y int) tea.Cmd {
	_, regions := m.render()
	r, ok := hitTest(regions, x, y)
	if !ok {
		if m.search.Focused() {
			m.search.Blur()
		}
		return nil
	}
	if r.kind != regionSearch && m.search.Focused() {
		m.search.Blur()
	}
	switch r.kind {
	case regionSearch:
		return m.search.Focus()
	case regionRowsPrev:
		m.stepRowsPerPage(-1)
	case regionRowsNext:
		m.stepRowsPerPage(1)
	case regionPagePrev:
		m.PrevPage()
	case regionPageNext:
		m.NextPage()
	case regionDropdownButton:
		m.ToggleDropdown()
	case regionDropdownItem:
		m.dropdownCursor = r.index
		m.ToggleColumn(r.accessor)
	case regionHandle:
		m.layout.BeginResize(r.group, r.index, x*m.cellPx)
	case regionHeader:
		m.focusCol = r.slot
		m.RequestSort(r.accessor)
	case regionCell:
		m.cursor = r.row
	case regionEdit:
		m.cursor = r.row
		return m.Edit(r.row)
	case regionDelete:
		m.cursor = r.row
		return m.Delete(r.row)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.search.Focused() {
		if key.Matches(msg, m.keys.Blur) {
			m.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if v := m.search.Value(); v != m.settings.Search {
			m.settings = m.settings.SetSearch(v)
			m.clampCursor()
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		if m.withSearch {
			return m.search.Focus()
		}
	case key.Matches(msg, m.keys.ColumnLeft):
		m.focusCol--
		m.clampFocus()
	case key.Matches(msg, m.keys.ColumnRight):
		m.focusCol++
		m.clampFocus()
	case key.Matches(msg, m.keys.Sort):
		if slot, ok := m.focusedSlot(); ok {
			m.settings = m.settings.RequestSort(slot.col)
		}
	case key.Matches(msg, m.keys.PrevPage):
		if m.withPagination {
			m.PrevPage()
		}
	case key.Matches(msg, m.keys.NextPage):
		if m.withPagination {
			m.NextPage()
		}
	case key.Matches(msg, m.keys.FewerRows):
		if m.withPagination {
			m.stepRowsPerPage(-1)
		}
	case key.Matches(msg, m.keys.MoreRows):
		if m.withPagination {
			m.stepRowsPerPage(1)
		}
	case key.Matches(msg, m.keys.Columns):
		if m.withColumnFilter {
			m.ToggleDropdown()
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.settings.DropdownOpen && m.dropdownCursor < len(m.columns) {
			m.ToggleColumn(m.columns[m.dropdownCursor].Accessor)
		}
	case key.Matches(msg, m.keys.Up):
		if m.settings.DropdownOpen {
			m.dropdownCursor = max(0, m.dropdownCursor-1)
		} else {
			m.cursor--
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Down):
		if m.settings.DropdownOpen {
			m.dropdownCursor = min(max(0, len(m.columns)-1), m.dropdownCursor+1)
		} else {
			m.cursor++
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Edit):
		if len(m.PageRows()) > 0 {
			return m.Edit(m.cursor)
		}
	case key.Matches(msg, m.keys.Delete):
		if len(m.PageRows()) > 0 {
			return m.Delete(m.cursor)
		}
	case key.Matches(msg, m.keys.Shrink):
		m.nudgeFocused(-m.cellPx)
	case key.Matches(msg, m.keys.Grow):
		m.nudgeFocused(m.cellPx)
	case key.Matches(msg, m.keys.ScrollLeft):
		m.scrollCol = max(0, m.scrollCol-1)
	case key.Matches(msg, m.keys.ScrollRight):
		m.scrollCol = min(m.scrollCol+1, max(0, m.visibleUnpinnedCount()-1))
	default:
		if n, ok := digit(msg); ok && m.settings.DropdownOpen && n <= len(m.columns) {
			m.dropdownCursor = n - 1
			m.ToggleColumn(m.columns[n-1].Accessor)
		}
	}
	return nil
}

func digit(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}

// nudgeFocused runs a complete resize gesture on the focused column in one
// step. It is skipped while a pointer gesture is active.
func (m *Model) nudgeFocused(delta int) {
	slot, ok := m.focusedSlot()
	if !ok {
		return
	}
	if !m.layout.BeginResize(slot.group, slot.index, 0) {
		return
	}
	m.layout.DragTo(delta)
	m.layout.EndResize()
}

func (m *Model) stepRowsPerPage(dir int) {
	cur := m.settings.RowsPerPage
	if dir < 0 {
		for i := len(m.rppOptions) - 1; i >= 0; i-- {
			if m.rppOptions[i] < cur {
				m.SetRowsPerPage(m.rppOptions[i])
				return
			}
		}
		return
	}
	for _, n := range m.rppOptions {
		if n > cur {
			m.SetRowsPerPage(n)
			return
		}
	}
}

func (m *Model) canFewerRows() bool {
	for _, n := range m.rppOptions {
		if n < m.settings.RowsPerPage {
			return true
		}
	}
	return false
}

func (m *Model) canMoreRows() bool {
	for _, n := range m.rppOptions {
		if n > m.settings.RowsPerPage {
			return true
		}
	}
	return false
}

func (m *Model) clampCursor() {
	n := len(m.PageRows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clampFocus() {
	n := len(m.visibleSlots())
	if m.focusCol >= n {
		m.focusCol = n - 1
	}
	if m.focusCol < 0 {
		m.focusCol = 0
	}
	m.scrollCol = min(m.scrollCol, max(0, m.visibleUnpinnedCount()-1))
}

func (m *Model) focusedSlot() (slot, bool) {
	slots := m.visibleSlots()
	if m.focusCol < 0 || m.focusCol >= len(slots) {
		return slot{}, false
	}
	return slots[m.focusCol], true
}
