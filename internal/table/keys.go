package table

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the table's keyboard bindings. Every mouse interaction has a
// keyboard equivalent.
type KeyMap struct {
	Search      key.Binding
	Blur        key.Binding
	ColumnLeft  key.Binding
	ColumnRight key.Binding
	Sort        key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	FewerRows   key.Binding
	MoreRows    key.Binding
	Columns     key.Binding
	Toggle      key.Binding
	Up          key.Binding
	Down        key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Shrink      key.Binding
	Grow        key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:        key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "done")),
		ColumnLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		ColumnRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		PrevPage:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page")),
		NextPage:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
		FewerRows:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer rows")),
		MoreRows:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more rows")),
		Columns:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "columns")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Shrink:      key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "narrower")),
		Grow:        key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "wider")),
		ScrollLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "scroll left")),
		ScrollRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "scroll right")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Sort, k.PrevPage, k.NextPage, k.Columns, k.Edit, k.Delete}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Blur, k.Sort, k.ColumnLeft, k.ColumnRight},
		{k.PrevPage, k.NextPage, k.FewerRows, k.MoreRows},
		{k.Columns, k.Toggle, k.Up, k.Down, k.Edit, k.Delete},
		{k.Shrink, k.Grow, k.ScrollLeft, k.ScrollRight},
	}
}
