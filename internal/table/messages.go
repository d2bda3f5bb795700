package table

// RowAction names the per-row action buttons.
type RowAction string

const (
	ActionEdit   RowAction = "edit"
	ActionDelete RowAction = "delete"
)

// RowActionMsg is emitted after an edit or delete callback runs. Index is
// the row's position in the currently rendered page, not a stable row
// identity: the same index names different rows on different pages or
// under a different sort.
type RowActionMsg struct {
	TableID string
	Action  RowAction
	Index   int
}
