package table

// Column describes one table column. Accessor is the column identity and
// the key used to read values out of a Row.
type Column struct {
	Header   string
	Accessor string
	Sortable bool
	Pinned   bool
}

// Row maps column accessors to scalar display values. The table never
// mutates rows.
type Row map[string]any

// Value returns the value stored under accessor, or nil.
func (r Row) Value(accessor string) any {
	if r == nil {
		return nil
	}
	return r[accessor]
}

// partition splits columns into the pinned and unpinned groups, each in
// declared order.
func partition(columns []Column) (pinned, unpinned []Column) {
	for _, c := range columns {
		if c.Pinned {
			pinned = append(pinned, c)
		} else {
			unpinned = append(unpinned, c)
		}
	}
	return pinned, unpinned
}

func findColumn(columns []Column, accessor string) (Column, bool) {
	for _, c := range columns {
		if c.Accessor == accessor {
			return c, true
		}
	}
	return Column{}, false
}
