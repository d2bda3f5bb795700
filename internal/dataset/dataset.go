// Package dataset supplies rows and columns for the demo table: a built-in
// reference set, TOML dataset files, and helpers for checking accessors
// named on the command line.
package dataset

import (
	"github.com/google/uuid"

	"github.com/jask/datatable/internal/table"
)

// Dataset is a column set together with its rows.
type Dataset struct {
	Columns []table.Column
	Rows    []table.Row
}

// Reference returns the six-person dataset used by the demo and tests.
// Email is declared sortable but not pinned; callers pin it with Pin.
func Reference() Dataset {
	return Dataset{
		Columns: []table.Column{
			{Header: "ID", Accessor: "id", Sortable: true},
			{Header: "Name", Accessor: "name", Sortable: true},
			{Header: "Email", Accessor: "email", Sortable: true},
			{Header: "Age", Accessor: "age"},
		},
		Rows: []table.Row{
			{"id": 1, "name": "John Doe", "email": "john@example.com", "age": 28},
			{"id": 2, "name": "Jane Smith", "email": "jane@example.com", "age": 34},
			{"id": 3, "name": "Bob Johnson", "email": "bob@example.com", "age": 45},
			{"id": 4, "name": "Alice Brown", "email": "alice@example.com", "age": 23},
			{"id": 5, "name": "Charlie Black", "email": "charlie@example.com", "age": 30},
			{"id": 6, "name": "Dave White", "email": "dave@example.com", "age": 40},
		},
	}
}

// Pin returns a copy of ds with the named accessors pinned. Accessors that
// match no column are returned as unknown.
func (ds Dataset) Pin(accessors ...string) (Dataset, []string) {
	cols := make([]table.Column, len(ds.Columns))
	copy(cols, ds.Columns)
	var unknown []string
	for _, a := range accessors {
		found := false
		for i := range cols {
			if cols[i].Accessor == a {
				cols[i].Pinned = true
				found = true
			}
		}
		if !found {
			unknown = append(unknown, a)
		}
	}
	return Dataset{Columns: cols, Rows: ds.Rows}, unknown
}

// Has reports whether any column uses accessor.
func (ds Dataset) Has(accessor string) bool {
	for _, c := range ds.Columns {
		if c.Accessor == accessor {
			return true
		}
	}
	return false
}

// KeyField is the row field that carries a row's identity for deletion. It
// is never a column, so it is neither rendered nor searched.
const KeyField = "_key"

// Keyed returns a copy of ds in which every row carries a KeyField. Rows
// that already have one keep it; the rest get a random uuid.
func (ds Dataset) Keyed() Dataset {
	rows := make([]table.Row, len(ds.Rows))
	for i, r := range ds.Rows {
		cp := make(table.Row, len(r)+1)
		for k, v := range r {
			cp[k] = v
		}
		if _, ok := cp[KeyField]; !ok {
			cp[KeyField] = uuid.NewString()
		}
		rows[i] = cp
	}
	return Dataset{Columns: ds.Columns, Rows: rows}
}

// Key returns the row's KeyField value.
func Key(r table.Row) (string, bool) {
	k, ok := r.Value(KeyField).(string)
	return k, ok && k != ""
}
