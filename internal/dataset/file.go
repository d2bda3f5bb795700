package dataset

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jask/datatable/internal/table"
)

// fileColumn and the row tables mirror the on-disk layout:
//
//	[[column]]
//	header = "Name"
//	accessor = "name"
//	sortable = true
//
//	[[row]]
//	name = "John Doe"
type fileColumn struct {
	Header   string `toml:"header"`
	Accessor string `toml:"accessor"`
	Sortable bool   `toml:"sortable"`
	Pinned   bool   `toml:"pinned"`
}

type file struct {
	Column []fileColumn      `toml:"column"`
	Row    []map[string]any `toml:"row"`
}

// Load reads a TOML dataset file.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes TOML dataset bytes. Columns need an accessor; a missing
// header defaults to the accessor. Unknown column keys are rejected so a
// typo like "sortabel" does not pass silently.
func Parse(data []byte) (Dataset, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Dataset{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if len(f.Column) == 0 {
		return Dataset{}, fmt.Errorf("no columns defined")
	}

	ds := Dataset{
		Columns: make([]table.Column, 0, len(f.Column)),
		Rows:    make([]table.Row, 0, len(f.Row)),
	}
	for i, c := range f.Column {
		if c.Accessor == "" {
			return Dataset{}, fmt.Errorf("column[%d]: accessor is required", i)
		}
		header := c.Header
		if header == "" {
			header = c.Accessor
		}
		ds.Columns = append(ds.Columns, table.Column{
			Header:   header,
			Accessor: c.Accessor,
			Sortable: c.Sortable,
			Pinned:   c.Pinned,
		})
	}
	for _, r := range f.Row {
		ds.Rows = append(ds.Rows, table.Row(r))
	}
	return ds, nil
}

// Encode renders ds in the format Parse reads.
func Encode(ds Dataset) ([]byte, error) {
	f := file{
		Column: make([]fileColumn, len(ds.Columns)),
		Row:    make([]map[string]any, len(ds.Rows)),
	}
	for i, c := range ds.Columns {
		f.Column[i] = fileColumn{Header: c.Header, Accessor: c.Accessor, Sortable: c.Sortable, Pinned: c.Pinned}
	}
	for i, r := range ds.Rows {
		f.Row[i] = map[string]any(r)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return buf.Bytes(), nil
}
