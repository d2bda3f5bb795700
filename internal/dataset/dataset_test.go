package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/datatable/internal/table"
)

func TestReference(t *testing.T) {
	ds := Reference()
	require.Len(t, ds.Columns, 4)
	require.Len(t, ds.Rows, 6)
	require.Equal(t, "Jane Smith", ds.Rows[1]["name"])
	require.False(t, ds.Columns[3].Sortable)
}

func TestPin(t *testing.T) {
	ds := Reference()
	pinned, unknown := ds.Pin("email", "emial")
	require.Equal(t, []string{"emial"}, unknown)
	require.True(t, pinned.Columns[2].Pinned)
	// receiver untouched
	require.False(t, ds.Columns[2].Pinned)
}

func TestParse(t *testing.T) {
	data := []byte(`
[[column]]
header = "City"
accessor = "city"
sortable = true
pinned = true

[[column]]
accessor = "pop"

[[row]]
city = "Melbourne"
pop = 5000000

[[row]]
city = "Hobart"
`)
	ds, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, []table.Column{
		{Header: "City", Accessor: "city", Sortable: true, Pinned: true},
		{Header: "pop", Accessor: "pop"},
	}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	require.Equal(t, int64(5000000), ds.Rows[0]["pop"])
	require.Nil(t, ds.Rows[1].Value("pop"))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"syntax", "[[column]\n"},
		{"no columns", "[[row]]\nx = 1\n"},
		{"missing accessor", "[[column]]\nheader = \"X\"\n"},
		{"unknown key", "[[column]]\naccessor = \"x\"\nsortabel = true\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			require.Error(t, err)
		})
	}
}

func TestEncodeThenLoad(t *testing.T) {
	t.Parallel()
	data, err := Encode(Reference())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "people.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Reference().Columns, ds.Columns)
	require.Len(t, ds.Rows, 6)
	require.Equal(t, "dave@example.com", ds.Rows[5]["email"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestSuggest(t *testing.T) {
	cols := Reference().Columns
	require.Equal(t, "email", Suggest("emial", cols))
	require.Equal(t, "name", Suggest("Nmae", cols))
	require.Equal(t, "", Suggest("salary", cols))
	require.Equal(t, "", Suggest("x", nil))
}

func TestKeyed(t *testing.T) {
	ds := Reference()
	ds.Rows[0][KeyField] = "fixed"
	keyed := ds.Keyed()

	k, ok := Key(keyed.Rows[0])
	require.True(t, ok)
	require.Equal(t, "fixed", k)

	seen := map[string]bool{}
	for _, r := range keyed.Rows {
		k, ok := Key(r)
		require.True(t, ok)
		require.False(t, seen[k])
		seen[k] = true
	}
	// source rows are not modified
	_, ok = Key(Reference().Rows[1])
	require.False(t, ok)
	_, ok = ds.Rows[1][KeyField]
	require.False(t, ok)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(50, 7)
	b := Generate(50, 7)
	require.Equal(t, a, b)
	require.Len(t, a.Rows, 50)
	require.Equal(t, Reference().Columns, a.Columns)

	for i, r := range a.Rows {
		require.Equal(t, i+1, r["id"])
		if age, ok := r["age"].(int); ok {
			require.GreaterOrEqual(t, age, 18)
			require.Less(t, age, 78)
		}
	}
	require.NotEqual(t, a.Rows, Generate(50, 8).Rows)
	require.Empty(t, Generate(0, 1).Rows)
}
