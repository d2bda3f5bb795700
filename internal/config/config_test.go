package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("DATATABLE_CONFIG", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	require.Equal(t, 5, cfg.Table.RowsPerPage)
	require.Equal(t, []int{2, 5, 10, 15}, cfg.Table.RowsPerPageOptions)
	require.Equal(t, 150, cfg.Table.DefaultWidth)
	require.Equal(t, 10, cfg.Table.CellPx)
	require.False(t, cfg.Table.WithSearch)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Data.Path)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[table]
rows_per_page = 10
with_search = true
cell_px = 8

[data]
db_path = "/tmp/people.db"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("DATATABLE_TABLE_CELL_PX", "12")
	t.Setenv("DATATABLE_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Table.RowsPerPage)
	require.True(t, cfg.Table.WithSearch)
	require.Equal(t, 12, cfg.Table.CellPx)
	require.Equal(t, "/tmp/people.db", cfg.Data.DBPath)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadUsesConfigEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[table]\nrows_per_page = 2\n"), 0o644))
	t.Setenv("DATATABLE_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Table.RowsPerPage)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[table\nrows_per_page = "), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("DATATABLE_CONFIG", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	in := Config{
		Table: TableConfig{
			RowsPerPage:        15,
			RowsPerPageOptions: []int{5, 15},
			DefaultWidth:       120,
			CellPx:             10,
			WithPagination:     true,
			WithActions:        true,
		},
		Data: DataConfig{Path: "people.toml"},
		Log:  LogConfig{Level: "warn", File: "datatable.log"},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
