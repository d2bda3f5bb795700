package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/datatable/internal/config"
	"github.com/jask/datatable/internal/dataset"
	"github.com/jask/datatable/internal/table"
)

func changedSet(names ...string) func(string) bool {
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func baseConfig() config.Config {
	return config.Config{
		Table: config.TableConfig{
			RowsPerPage:        5,
			RowsPerPageOptions: []int{2, 5, 10, 15},
			DefaultWidth:       150,
			CellPx:             10,
			WithSearch:         true,
		},
		Log: config.LogConfig{Level: "info"},
	}
}

func TestResolveUsesConfig(t *testing.T) {
	opts, err := resolve(baseConfig(), &flags{}, changedSet())
	require.NoError(t, err)
	require.True(t, opts.Table.WithSearch)
	require.False(t, opts.Table.WithPagination)
	require.Equal(t, table.Width(150), opts.Table.DefaultWidth)
	require.Equal(t, []int{2, 5, 10, 15}, opts.Table.RowsPerPageOptions)
}

func TestResolveStoryThenFlags(t *testing.T) {
	f := &flags{story: "complete", search: false, rowsPerPage: 10, sort: "name"}
	opts, err := resolve(baseConfig(), f, changedSet("search", "rows-per-page", "sort"))
	require.NoError(t, err)

	require.False(t, opts.Table.WithSearch)
	require.True(t, opts.Table.WithPagination)
	require.True(t, opts.Table.WithColumnFilter)
	require.True(t, opts.Actions)
	require.Equal(t, []string{"email"}, opts.Pin)
	require.Equal(t, 10, opts.Table.RowsPerPage)
	require.Equal(t, "name", opts.Sort)
	require.Contains(t, opts.Title, "complete")
}

func TestResolveUnknownStory(t *testing.T) {
	_, err := resolve(baseConfig(), &flags{story: "fancy"}, changedSet())
	require.ErrorContains(t, err, "unknown story")
}

func TestStoriesPresets(t *testing.T) {
	cases := map[string]func(t *testing.T, s story){
		"default":    func(t *testing.T, s story) { require.Equal(t, story{actions: true}, s) },
		"pagination": func(t *testing.T, s story) { require.True(t, s.pagination) },
		"pinning":    func(t *testing.T, s story) { require.Equal(t, []string{"email"}, s.pin) },
		"filter":     func(t *testing.T, s story) { require.True(t, s.columnFilter) },
		"actions":    func(t *testing.T, s story) { require.True(t, s.actions) },
		"search":     func(t *testing.T, s story) { require.True(t, s.search) },
	}
	for name, check := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := lookupStory(name)
			require.NoError(t, err)
			check(t, s)
		})
	}
}

func TestDumpWritesLoadableDataset(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"dump"})
	require.NoError(t, cmd.Execute())

	ds, err := dataset.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, dataset.Reference().Columns, ds.Columns)

	path := filepath.Join(t.TempDir(), "people.toml")
	cmd = newRootCmd()
	cmd.SetArgs([]string{"dump", "-o", path})
	require.NoError(t, cmd.Execute())
	_, err = dataset.Load(path)
	require.NoError(t, err)
}

func TestOpenSource(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	src, cleanup, err := openSource(ctx, "", "", 0)
	require.NoError(t, err)
	cleanup()
	ds, err := src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 6)

	dbPath := filepath.Join(dir, "nested", "people.db")
	src, cleanup, err = openSource(ctx, "", dbPath, 0)
	require.NoError(t, err)
	ds, err = src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 6)
	cleanup()

	_, _, err = openSource(ctx, filepath.Join(dir, "missing.toml"), "", 0)
	require.Error(t, err)

	src, _, err = openSource(ctx, "", "", 40)
	require.NoError(t, err)
	ds, err = src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 40)
}

func TestDumpGenerated(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"dump", "--rows", "25", "--seed", "3"})
	require.NoError(t, cmd.Execute())

	ds, err := dataset.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, ds.Rows, 25)
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datatable.log")
	logger, closeLog, err := newLogger(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")

	_, _, err = newLogger(config.LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	t.Setenv("DATATABLE_CONFIG", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, buf.String(), path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Table.RowsPerPage)
	require.Equal(t, 150, cfg.Table.DefaultWidth)
	require.Equal(t, "info", cfg.Log.Level)

	cmd = newRootCmd()
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	require.ErrorContains(t, cmd.Execute(), "already exists")
}

func TestConfigInitForceKeepsValues(t *testing.T) {
	t.Setenv("DATATABLE_CONFIG", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[table]\nrows_per_page = 15\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "init", "--config", path, "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "cell_px")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 15, cfg.Table.RowsPerPage)
	require.Equal(t, 10, cfg.Table.CellPx)
}

func TestOpenSourceReopensDatabase(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "people.db")
	for range 2 {
		src, cleanup, err := openSource(ctx, "", dbPath, 0)
		require.NoError(t, err)
		ds, err := src.Load(ctx)
		require.NoError(t, err)
		require.Len(t, ds.Rows, 6)
		cleanup()
	}
}
