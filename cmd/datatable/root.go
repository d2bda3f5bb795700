package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jask/datatable/internal/config"
	"github.com/jask/datatable/internal/database"
	"github.com/jask/datatable/internal/dataset"
	"github.com/jask/datatable/internal/table"
	"github.com/jask/datatable/internal/tui"
)

type flags struct {
	configPath   string
	dataPath     string
	dbPath       string
	story        string
	search       bool
	paginate     bool
	columnFilter bool
	actions      bool
	rowsPerPage  int
	sort         string
	pin          []string
	generate     int
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "datatable",
		Short: "Browse a dataset in an interactive terminal table.",
		Example: `
datatable --story complete
datatable --data people.toml --search --paginate --pin email
datatable --db people.db --actions --sort name
`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, f)
		},
	}

	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	fl := cmd.Flags()
	fl.StringVar(&f.dataPath, "data", "", "TOML dataset file")
	fl.StringVar(&f.dbPath, "db", "", "sqlite database; created and seeded when missing")
	fl.StringVar(&f.story, "story", "", "feature preset: "+storyNames())
	fl.BoolVar(&f.search, "search", false, "show the search box")
	fl.BoolVar(&f.paginate, "paginate", false, "paginate rows")
	fl.BoolVar(&f.columnFilter, "column-filter", false, "show the column picker")
	fl.BoolVar(&f.actions, "actions", false, "show Edit and Delete row actions")
	fl.IntVar(&f.rowsPerPage, "rows-per-page", 0, "initial rows per page")
	fl.StringVar(&f.sort, "sort", "", "initial sort column accessor")
	fl.StringSliceVar(&f.pin, "pin", nil, "column accessors to pin")
	fl.IntVar(&f.generate, "generate", 0, "use n synthetic people instead of the reference rows")

	cmd.AddCommand(newDumpCmd(), newConfigCmd(&f.configPath))
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, f *flags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	opts, err := resolve(cfg, f, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	dataPath, dbPath := cfg.Data.Path, cfg.Data.DBPath
	if cmd.Flags().Changed("data") {
		dataPath = f.dataPath
	}
	if cmd.Flags().Changed("db") {
		dbPath = f.dbPath
	}
	src, cleanup, err := openSource(ctx, dataPath, dbPath, f.generate)
	if err != nil {
		return err
	}
	defer cleanup()
	logger.Info("starting", "data", dataPath, "db", dbPath, "story", f.story)

	p := tea.NewProgram(tui.New(ctx, src, opts, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// resolve layers config, story preset and explicitly set flags, in that
// order.
func resolve(cfg config.Config, f *flags, changed func(string) bool) (tui.Options, error) {
	opts := tui.Options{
		Table: table.Config{
			WithSearch:         cfg.Table.WithSearch,
			WithPagination:     cfg.Table.WithPagination,
			WithColumnFilter:   cfg.Table.WithColumnFilter,
			RowsPerPage:        cfg.Table.RowsPerPage,
			RowsPerPageOptions: cfg.Table.RowsPerPageOptions,
			DefaultWidth:       table.Width(cfg.Table.DefaultWidth),
			CellPx:             cfg.Table.CellPx,
		},
		Actions: cfg.Table.WithActions,
	}
	if f.story != "" {
		s, err := lookupStory(f.story)
		if err != nil {
			return tui.Options{}, err
		}
		s.apply(&opts)
		opts.Title = "datatable · " + f.story
	}
	if changed("search") {
		opts.Table.WithSearch = f.search
	}
	if changed("paginate") {
		opts.Table.WithPagination = f.paginate
	}
	if changed("column-filter") {
		opts.Table.WithColumnFilter = f.columnFilter
	}
	if changed("actions") {
		opts.Actions = f.actions
	}
	if changed("rows-per-page") {
		opts.Table.RowsPerPage = f.rowsPerPage
	}
	if changed("sort") {
		opts.Sort = f.sort
	}
	if changed("pin") {
		opts.Pin = f.pin
	}
	return opts, nil
}

func openSource(ctx context.Context, dataPath, dbPath string, generate int) (tui.Source, func(), error) {
	noop := func() {}
	switch {
	case dbPath != "":
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, noop, fmt.Errorf("mkdir db dir: %w", err)
		}
		db, err := database.Open(dbPath)
		if err != nil {
			return nil, noop, err
		}
		if err := database.RunMigrationsWithDB(db); err != nil {
			db.Close()
			return nil, noop, err
		}
		if err := database.SeedReference(ctx, db); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("seed: %w", err)
		}
		return tui.NewDBSource(db), func() { db.Close() }, nil
	case dataPath != "":
		ds, err := dataset.Load(dataPath)
		if err != nil {
			return nil, noop, err
		}
		return tui.NewMemorySource(ds), noop, nil
	case generate > 0:
		return tui.NewMemorySource(dataset.Generate(generate, time.Now().UnixNano())), noop, nil
	default:
		return tui.NewMemorySource(dataset.Reference()), noop, nil
	}
}

// newLogger returns a logger writing to cfg.File, or a discarding one when
// no file is set; the terminal belongs to the TUI.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	if cfg.File == "" {
		l := log.New(io.Discard)
		l.SetLevel(level)
		return l, func() {}, nil
	}
	fh, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := log.NewWithOptions(fh, log.Options{
		Prefix:          "datatable",
		Level:           level,
		ReportTimestamp: true,
	})
	return l, func() { fh.Close() }, nil
}
