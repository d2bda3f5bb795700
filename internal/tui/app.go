// Package tui hosts a data table in a full-screen Bubble Tea program.
package tui

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/datatable/internal/dataset"
	"github.com/jask/datatable/internal/table"
	"github.com/jask/datatable/internal/theme"
	"github.com/jask/datatable/internal/widgets"
)

// The table is drawn inside a widgets.Box: one border line and a title line
// above it, a border and one cell of padding to its left.
const (
	frameX = 2
	frameY = 2
)

// Options configures the hosted table. Columns and rows in Table are
// ignored; they come from the Source.
type Options struct {
	Title   string
	Table   table.Config
	Actions bool
	Sort    string
	Pin     []string
}

// App ties the table to its data source.
type App struct {
	ctx    context.Context
	source Source
	log    *log.Logger
	opts   Options
	table  *table.Model
	help   help.Model
	keys   keyMap

	status    string
	statusErr bool
	width     int
	height    int
	loaded    bool
	pending   []tea.Cmd
}

func New(ctx context.Context, source Source, opts Options, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Title == "" {
		opts.Title = "datatable"
	}
	a := &App{
		ctx:    ctx,
		source: source,
		log:    logger,
		opts:   opts,
		help:   help.New(),
	}
	cfg := opts.Table
	cfg.Columns, cfg.Rows = nil, nil
	if opts.Actions {
		cfg.OnEdit = a.onEdit
		cfg.OnDelete = a.onDelete
	}
	a.table = table.New(cfg)
	a.keys = newKeyMap(a.table.KeyMap())
	return a
}

// Table exposes the hosted table.
func (a *App) Table() *table.Model { return a.table }

// Status returns the status line text.
func (a *App) Status() string { return a.status }

func (a *App) Init() tea.Cmd {
	return a.loadCmd()
}

func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ds, err := a.source.Load(a.ctx)
		if err != nil {
			return errMsg{fmt.Errorf("load rows: %w", err)}
		}
		return datasetMsg(ds)
	}
}

func (a *App) deleteCmd(row table.Row) tea.Cmd {
	return func() tea.Msg {
		if err := a.source.Delete(a.ctx, row); err != nil {
			return errMsg{err}
		}
		return deletedMsg{row: row}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.table.SetSize(max(0, m.Width-2*frameX))
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if !a.table.Focused() {
			switch {
			case key.Matches(m, a.keys.Quit):
				return a, tea.Quit
			case key.Matches(m, a.keys.Help):
				a.help.ShowAll = !a.help.ShowAll
				return a, nil
			case key.Matches(m, a.keys.Reload):
				a.setStatus("reloading...")
				return a, a.loadCmd()
			}
		}
	case tea.MouseMsg:
		m.X -= frameX
		m.Y -= frameY
		msg = m
	case datasetMsg:
		a.apply(dataset.Dataset(m))
		return a, nil
	case deletedMsg:
		a.log.Info("row deleted", "row", a.describe(m.row))
		a.setStatus("deleted " + a.describe(m.row))
		return a, a.loadCmd()
	case table.RowActionMsg:
		if m.TableID == a.table.ID() {
			a.log.Debug("row action", "action", m.Action, "index", m.Index)
		}
		return a, nil
	case errMsg:
		a.log.Error("command failed", "err", m.error)
		a.status = "error: " + m.Error()
		a.statusErr = true
		return a, nil
	}

	cmd := a.table.Update(msg)
	return a, a.flush(cmd)
}

// flush batches cmd with any commands queued by table callbacks during the
// same update.
func (a *App) flush(cmd tea.Cmd) tea.Cmd {
	if len(a.pending) == 0 {
		return cmd
	}
	cmds := append(a.pending, cmd)
	a.pending = nil
	return tea.Batch(cmds...)
}

func (a *App) apply(ds dataset.Dataset) {
	ds, unknown := ds.Pin(a.opts.Pin...)
	if !a.loaded {
		for _, name := range unknown {
			a.warnUnknown("pin", name, ds.Columns)
		}
	}
	if !slices.Equal(a.table.Columns(), ds.Columns) {
		a.table.SetColumns(ds.Columns)
	}
	a.table.SetRows(ds.Rows)
	if !a.loaded && a.opts.Sort != "" {
		if ds.Has(a.opts.Sort) {
			a.table.RequestSort(a.opts.Sort)
		} else {
			a.warnUnknown("sort", a.opts.Sort, ds.Columns)
		}
	}
	a.loaded = true
	a.log.Info("rows loaded", "rows", len(ds.Rows), "columns", len(ds.Columns))
}

func (a *App) warnUnknown(flag, name string, columns []table.Column) {
	hint := dataset.Suggest(name, columns)
	a.log.Warn("unknown column", "flag", flag, "accessor", name, "suggestion", hint)
	msg := fmt.Sprintf("unknown %s column %q", flag, name)
	if hint != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", hint)
	}
	a.status = msg
	a.statusErr = true
}

func (a *App) onEdit(index int) {
	rows := a.table.PageRows()
	if index < 0 || index >= len(rows) {
		return
	}
	a.log.Info("edit requested", "index", index, "row", a.describe(rows[index]))
	a.setStatus(fmt.Sprintf("edit row %d: %s", index, a.describe(rows[index])))
}

func (a *App) onDelete(index int) {
	rows := a.table.PageRows()
	if index < 0 || index >= len(rows) {
		return
	}
	row := rows[index]
	a.setStatus("deleting " + a.describe(row) + "...")
	a.pending = append(a.pending, a.deleteCmd(row))
}

// describe joins a row's column values in declared order.
func (a *App) describe(row table.Row) string {
	parts := make([]string, 0, len(a.table.Columns()))
	for _, c := range a.table.Columns() {
		parts = append(parts, table.Stringify(row.Value(c.Accessor)))
	}
	return strings.Join(parts, ", ")
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) View() string {
	body := a.table.View()
	if !a.loaded {
		body = theme.LabelStyle.Render("loading...")
	}
	out := widgets.Box{Title: a.opts.Title, Content: body}.Render(a.width, max(0, a.height-2))
	if a.status != "" {
		style := theme.StatusStyle
		if a.statusErr {
			style = theme.StatusErr
		}
		out += "\n" + style.Render(a.status)
	}
	return out + "\n" + a.help.View(a.keys)
}

type datasetMsg dataset.Dataset

type deletedMsg struct{ row table.Row }

type errMsg struct{ error }
