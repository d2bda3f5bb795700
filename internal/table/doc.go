// Package table implements an interactive data table for Bubble Tea programs.
//
// The table is split into four cooperating parts:
//
//   - Settings: the interactive state (page, rows per page, sort, visible
//     columns, search term, column dropdown) replaced as a whole value by
//     named operations.
//   - Pipeline: sort, then search-filter, then paginate. Each stage is a
//     pure function; the sort and filter stages are cached and only rerun
//     when their direct inputs change.
//   - Layout: per-column pixel widths for the pinned and unpinned column
//     groups, plus the drag-to-resize gesture state machine.
//   - Model: Bubble Tea glue. It renders the control bar, header and body,
//     and hit-tests mouse events against exactly the geometry it renders.
//
// Widths are tracked in pixels. The renderer maps them to terminal cells
// with Config.CellPx and converts mouse columns back to pixels before they
// reach the resize protocol.
//
// Invalid configuration is never reported: unknown sort keys, duplicate
// accessors and empty column lists simply render with no visible effect.
package table
