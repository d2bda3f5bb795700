package table

import (
	"sort"
	"strings"
)

// SortRows returns a sorted copy of rows. A nil config returns an
// unsorted copy. The sort is stable, so equal keys keep insertion order.
func SortRows(rows []Row, cfg *SortConfig) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	if cfg == nil {
		return out
	}
	key := cfg.Key
	desc := cfg.Direction == Descending
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Value(key), out[j].Value(key)
		if desc {
			return Less(b, a)
		}
		return Less(a, b)
	})
	return out
}

// FilterRows keeps rows where any column's value contains term,
// case-insensitively. Hidden columns are searched too. An empty term keeps
// every row.
func FilterRows(rows []Row, columns []Column, term string) []Row {
	if term == "" {
		out := make([]Row, len(rows))
		copy(out, rows)
		return out
	}
	q := strings.ToLower(term)
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if matchesSearch(r, columns, q) {
			out = append(out, r)
		}
	}
	return out
}

func matchesSearch(r Row, columns []Column, lowered string) bool {
	for _, c := range columns {
		if strings.Contains(strings.ToLower(Stringify(r.Value(c.Accessor))), lowered) {
			return true
		}
	}
	return false
}

// Paginate returns the window [(page-1)*rowsPerPage, page*rowsPerPage)
// clipped to rows. Pages past the end yield an empty slice.
func Paginate(rows []Row, page, rowsPerPage int) []Row {
	if rowsPerPage < 1 || page < 1 {
		return nil
	}
	start := (page - 1) * rowsPerPage
	if start >= len(rows) {
		return nil
	}
	end := min(start+rowsPerPage, len(rows))
	return rows[start:end]
}

// PageCount is ceil(n / rowsPerPage).
func PageCount(n, rowsPerPage int) int {
	if rowsPerPage < 1 || n <= 0 {
		return 0
	}
	return (n + rowsPerPage - 1) / rowsPerPage
}

// Pipeline caches the sort and filter stages. Rows and columns are
// identified by generation numbers that the owner bumps whenever it
// replaces them.
type Pipeline struct {
	sortStamp   sortStamp
	sorted      []Row
	sortedGen   uint64
	filterStamp filterStamp
	filtered    []Row
	sortRuns    int
	filterRuns  int
}

type sortStamp struct {
	valid   bool
	rowsGen uint64
	hasSort bool
	sort    SortConfig
}

type filterStamp struct {
	valid     bool
	sortedGen uint64
	colsGen   uint64
	term      string
}

// Derive returns the sorted and filtered rows, rerunning a stage only when
// its inputs changed since the previous call.
func (p *Pipeline) Derive(rows []Row, rowsGen uint64, columns []Column, colsGen uint64, cfg *SortConfig, term string) []Row {
	st := sortStamp{valid: true, rowsGen: rowsGen}
	if cfg != nil {
		st.hasSort = true
		st.sort = *cfg
	}
	if st != p.sortStamp {
		p.sorted = SortRows(rows, cfg)
		p.sortStamp = st
		p.sortedGen++
		p.sortRuns++
	}

	ft := filterStamp{valid: true, sortedGen: p.sortedGen, colsGen: colsGen, term: term}
	if ft != p.filterStamp {
		p.filtered = FilterRows(p.sorted, columns, term)
		p.filterStamp = ft
		p.filterRuns++
	}
	return p.filtered
}
