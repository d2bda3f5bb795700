package dataset

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/datatable/internal/table"
)

// Suggest returns the accessor closest to name by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func Suggest(name string, columns []table.Column) string {
	best, bestDist := "", -1
	target := strings.ToLower(name)
	for _, c := range columns {
		dist := levenshtein.ComputeDistance(target, strings.ToLower(c.Accessor))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c.Accessor, dist
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/2) {
		return ""
	}
	return best
}
