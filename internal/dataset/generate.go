package dataset

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jask/datatable/internal/table"
)

var (
	firstNames = []string{"John", "Jane", "Bob", "Alice", "Charlie", "Dave", "Erin", "Frank", "Grace", "Heidi", "Ivan", "Judy"}
	lastNames  = []string{"Doe", "Smith", "Johnson", "Brown", "Black", "White", "Green", "Clark", "Lewis", "Young"}
)

// Generate builds n synthetic people with the reference columns. The same
// seed always yields the same rows. Roughly one person in ten has no age.
func Generate(n int, seed int64) Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := Dataset{Columns: Reference().Columns, Rows: make([]table.Row, 0, max(0, n))}
	for i := 0; i < n; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		row := table.Row{
			"id":    i + 1,
			"name":  first + " " + last,
			"email": fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
		}
		if rng.Intn(10) > 0 {
			row["age"] = 18 + rng.Intn(60)
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}
