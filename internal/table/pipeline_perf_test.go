//go:build heavy

package table

import (
	"fmt"
	"sort"
	"testing"
	"time"
)

func TestDerivePerformance10kP95(t *testing.T) {
	rows := make([]Row, 10_000)
	for i := range rows {
		rows[i] = Row{
			"id":    i + 1,
			"name":  fmt.Sprintf("person %d", (i*7919)%10_000),
			"email": fmt.Sprintf("p%d@example.com", i),
			"age":   18 + i%60,
		}
	}
	cols := referenceColumns()

	runs := 60
	durations := make([]time.Duration, 0, runs)
	for i := 0; i < runs; i++ {
		var p Pipeline
		dir := Ascending
		if i%2 == 1 {
			dir = Descending
		}
		start := time.Now()
		out := p.Derive(rows, 1, cols, 1, &SortConfig{Key: "name", Direction: dir}, "99")
		_ = Paginate(out, 1, 15)
		durations = append(durations, time.Since(start))
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	p95 := durations[int(float64(len(durations)-1)*0.95)]
	if p95 > 100*time.Millisecond {
		t.Fatalf("derive p95=%s exceeds 100ms target", p95)
	}
}
