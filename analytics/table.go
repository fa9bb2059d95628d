// Package analytics turns a store view into result tables.
// Every aggregator is a pure function of its input: it never mutates the view
// and returns a fresh table, empty when there is no data.
package analytics

import (
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"
)

// NameCount is the generic (key, count) row, used for per sender tallies
// and frequency histograms.
type NameCount struct {
	Name  string
	Count int
}

// countByFirstSeen tallies keys and sorts them by count descending,
// keys of equal count keeping the order in which they first appeared.
func countByFirstSeen(keys []string) []NameCount {
	counts := lo.CountValues(keys)
	rows := lo.Map(lo.Uniq(keys), func(k string, _ int) NameCount {
		return NameCount{Name: k, Count: counts[k]}
	})
	slices.SortStableFunc(rows, func(a, b NameCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return rows
}

// countByName tallies keys and sorts them by count descending, then by name.
func countByName(keys []string) []NameCount {
	rows := lo.MapToSlice(lo.CountValues(keys), func(k string, c int) NameCount {
		return NameCount{Name: k, Count: c}
	})
	slices.SortFunc(rows, func(a, b NameCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Name, b.Name))
	})
	return rows
}

func sum(rows []NameCount) int {
	return lo.SumBy(rows, func(r NameCount) int { return r.Count })
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
