package chart

import (
	"cmp"
	"slices"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

// Sort returns a sorted copy of points. The sort is stable so equal keys keep
// dataset order, and SortNone returns the points unchanged.
func Sort[P Point](points []P, mode domain.SortMode) []P {
	out := slices.Clone(points)

	switch mode {
	case domain.SortAscending:
		slices.SortStableFunc(out, func(a, b P) int { return cmp.Compare(a.Amount(), b.Amount()) })
	case domain.SortDescending:
		slices.SortStableFunc(out, func(a, b P) int { return cmp.Compare(b.Amount(), a.Amount()) })
	case domain.SortAlphabetical:
		slices.SortStableFunc(out, func(a, b P) int { return cmp.Compare(a.Name(), b.Name()) })
	}

	return out
}
