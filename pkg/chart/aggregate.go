package chart

import "github.com/de-tools/chart-atlas/pkg/models/domain"

// Totals sums Amount per Name and returns the totals in first-seen order.
func Totals[P Point](points []P) []domain.CategoryTotal {
	index := make(map[string]int)
	var totals []domain.CategoryTotal
	for _, p := range points {
		i, ok := index[p.Name()]
		if !ok {
			i = len(totals)
			index[p.Name()] = i
			totals = append(totals, domain.CategoryTotal{Category: p.Name()})
		}
		totals[i].Total += p.Amount()
	}
	return totals
}

// TotalOf returns the summed Amount of the points named name.
func TotalOf[P Point](points []P, name string) float64 {
	var total float64
	for _, p := range points {
		if p.Name() == name {
			total += p.Amount()
		}
	}
	return total
}

// Max returns the largest Amount, ok == false for no points.
func Max[P Point](points []P) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}
	m := points[0].Amount()
	for _, p := range points[1:] {
		if p.Amount() > m {
			m = p.Amount()
		}
	}
	return m, true
}

// Percent is 100*part/whole truncated toward zero. A zero whole yields 0, false.
func Percent(part, whole float64) (int, bool) {
	if whole == 0 {
		return 0, false
	}
	return int(part * 100 / whole), true
}
