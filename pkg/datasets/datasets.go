// Package datasets holds the compiled-in sample data for every chart variant.
package datasets

import (
	"time"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

func Simple() []domain.SimplePoint {
	return []domain.SimplePoint{
		{Category: "A", Value: 10},
		{Category: "B", Value: 20},
		{Category: "C", Value: 15},
	}
}

func Stacked() []domain.StackedPoint {
	return []domain.StackedPoint{
		{Category: "A", Value1: 10, Value2: 5},
		{Category: "B", Value1: 20, Value2: 8},
		{Category: "C", Value1: 15, Value2: 12},
	}
}

func Grouped() []domain.GroupedPoint {
	return []domain.GroupedPoint{
		{Category: "A", Group: "X", Value: 10},
		{Category: "A", Group: "Y", Value: 15},
		{Category: "B", Group: "X", Value: 20},
		{Category: "B", Group: "Y", Value: 25},
		{Category: "C", Group: "X", Value: 15},
		{Category: "C", Group: "Y", Value: 18},
	}
}

// sampleDays are the x positions shared by all line datasets.
var sampleDays = []int{1, 5, 10, 15, 20, 25, 30}

func series(values ...float64) []domain.TimePoint {
	points := make([]domain.TimePoint, len(values))
	for i, v := range values {
		points[i] = domain.TimePoint{Date: domain.Day(time.March, sampleDays[i]), Value: v}
	}
	return points
}

func Basic() []domain.TimePoint {
	return series(10, 25, 15, 30, 18, 22, 35)
}

func Step() []domain.TimePoint {
	return series(10, 15, 15, 20, 25, 25, 30)
}

func MultiSeries() []domain.MultiSeriesTimePoint {
	values := map[string][]float64{
		"A": {10, 15, 12, 18, 16, 20, 22},
		"B": {15, 22, 18, 25, 20, 28, 30},
		"C": {5, 8, 10, 12, 15, 14, 18},
	}

	var points []domain.MultiSeriesTimePoint
	for _, name := range []string{"A", "B", "C"} {
		for i, v := range values[name] {
			points = append(points, domain.MultiSeriesTimePoint{
				Date:   domain.Day(time.March, sampleDays[i]),
				Series: name,
				Value:  v,
			})
		}
	}
	return points
}

func Range() []domain.RangeTimePoint {
	bands := [][3]float64{
		{15, 10, 20},
		{22, 18, 26},
		{18, 14, 22},
		{25, 20, 30},
		{20, 16, 24},
		{28, 24, 32},
		{30, 25, 35},
	}

	points := make([]domain.RangeTimePoint, len(bands))
	for i, b := range bands {
		points[i] = domain.RangeTimePoint{
			Date:     domain.Day(time.March, sampleDays[i]),
			Value:    b[0],
			MinValue: b[1],
			MaxValue: b[2],
		}
	}
	return points
}
