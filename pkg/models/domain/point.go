package domain

import "time"

const dayLayout = "2006-01-02"

// Day returns midnight UTC of the given day in the sample year.
func Day(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 0, 0, 0, 0, time.UTC)
}

// DayKey formats t as a calendar day.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

type SimplePoint struct {
	Category string
	Value    float64
}

func (p SimplePoint) Key() string     { return p.Category }
func (p SimplePoint) Label() string   { return "" }
func (p SimplePoint) Name() string    { return p.Category }
func (p SimplePoint) Amount() float64 { return p.Value }

type StackedPoint struct {
	Category string
	Value1   float64
	Value2   float64
}

func (p StackedPoint) Key() string     { return p.Category }
func (p StackedPoint) Label() string   { return "" }
func (p StackedPoint) Name() string    { return p.Category }
func (p StackedPoint) Amount() float64 { return p.Value1 + p.Value2 }

type GroupedPoint struct {
	Category string
	Group    string
	Value    float64
}

func (p GroupedPoint) Key() string     { return p.Category + "/" + p.Group }
func (p GroupedPoint) Label() string   { return p.Group }
func (p GroupedPoint) Name() string    { return p.Category }
func (p GroupedPoint) Amount() float64 { return p.Value }

type TimePoint struct {
	Date  time.Time
	Value float64
}

func (p TimePoint) Key() string     { return DayKey(p.Date) }
func (p TimePoint) Label() string   { return "" }
func (p TimePoint) Name() string    { return DayKey(p.Date) }
func (p TimePoint) Amount() float64 { return p.Value }
func (p TimePoint) At() time.Time   { return p.Date }

type MultiSeriesTimePoint struct {
	Date   time.Time
	Series string
	Value  float64
}

func (p MultiSeriesTimePoint) Key() string     { return DayKey(p.Date) + "/" + p.Series }
func (p MultiSeriesTimePoint) Label() string   { return p.Series }
func (p MultiSeriesTimePoint) Name() string    { return DayKey(p.Date) }
func (p MultiSeriesTimePoint) Amount() float64 { return p.Value }
func (p MultiSeriesTimePoint) At() time.Time   { return p.Date }

// RangeTimePoint carries a band around Value. MinValue <= Value <= MaxValue is not checked.
type RangeTimePoint struct {
	Date     time.Time
	Value    float64
	MinValue float64
	MaxValue float64
}

func (p RangeTimePoint) Key() string     { return DayKey(p.Date) }
func (p RangeTimePoint) Label() string   { return "" }
func (p RangeTimePoint) Name() string    { return DayKey(p.Date) }
func (p RangeTimePoint) Amount() float64 { return p.Value }
func (p RangeTimePoint) At() time.Time   { return p.Date }
