// Package chart holds the selection, filtering, sorting and aggregation rules shared by
// every chart variant. State is an immutable value advanced by Reduce.
package chart

import "time"

// Point is one datum of a chart dataset.
type Point interface {
	// Key identifies the point within its dataset.
	Key() string
	// Label is the group or series the point belongs to, empty if the dataset is not partitioned.
	Label() string
	// Name is the category (or formatted day) used for alphabetical ordering and totals.
	Name() string
	// Amount is the value sorted on and summed.
	Amount() float64
}

// TimedPoint is a Point placed on a date axis.
type TimedPoint interface {
	Point
	At() time.Time
}
