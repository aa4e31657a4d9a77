package domain

import (
	"fmt"
	"time"
)

type ChartKind string

const (
	ChartBasicBar        ChartKind = "basic-bar"
	ChartStackedBar      ChartKind = "stacked-bar"
	ChartGroupedBar      ChartKind = "grouped-bar"
	ChartHorizontalBar   ChartKind = "horizontal-bar"
	ChartBasicLine       ChartKind = "basic-line"
	ChartMultiSeriesLine ChartKind = "multi-series-line"
	ChartRangeLine       ChartKind = "range-line"
	ChartStepLine        ChartKind = "step-line"
)

type MarkKind string

const (
	MarkBar   MarkKind = "bar"
	MarkLine  MarkKind = "line"
	MarkArea  MarkKind = "area"
	MarkPoint MarkKind = "point"
)

// GestureKind tells how pointer input selects an item.
type GestureKind string

const (
	GestureTap  GestureKind = "tap"
	GestureDrag GestureKind = "drag"
)

type SortMode string

const (
	SortNone         SortMode = "none"
	SortAscending    SortMode = "ascending"
	SortDescending   SortMode = "descending"
	SortAlphabetical SortMode = "alphabetical"
)

func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(s); m {
	case SortNone, SortAscending, SortDescending, SortAlphabetical:
		return m, nil
	case "":
		return SortNone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSort, s)
	}
}

type Position struct {
	X float64
	Y float64
}

// Size is the plot area a renderer draws into.
type Size struct {
	Width  float64
	Height float64
}

// ChartDescriptor describes a chart variant independent of any open instance.
type ChartDescriptor struct {
	Kind    ChartKind
	Title   string
	Mark    MarkKind
	Gesture GestureKind
	Labels  []string
	Sorts   []SortMode
	Options []string
}

type PointView struct {
	Key        string
	Category   string
	Group      string
	Date       time.Time
	Value      float64
	Value1     float64
	Value2     float64
	MinValue   float64
	MaxValue   float64
	Selected   bool
	Emphasized bool
	Position   Position
}

type LabelState struct {
	Name   string
	Active bool
}

type CategoryTotal struct {
	Category string
	Total    float64
}

type TooltipLine struct {
	Label string
	Value string
}

type Tooltip struct {
	Title  string
	Lines  []TooltipLine
	Anchor Position
}

type Selection struct {
	Key    string
	Anchor Position
}

// ChartView is the renderer-facing snapshot of one chart instance.
type ChartView struct {
	Kind      ChartKind
	Title     string
	Mark      MarkKind
	Gesture   GestureKind
	Viewport  Size
	Points    []PointView
	Labels    []LabelState
	Sort      SortMode
	Sorts     []SortMode
	Options   map[string]bool
	Totals    []CategoryTotal
	Selection *Selection
	Tooltip   *Tooltip
	Animating bool
}
