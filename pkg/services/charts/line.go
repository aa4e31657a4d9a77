package charts

import (
	"cmp"
	"slices"
	"time"

	"github.com/de-tools/chart-atlas/pkg/chart"
	"github.com/de-tools/chart-atlas/pkg/chart/scale"
	"github.com/de-tools/chart-atlas/pkg/chart/tooltip"
	"github.com/de-tools/chart-atlas/pkg/datasets"
	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

const (
	OptionSymbols = "symbols"
	OptionSmooth  = "smooth"
	OptionRange   = "range"
	OptionArea    = "area"
	OptionPoints  = "points"
)

func BasicLine() Chart {
	return &variant[domain.TimePoint]{
		kind:     domain.ChartBasicLine,
		title:    "Basic line chart",
		mark:     domain.MarkLine,
		gesture:  domain.GestureTap,
		options:  []string{OptionSymbols, OptionSmooth},
		margin:   60,
		data:     datasets.Basic,
		resolve:  resolveNearest(projectedY(domain.TimePoint.Amount)),
		layout:   timeLayout(domain.TimePoint.Amount),
		describe: describeTime,
		tooltip: func(_ chart.State[domain.TimePoint], sel chart.Selected[domain.TimePoint]) *tooltip.Builder {
			return tooltip.New(domain.DayKey(sel.Item.Date)).Value("value", sel.Item.Value)
		},
	}
}

func StepLine() Chart {
	return &variant[domain.TimePoint]{
		kind:     domain.ChartStepLine,
		title:    "Step line chart",
		mark:     domain.MarkLine,
		gesture:  domain.GestureTap,
		options:  []string{OptionArea, OptionPoints},
		margin:   70,
		data:     datasets.Step,
		resolve:  resolveNearest(projectedY(domain.TimePoint.Amount)),
		layout:   timeLayout(domain.TimePoint.Amount),
		describe: describeTime,
		tooltip: func(s chart.State[domain.TimePoint], sel chart.Selected[domain.TimePoint]) *tooltip.Builder {
			b := tooltip.New(domain.DayKey(sel.Item.Date)).Value("value", sel.Item.Value)

			data := s.Data()
			idx := slices.IndexFunc(data, func(p domain.TimePoint) bool { return p.Key() == sel.Item.Key() })
			if idx > 0 {
				b.Line("change", tooltip.Signed(sel.Item.Value-data[idx-1].Value))
			}
			return b
		},
	}
}

func RangeLine() Chart {
	return &variant[domain.RangeTimePoint]{
		kind:    domain.ChartRangeLine,
		title:   "Range line chart",
		mark:    domain.MarkArea,
		gesture: domain.GestureTap,
		options: []string{OptionRange},
		margin:  70,
		data:    datasets.Range,
		resolve: resolveNearest(projectedY(rangeExtent)),
		layout:  timeLayout(rangeExtent),
		describe: func(p domain.RangeTimePoint) domain.PointView {
			return domain.PointView{Key: p.Key(), Date: p.Date, Value: p.Value, MinValue: p.MinValue, MaxValue: p.MaxValue}
		},
		tooltip: func(s chart.State[domain.RangeTimePoint], sel chart.Selected[domain.RangeTimePoint]) *tooltip.Builder {
			p := sel.Item
			b := tooltip.New(domain.DayKey(p.Date)).Value("value", p.Value)
			if s.Option(OptionRange) {
				b.Line("range", tooltip.Range(p.MinValue, p.MaxValue))
			}
			return b
		},
	}
}

func MultiSeriesLine() Chart {
	return &variant[domain.MultiSeriesTimePoint]{
		kind:      domain.ChartMultiSeriesLine,
		title:     "Multi-series line chart",
		mark:      domain.MarkLine,
		gesture:   domain.GestureTap,
		margin:    80,
		data:      datasets.MultiSeries,
		toggleKey: func(p domain.MultiSeriesTimePoint) string { return domain.DayKey(p.Date) },
		resolve:   resolveNearest[domain.MultiSeriesTimePoint](fixedY),
		layout:    timeLayout(domain.MultiSeriesTimePoint.Amount),
		describe: func(p domain.MultiSeriesTimePoint) domain.PointView {
			return domain.PointView{Key: p.Key(), Date: p.Date, Group: p.Series, Value: p.Value}
		},
		tooltip: func(s chart.State[domain.MultiSeriesTimePoint], sel chart.Selected[domain.MultiSeriesTimePoint]) *tooltip.Builder {
			sameDay := chart.SameDay(s.Filtered(), sel.Item.Date)
			slices.SortStableFunc(sameDay, func(a, b domain.MultiSeriesTimePoint) int {
				return cmp.Compare(a.Series, b.Series)
			})

			b := tooltip.New(domain.DayKey(sel.Item.Date))
			for _, p := range sameDay {
				b.Value("series "+p.Series, p.Value)
			}
			return b
		},
	}
}

func rangeExtent(p domain.RangeTimePoint) float64 { return max(p.Value, p.MaxValue) }

func describeTime(p domain.TimePoint) domain.PointView {
	return domain.PointView{Key: p.Key(), Date: p.Date, Value: p.Value}
}

func timeAxis[P chart.TimedPoint](points []P, length float64) scale.Time {
	times := make([]time.Time, len(points))
	for i, p := range points {
		times[i] = p.At()
	}
	return scale.NewTime(times, length)
}

// anchorY places the tooltip anchor vertically for the selected point p.
type anchorY[P chart.TimedPoint] func(s chart.State[P], vp domain.Size, p P) float64

// projectedY anchors on the point's plotted value, the same projection timeLayout uses.
func projectedY[P chart.TimedPoint](extent func(P) float64) anchorY[P] {
	return func(s chart.State[P], vp domain.Size, p P) float64 {
		return vp.Height - valueAxis(s.Visible(), extent, vp.Height).Position(p.Amount())
	}
}

// fixedY keeps the anchor on a constant line, used when one tooltip covers several series.
func fixedY[P chart.TimedPoint](chart.State[P], domain.Size, P) float64 {
	return tooltip.LineAnchorY
}

// resolveNearest maps x to a date and selects the filtered point closest to it.
// The tooltip is anchored on the point itself rather than the pointer.
func resolveNearest[P chart.TimedPoint](y anchorY[P]) func(chart.State[P], domain.Size, float64, float64) resolution {
	return func(s chart.State[P], vp domain.Size, x, _ float64) resolution {
		filtered := s.Filtered()
		axis := timeAxis(filtered, vp.Width)

		at, ok := axis.Invert(x)
		if !ok {
			return resolution{}
		}
		p, ok := chart.Nearest(filtered, at)
		if !ok {
			return resolution{}
		}
		return resolution{
			key:    p.Key(),
			anchor: domain.Position{X: axis.Position(p.At()), Y: y(s, vp, p)},
		}
	}
}

func timeLayout[P chart.TimedPoint](extent func(P) float64) func(chart.State[P], domain.Size) map[string]domain.Position {
	return func(s chart.State[P], vp domain.Size) map[string]domain.Position {
		visible := s.Visible()
		axis := timeAxis(s.Filtered(), vp.Width)
		values := valueAxis(visible, extent, vp.Height)

		out := make(map[string]domain.Position, len(visible))
		for _, p := range visible {
			out[p.Key()] = domain.Position{
				X: axis.Position(p.At()),
				Y: vp.Height - values.Position(p.Amount()),
			}
		}
		return out
	}
}

// Builtin returns every chart variant in menu order.
func Builtin() []Chart {
	return []Chart{
		BasicBar(),
		StackedBar(),
		GroupedBar(),
		HorizontalBar(),
		BasicLine(),
		MultiSeriesLine(),
		RangeLine(),
		StepLine(),
	}
}
