package charts

import (
	"cmp"
	"math"
	"slices"

	"github.com/de-tools/chart-atlas/pkg/chart"
	"github.com/de-tools/chart-atlas/pkg/chart/scale"
	"github.com/de-tools/chart-atlas/pkg/chart/tooltip"
	"github.com/de-tools/chart-atlas/pkg/datasets"
	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

const (
	OptionValue1 = "value1"
	OptionValue2 = "value2"
	OptionTotals = "totals"
	OptionValues = "values"
)

func BasicBar() Chart {
	return &variant[domain.SimplePoint]{
		kind:     domain.ChartBasicBar,
		title:    "Basic bar chart",
		mark:     domain.MarkBar,
		gesture:  domain.GestureTap,
		margin:   60,
		data:     datasets.Simple,
		resolve:  resolveColumn[domain.SimplePoint],
		layout:   columnLayout(domain.SimplePoint.Amount),
		describe: describeSimple,
		tooltip: func(_ chart.State[domain.SimplePoint], sel chart.Selected[domain.SimplePoint]) *tooltip.Builder {
			return tooltip.New(sel.Item.Category).Value("value", sel.Item.Value)
		},
	}
}

func StackedBar() Chart {
	return &variant[domain.StackedPoint]{
		kind:    domain.ChartStackedBar,
		title:   "Stacked bar chart",
		mark:    domain.MarkBar,
		gesture: domain.GestureTap,
		options: []string{OptionValue1, OptionValue2},
		margin:  70,
		data:    datasets.Stacked,
		resolve: resolveColumn[domain.StackedPoint],
		layout:  columnLayout(domain.StackedPoint.Amount),
		describe: func(p domain.StackedPoint) domain.PointView {
			return domain.PointView{Key: p.Key(), Category: p.Category, Value: p.Amount(), Value1: p.Value1, Value2: p.Value2}
		},
		tooltip: func(_ chart.State[domain.StackedPoint], sel chart.Selected[domain.StackedPoint]) *tooltip.Builder {
			p := sel.Item
			return tooltip.New(p.Category).
				Value("value1", p.Value1).
				Value("value2", p.Value2).
				Value("total", p.Amount())
		},
		totals: func(s chart.State[domain.StackedPoint]) []domain.CategoryTotal {
			return chart.Totals(s.Visible())
		},
	}
}

func GroupedBar() Chart {
	return &variant[domain.GroupedPoint]{
		kind:    domain.ChartGroupedBar,
		title:   "Grouped bar chart",
		mark:    domain.MarkBar,
		gesture: domain.GestureDrag,
		sorts:   []domain.SortMode{domain.SortNone, domain.SortAscending, domain.SortDescending},
		options: []string{OptionTotals},
		margin:  80,
		data:    datasets.Grouped,
		resolve: resolveGrouped,
		layout:  groupedLayout,
		describe: func(p domain.GroupedPoint) domain.PointView {
			return domain.PointView{Key: p.Key(), Category: p.Category, Group: p.Group, Value: p.Value}
		},
		tooltip: func(s chart.State[domain.GroupedPoint], sel chart.Selected[domain.GroupedPoint]) *tooltip.Builder {
			p := sel.Item
			pct, ok := chart.Percent(p.Value, chart.TotalOf(s.Filtered(), p.Category))
			return tooltip.New(p.Category).
				Line("group", p.Group).
				Value("value", p.Value).
				Percent("share_of_category", pct, ok)
		},
		totals: func(s chart.State[domain.GroupedPoint]) []domain.CategoryTotal {
			if !s.Option(OptionTotals) {
				return nil
			}
			totals := chart.Totals(s.Filtered())
			slices.SortFunc(totals, func(a, b domain.CategoryTotal) int { return cmp.Compare(a.Category, b.Category) })
			return totals
		},
	}
}

func HorizontalBar() Chart {
	return &variant[domain.SimplePoint]{
		kind:    domain.ChartHorizontalBar,
		title:   "Horizontal bar chart",
		mark:    domain.MarkBar,
		gesture: domain.GestureDrag,
		sorts: []domain.SortMode{
			domain.SortNone, domain.SortAscending, domain.SortDescending, domain.SortAlphabetical,
		},
		options:  []string{OptionValues},
		margin:   80,
		data:     datasets.Simple,
		resolve:  resolveRow,
		layout:   rowLayout,
		describe: describeSimple,
		tooltip: func(s chart.State[domain.SimplePoint], sel chart.Selected[domain.SimplePoint]) *tooltip.Builder {
			top, _ := chart.Max(s.Visible())
			pct, ok := chart.Percent(sel.Item.Value, top)
			return tooltip.New(sel.Item.Category).
				Value("value", sel.Item.Value).
				Percent("share_of_max", pct, ok)
		},
	}
}

func describeSimple(p domain.SimplePoint) domain.PointView {
	return domain.PointView{Key: p.Key(), Category: p.Category, Value: p.Value}
}

// names returns the distinct point names in order of first appearance.
func names[P chart.Point](points []P) []string {
	var out []string
	for _, p := range points {
		if !slices.Contains(out, p.Name()) {
			out = append(out, p.Name())
		}
	}
	return out
}

func firstNamed[P chart.Point](points []P, name string) (P, bool) {
	for _, p := range points {
		if p.Name() == name {
			return p, true
		}
	}
	var zero P
	return zero, false
}

func valueAxis[P chart.Point](points []P, extent func(P) float64, length float64) scale.Linear {
	var top float64
	for _, p := range points {
		top = max(top, extent(p))
	}
	return scale.Linear{Max: top, Length: length}
}

// resolveColumn maps x to the category band of a vertical bar chart.
func resolveColumn[P chart.Point](s chart.State[P], vp domain.Size, x, y float64) resolution {
	visible := s.Visible()
	name, ok := scale.NewBand(names(visible), vp.Width).Invert(x)
	if !ok {
		return resolution{}
	}
	p, ok := firstNamed(visible, name)
	if !ok {
		return resolution{}
	}
	return resolution{key: p.Key(), anchor: domain.Position{X: x, Y: y}}
}

func columnLayout[P chart.Point](extent func(P) float64) func(chart.State[P], domain.Size) map[string]domain.Position {
	return func(s chart.State[P], vp domain.Size) map[string]domain.Position {
		visible := s.Visible()
		band := scale.NewBand(names(visible), vp.Width)
		values := valueAxis(visible, extent, vp.Height)

		out := make(map[string]domain.Position, len(visible))
		for _, p := range visible {
			x, _ := band.Position(p.Name())
			out[p.Key()] = domain.Position{X: x, Y: vp.Height - values.Position(extent(p))}
		}
		return out
	}
}

// resolveRow maps y to the category band of a horizontal bar chart.
func resolveRow(s chart.State[domain.SimplePoint], vp domain.Size, x, y float64) resolution {
	visible := s.Visible()
	name, ok := scale.NewBand(names(visible), vp.Height).Invert(y)
	if !ok {
		return resolution{}
	}
	p, ok := firstNamed(visible, name)
	if !ok {
		return resolution{}
	}
	return resolution{key: p.Key(), anchor: domain.Position{X: x, Y: y}}
}

func rowLayout(s chart.State[domain.SimplePoint], vp domain.Size) map[string]domain.Position {
	visible := s.Visible()
	band := scale.NewBand(names(visible), vp.Height)
	values := valueAxis(visible, domain.SimplePoint.Amount, vp.Width)

	out := make(map[string]domain.Position, len(visible))
	for _, p := range visible {
		y, _ := band.Position(p.Name())
		out[p.Key()] = domain.Position{X: values.Position(p.Value), Y: y}
	}
	return out
}

// groupBands returns the category axis and the active groups each category band is split into.
func groupBands(s chart.State[domain.GroupedPoint], vp domain.Size) (scale.Band, []string) {
	var active []string
	for _, l := range s.Labels() {
		if s.IsActive(l) {
			active = append(active, l)
		}
	}
	return scale.NewBand(names(s.Visible()), vp.Width), active
}

func resolveGrouped(s chart.State[domain.GroupedPoint], vp domain.Size, x, y float64) resolution {
	band, groups := groupBands(s, vp)
	category, ok := band.Invert(x)
	if !ok {
		return resolution{}
	}

	center, _ := band.Position(category)
	start := center - band.Bandwidth()/2
	offset := min(max(x-start, 0), math.Nextafter(band.Bandwidth(), 0))
	group, ok := scale.NewBand(groups, band.Bandwidth()).Invert(offset)
	if !ok {
		return resolution{}
	}

	// A missing (category, group) pair yields an unknown key, which clears the selection.
	return resolution{
		key:    domain.GroupedPoint{Category: category, Group: group}.Key(),
		anchor: domain.Position{X: x, Y: y},
	}
}

func groupedLayout(s chart.State[domain.GroupedPoint], vp domain.Size) map[string]domain.Position {
	band, groups := groupBands(s, vp)
	sub := scale.NewBand(groups, band.Bandwidth())
	visible := s.Visible()
	values := valueAxis(visible, domain.GroupedPoint.Amount, vp.Height)

	out := make(map[string]domain.Position, len(visible))
	for _, p := range visible {
		center, _ := band.Position(p.Category)
		offset, _ := sub.Position(p.Group)
		out[p.Key()] = domain.Position{
			X: center - band.Bandwidth()/2 + offset,
			Y: vp.Height - values.Position(p.Value),
		}
	}
	return out
}
