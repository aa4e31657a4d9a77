// Package charts binds datasets, scales and tooltips to the generic chart core,
// one variant per chart kind.
package charts

import (
	"slices"

	"github.com/de-tools/chart-atlas/pkg/chart"
	"github.com/de-tools/chart-atlas/pkg/chart/tooltip"
	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

// DefaultViewport matches the plot frame of the sample widgets.
var DefaultViewport = domain.Size{Width: 320, Height: 250}

// Chart is a chart variant that can be opened any number of times.
type Chart interface {
	Descriptor() domain.ChartDescriptor
	// Data returns the dataset as point views in dataset order.
	Data() []domain.PointView
	Open(viewport domain.Size) Instance
}

// Instance is one open chart with its own interactive state. It is not safe for
// concurrent use.
type Instance interface {
	Kind() domain.ChartKind
	Apply(in domain.Input)
	View() domain.ChartView
	Snapshot() domain.SessionSnapshot
	Restore(snap domain.SessionSnapshot)
}

// resolution is a pointer input turned into a dataset key.
type resolution struct {
	key    string
	anchor domain.Position
}

type variant[P chart.Point] struct {
	kind    domain.ChartKind
	title   string
	mark    domain.MarkKind
	gesture domain.GestureKind
	sorts   []domain.SortMode
	options []string
	margin  float64

	data      func() []P
	toggleKey func(P) string
	// resolve maps a pointer position to the point under it.
	resolve func(s chart.State[P], vp domain.Size, x, y float64) resolution
	// layout returns plot positions for the visible points.
	layout   func(s chart.State[P], vp domain.Size) map[string]domain.Position
	describe func(p P) domain.PointView
	tooltip  func(s chart.State[P], sel chart.Selected[P]) *tooltip.Builder
	totals   func(s chart.State[P]) []domain.CategoryTotal
}

func (v *variant[P]) config() chart.Config[P] {
	return chart.Config[P]{
		Data:       v.data(),
		Sorts:      v.sorts,
		Options:    v.options,
		DragSelect: v.gesture == domain.GestureDrag,
		ToggleKey:  v.toggleKey,
	}
}

func (v *variant[P]) Descriptor() domain.ChartDescriptor {
	sorts := v.sorts
	if len(sorts) == 0 {
		sorts = []domain.SortMode{domain.SortNone}
	}
	return domain.ChartDescriptor{
		Kind:    v.kind,
		Title:   v.title,
		Mark:    v.mark,
		Gesture: v.gesture,
		Labels:  chart.Labels(v.data()),
		Sorts:   slices.Clone(sorts),
		Options: slices.Clone(v.options),
	}
}

func (v *variant[P]) Data() []domain.PointView {
	data := v.data()
	views := make([]domain.PointView, len(data))
	for i, p := range data {
		views[i] = v.describe(p)
	}
	return views
}

func (v *variant[P]) Open(viewport domain.Size) Instance {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = DefaultViewport
	}
	return &instance[P]{
		v:        v,
		state:    chart.New(v.config()),
		viewport: viewport,
	}
}

type instance[P chart.Point] struct {
	v        *variant[P]
	state    chart.State[P]
	viewport domain.Size
}

func (i *instance[P]) Kind() domain.ChartKind { return i.v.kind }

func (i *instance[P]) Apply(in domain.Input) {
	if e := i.event(in); e != nil {
		i.state = chart.Reduce(i.state, e)
	}
}

func (i *instance[P]) event(in domain.Input) chart.Event {
	switch in.Type {
	case domain.InputTap:
		r := i.v.resolve(i.state, i.viewport, in.X, in.Y)
		if i.v.gesture == domain.GestureDrag {
			return chart.Drag{Key: r.key, Anchor: r.anchor}
		}
		return chart.Tap{Key: r.key, Anchor: r.anchor}
	case domain.InputDrag:
		r := i.v.resolve(i.state, i.viewport, in.X, in.Y)
		return chart.Drag{Key: r.key, Anchor: r.anchor}
	case domain.InputRelease:
		return chart.Release{}
	case domain.InputToggleLabel:
		return chart.ToggleLabel{Label: in.Label}
	case domain.InputSort:
		return chart.SetSort{Mode: in.Sort}
	case domain.InputToggleOption:
		return chart.ToggleOption{Name: in.Option}
	case domain.InputReset:
		return chart.Reset{}
	case domain.InputAnimationDone:
		return chart.AnimationDone{}
	}
	return nil
}

func (i *instance[P]) View() domain.ChartView {
	s := i.state
	sel, hasSel := s.Selected()

	positions := i.v.layout(s, i.viewport)
	visible := s.Visible()
	points := make([]domain.PointView, len(visible))
	for n, p := range visible {
		pv := i.v.describe(p)
		pv.Position = positions[p.Key()]
		pv.Selected = hasSel && sel.Item.Key() == p.Key()
		pv.Emphasized = !hasSel || sel.Item.Name() == p.Name()
		points[n] = pv
	}

	labels := make([]domain.LabelState, 0)
	for _, l := range s.Labels() {
		labels = append(labels, domain.LabelState{Name: l, Active: s.IsActive(l)})
	}

	view := domain.ChartView{
		Kind:      i.v.kind,
		Title:     i.v.title,
		Mark:      i.v.mark,
		Gesture:   i.v.gesture,
		Viewport:  i.viewport,
		Points:    points,
		Labels:    labels,
		Sort:      s.Sort(),
		Sorts:     s.Sorts(),
		Options:   s.Options(),
		Animating: s.Animating(),
	}
	if i.v.totals != nil {
		view.Totals = i.v.totals(s)
	}
	if hasSel {
		view.Selection = &domain.Selection{Key: sel.Item.Key(), Anchor: sel.Anchor}
		if b := i.v.tooltip(s, sel); b != nil {
			view.Tooltip = b.At(sel.Anchor, i.viewport.Width, i.v.margin)
		}
	}
	return view
}

func (i *instance[P]) Snapshot() domain.SessionSnapshot {
	snap := domain.SessionSnapshot{
		Kind:      i.v.kind,
		Viewport:  i.viewport,
		Sort:      i.state.Sort(),
		Hidden:    i.state.Hidden(),
		Options:   i.state.Options(),
		Animating: i.state.Animating(),
	}
	if sel, ok := i.state.Selected(); ok {
		snap.Selection = &domain.Selection{Key: sel.Item.Key(), Anchor: sel.Anchor}
	}
	return snap
}

// Restore rebuilds the state from snap by replaying it through the reducer.
func (i *instance[P]) Restore(snap domain.SessionSnapshot) {
	if snap.Viewport.Width > 0 && snap.Viewport.Height > 0 {
		i.viewport = snap.Viewport
	}

	events := make([]chart.Event, 0, len(snap.Hidden)+len(snap.Options)+3)
	for _, l := range snap.Hidden {
		events = append(events, chart.ToggleLabel{Label: l})
	}
	if snap.Sort != "" {
		events = append(events, chart.SetSort{Mode: snap.Sort})
	}
	for name, on := range snap.Options {
		if !on {
			events = append(events, chart.ToggleOption{Name: name})
		}
	}
	if snap.Selection != nil {
		events = append(events, chart.Drag{Key: snap.Selection.Key, Anchor: snap.Selection.Anchor})
	}
	if snap.Animating {
		events = append(events, chart.AnimationDone{})
	}

	i.state = chart.ReduceAll(chart.New(i.v.config()), events...)
}
