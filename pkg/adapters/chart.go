package adapters

import (
	"fmt"

	"github.com/de-tools/chart-atlas/pkg/models/api"
	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

func MapChartDescriptorDomainToApi(d domain.ChartDescriptor) api.ChartDescriptor {
	labels := d.Labels
	if labels == nil {
		labels = []string{}
	}
	options := d.Options
	if options == nil {
		options = []string{}
	}
	return api.ChartDescriptor{
		Kind:    string(d.Kind),
		Title:   d.Title,
		Mark:    string(d.Mark),
		Gesture: string(d.Gesture),
		Labels:  labels,
		Sorts:   mapSorts(d.Sorts),
		Options: options,
	}
}

func MapPointViewDomainToApi(p domain.PointView) api.Point {
	res := api.Point{
		Key:        p.Key,
		Category:   p.Category,
		Group:      p.Group,
		Value:      p.Value,
		Value1:     p.Value1,
		Value2:     p.Value2,
		MinValue:   p.MinValue,
		MaxValue:   p.MaxValue,
		Selected:   p.Selected,
		Emphasized: p.Emphasized,
		Position:   mapPosition(p.Position),
	}
	if !p.Date.IsZero() {
		res.Date = domain.DayKey(p.Date)
	}
	return res
}

func MapPointViewsDomainToApi(points []domain.PointView) []api.Point {
	res := make([]api.Point, 0, len(points))
	for _, p := range points {
		res = append(res, MapPointViewDomainToApi(p))
	}
	return res
}

func MapChartViewDomainToApi(v domain.ChartView) api.ChartView {
	res := api.ChartView{
		Kind:      string(v.Kind),
		Title:     v.Title,
		Mark:      string(v.Mark),
		Gesture:   string(v.Gesture),
		Viewport:  api.Viewport{Width: v.Viewport.Width, Height: v.Viewport.Height},
		Points:    MapPointViewsDomainToApi(v.Points),
		Labels:    make([]api.Label, 0, len(v.Labels)),
		Sort:      string(v.Sort),
		Sorts:     mapSorts(v.Sorts),
		Options:   v.Options,
		Animating: v.Animating,
	}
	if res.Options == nil {
		res.Options = map[string]bool{}
	}
	for _, l := range v.Labels {
		res.Labels = append(res.Labels, api.Label{Name: l.Name, Active: l.Active})
	}
	for _, t := range v.Totals {
		res.Totals = append(res.Totals, api.CategoryTotal{Category: t.Category, Total: t.Total})
	}
	if v.Selection != nil {
		res.Selection = &api.Selection{Key: v.Selection.Key, Anchor: mapPosition(v.Selection.Anchor)}
	}
	if v.Tooltip != nil {
		tip := &api.Tooltip{
			Title:  v.Tooltip.Title,
			Lines:  make([]api.TooltipLine, 0, len(v.Tooltip.Lines)),
			Anchor: mapPosition(v.Tooltip.Anchor),
		}
		for _, l := range v.Tooltip.Lines {
			tip.Lines = append(tip.Lines, api.TooltipLine{Label: l.Label, Value: l.Value})
		}
		res.Tooltip = tip
	}
	return res
}

func MapSessionViewDomainToApi(s domain.SessionView) api.Session {
	return api.Session{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		View:      MapChartViewDomainToApi(s.View),
	}
}

// MapEventApiToDomain validates an event request and turns it into a chart input.
func MapEventApiToDomain(e api.EventRequest) (domain.Input, error) {
	t, err := domain.ParseInputType(e.Type)
	if err != nil {
		return domain.Input{}, err
	}

	in := domain.Input{Type: t, X: e.X, Y: e.Y, Label: e.Label, Option: e.Option}
	switch t {
	case domain.InputSort:
		if e.Sort == "" {
			return domain.Input{}, fmt.Errorf("%w: sort event without a mode", domain.ErrInvalidInput)
		}
		if in.Sort, err = domain.ParseSortMode(e.Sort); err != nil {
			return domain.Input{}, err
		}
	case domain.InputToggleLabel:
		if e.Label == "" {
			return domain.Input{}, fmt.Errorf("%w: toggle_label event without a label", domain.ErrInvalidInput)
		}
	case domain.InputToggleOption:
		if e.Option == "" {
			return domain.Input{}, fmt.Errorf("%w: toggle_option event without an option", domain.ErrInvalidInput)
		}
	}
	return in, nil
}

func mapPosition(p domain.Position) api.Position {
	return api.Position{X: p.X, Y: p.Y}
}

func mapSorts(sorts []domain.SortMode) []string {
	res := make([]string, 0, len(sorts))
	for _, s := range sorts {
		res = append(res, string(s))
	}
	return res
}

func MapPresetDomainToApi(p domain.Preset) api.Preset {
	res := api.Preset{
		Name:     p.Name,
		Kind:     string(p.Kind),
		Sort:     string(p.Sort),
		Hidden:   p.Hidden,
		Disabled: p.Disabled,
	}
	if res.Hidden == nil {
		res.Hidden = []string{}
	}
	if res.Disabled == nil {
		res.Disabled = []string{}
	}
	return res
}
