package chart

import (
	"maps"
	"slices"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

// Config fixes the behaviour of one chart variant.
type Config[P Point] struct {
	Data    []P
	Sorts   []domain.SortMode
	Options []string
	// DragSelect makes Release clear the selection.
	DragSelect bool
	// ToggleKey decides when a tap hits the current selection. Defaults to Key.
	ToggleKey func(P) string
}

type Selected[P Point] struct {
	Item   P
	Anchor domain.Position
}

// State is the full interactive state of one chart instance. The zero value is
// not usable; build it with New.
type State[P Point] struct {
	cfg       *Config[P]
	labels    []string
	active    map[string]bool
	sort      domain.SortMode
	selected  *Selected[P]
	options   map[string]bool
	animating bool
}

func New[P Point](cfg Config[P]) State[P] {
	if cfg.ToggleKey == nil {
		cfg.ToggleKey = func(p P) string { return p.Key() }
	}
	if len(cfg.Sorts) == 0 {
		cfg.Sorts = []domain.SortMode{domain.SortNone}
	}

	labels := Labels(cfg.Data)
	active := make(map[string]bool, len(labels))
	for _, l := range labels {
		active[l] = true
	}
	options := make(map[string]bool, len(cfg.Options))
	for _, o := range cfg.Options {
		options[o] = true
	}

	return State[P]{
		cfg:     &cfg,
		labels:  labels,
		active:  active,
		sort:    domain.SortNone,
		options: options,
	}
}

// Data returns the dataset in dataset order.
func (s State[P]) Data() []P { return s.cfg.Data }

func (s State[P]) Labels() []string { return slices.Clone(s.labels) }

// Hidden returns the inactive labels, sorted.
func (s State[P]) Hidden() []string {
	var hidden []string
	for _, l := range s.labels {
		if !s.active[l] {
			hidden = append(hidden, l)
		}
	}
	return hidden
}

func (s State[P]) IsActive(label string) bool { return s.active[label] }

func (s State[P]) Sort() domain.SortMode { return s.sort }

func (s State[P]) Sorts() []domain.SortMode { return slices.Clone(s.cfg.Sorts) }

func (s State[P]) Options() map[string]bool { return maps.Clone(s.options) }

func (s State[P]) Option(name string) bool { return s.options[name] }

func (s State[P]) Animating() bool { return s.animating }

func (s State[P]) Selected() (Selected[P], bool) {
	if s.selected == nil {
		return Selected[P]{}, false
	}
	return *s.selected, true
}

// Filtered is the dataset restricted to active labels, in dataset order.
func (s State[P]) Filtered() []P {
	return Filter(s.cfg.Data, s.active)
}

// Visible is Filtered ordered by the current sort mode.
func (s State[P]) Visible() []P {
	return Sort(s.Filtered(), s.sort)
}

// Lookup finds a visible point by key.
func (s State[P]) Lookup(key string) (P, bool) {
	for _, p := range s.Visible() {
		if p.Key() == key {
			return p, true
		}
	}
	var zero P
	return zero, false
}
