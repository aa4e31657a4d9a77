package chart

import (
	"maps"
	"slices"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

// Event is anything Reduce understands.
type Event interface {
	isEvent()
}

// Tap toggles the point with Key. An empty or unknown key clears the selection.
type Tap struct {
	Key    string
	Anchor domain.Position
}

// Drag selects the point with Key without toggling. An empty Key leaves the
// state untouched, an unknown one clears it.
type Drag struct {
	Key    string
	Anchor domain.Position
}

// Release ends a drag gesture.
type Release struct{}

type ToggleLabel struct {
	Label string
}

type SetSort struct {
	Mode domain.SortMode
}

type ToggleOption struct {
	Name string
}

// AnimationDone flips the entrance animation flag.
type AnimationDone struct{}

// Reset returns to the initial state, keeping the animation flag.
type Reset struct{}

func (Tap) isEvent()           {}
func (Drag) isEvent()          {}
func (Release) isEvent()       {}
func (ToggleLabel) isEvent()   {}
func (SetSort) isEvent()       {}
func (ToggleOption) isEvent()  {}
func (AnimationDone) isEvent() {}
func (Reset) isEvent()         {}

// Reduce applies e to s and returns the next state. s is never modified.
func Reduce[P Point](s State[P], e Event) State[P] {
	switch e := e.(type) {
	case Tap:
		item, ok := s.Lookup(e.Key)
		if !ok || e.Key == "" {
			return s.clearSelection()
		}
		if cur, ok := s.Selected(); ok && s.cfg.ToggleKey(cur.Item) == s.cfg.ToggleKey(item) {
			return s.clearSelection()
		}
		return s.withSelection(item, e.Anchor)

	case Drag:
		if e.Key == "" {
			return s
		}
		item, ok := s.Lookup(e.Key)
		if !ok {
			return s.clearSelection()
		}
		return s.withSelection(item, e.Anchor)

	case Release:
		if !s.cfg.DragSelect {
			return s
		}
		return s.clearSelection()

	case ToggleLabel:
		active, changed := toggleLabelSet(s.active, s.labels, e.Label)
		if !changed {
			return s
		}
		s.active = active
		return s.clearSelection()

	case SetSort:
		if !slices.Contains(s.cfg.Sorts, e.Mode) {
			return s
		}
		s.sort = e.Mode
		return s

	case ToggleOption:
		if _, ok := s.options[e.Name]; !ok {
			return s
		}
		options := maps.Clone(s.options)
		options[e.Name] = !options[e.Name]
		s.options = options
		return s

	case AnimationDone:
		s.animating = true
		return s

	case Reset:
		next := New(*s.cfg)
		next.animating = s.animating
		return next
	}

	return s
}

// ReduceAll folds events over s.
func ReduceAll[P Point](s State[P], events ...Event) State[P] {
	for _, e := range events {
		s = Reduce(s, e)
	}
	return s
}

func (s State[P]) clearSelection() State[P] {
	s.selected = nil
	return s
}

func (s State[P]) withSelection(item P, anchor domain.Position) State[P] {
	s.selected = &Selected[P]{Item: item, Anchor: anchor}
	return s
}
