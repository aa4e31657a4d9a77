package domain

import "time"

// Preset is a named starting state for a chart instance.
type Preset struct {
	Name     string
	Kind     ChartKind
	Sort     SortMode
	Hidden   []string
	Disabled []string
}

// Inputs returns the inputs that move a fresh instance to the preset state.
func (p *Preset) Inputs() []Input {
	if p == nil {
		return nil
	}
	var inputs []Input
	for _, l := range p.Hidden {
		inputs = append(inputs, Input{Type: InputToggleLabel, Label: l})
	}
	if p.Sort != "" {
		inputs = append(inputs, Input{Type: InputSort, Sort: p.Sort})
	}
	for _, o := range p.Disabled {
		inputs = append(inputs, Input{Type: InputToggleOption, Option: o})
	}
	return inputs
}

// SessionSnapshot is the restorable state of an open chart instance.
type SessionSnapshot struct {
	ID        string
	Kind      ChartKind
	Viewport  Size
	Sort      SortMode
	Hidden    []string
	Selection *Selection
	Options   map[string]bool
	Animating bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionView is what subscribers and API clients see of a session.
type SessionView struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	View      ChartView
}
