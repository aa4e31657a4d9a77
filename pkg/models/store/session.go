package store

import "time"

// Session is a persisted chart session row. State holds the JSON-encoded
// interactive state (hidden labels, options, selection).
type Session struct {
	ID        string
	Kind      string
	Width     float64
	Height    float64
	Sort      string
	State     string
	Animating bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SessionState struct {
	Hidden    []string        `json:"hidden,omitempty"`
	Options   map[string]bool `json:"options,omitempty"`
	Selection *SelectionState `json:"selection,omitempty"`
}

type SelectionState struct {
	Key     string  `json:"key"`
	AnchorX float64 `json:"anchor_x"`
	AnchorY float64 `json:"anchor_y"`
}
