package api

import "time"

type CreateSessionRequest struct {
	Kind   string  `json:"kind"`
	Preset string  `json:"preset,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// EventRequest is one interaction sent to a session. Only the fields relevant to
// Type are read.
type EventRequest struct {
	Type   string  `json:"type"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Label  string  `json:"label,omitempty"`
	Sort   string  `json:"sort,omitempty"`
	Option string  `json:"option,omitempty"`
}

type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	View      ChartView `json:"view"`
}
