package api

type ChartDescriptor struct {
	Kind    string   `json:"kind"`
	Title   string   `json:"title"`
	Mark    string   `json:"mark"`
	Gesture string   `json:"gesture"`
	Labels  []string `json:"labels"`
	Sorts   []string `json:"sorts"`
	Options []string `json:"options"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Point struct {
	Key        string   `json:"key"`
	Category   string   `json:"category,omitempty"`
	Group      string   `json:"group,omitempty"`
	Date       string   `json:"date,omitempty"`
	Value      float64  `json:"value"`
	Value1     float64  `json:"value1,omitempty"`
	Value2     float64  `json:"value2,omitempty"`
	MinValue   float64  `json:"min_value,omitempty"`
	MaxValue   float64  `json:"max_value,omitempty"`
	Selected   bool     `json:"selected"`
	Emphasized bool     `json:"emphasized"`
	Position   Position `json:"position"`
}

type Label struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type TooltipLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Tooltip struct {
	Title  string        `json:"title"`
	Lines  []TooltipLine `json:"lines"`
	Anchor Position      `json:"anchor"`
}

type Selection struct {
	Key    string   `json:"key"`
	Anchor Position `json:"anchor"`
}

type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ChartView struct {
	Kind      string          `json:"kind"`
	Title     string          `json:"title"`
	Mark      string          `json:"mark"`
	Gesture   string          `json:"gesture"`
	Viewport  Viewport        `json:"viewport"`
	Points    []Point         `json:"points"`
	Labels    []Label         `json:"labels"`
	Sort      string          `json:"sort"`
	Sorts     []string        `json:"sorts"`
	Options   map[string]bool `json:"options"`
	Totals    []CategoryTotal `json:"totals,omitempty"`
	Selection *Selection      `json:"selection,omitempty"`
	Tooltip   *Tooltip        `json:"tooltip,omitempty"`
	Animating bool            `json:"animating"`
}

type Preset struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Sort     string   `json:"sort"`
	Hidden   []string `json:"hidden"`
	Disabled []string `json:"disabled"`
}
