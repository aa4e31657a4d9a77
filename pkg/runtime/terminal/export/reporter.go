package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

type TableConfig struct {
	KeyWidth      int
	ValueWidth    int
	DetailWidth   int
	PositionWidth int
	StateWidth    int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		KeyWidth:      16,
		ValueWidth:    8,
		DetailWidth:   12,
		PositionWidth: 16,
		StateWidth:    8,
	}
}

// Reporter renders a chart view as a text table of its points followed by
// totals and the tooltip.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const viewTemplate = `
{{.Title}} ({{.Kind}}, {{.Mark}}, {{.Gesture}})
Viewport: {{number .Viewport.Width}}x{{number .Viewport.Height}}  Sort: {{.Sort}}
{{if .Labels}}Labels:{{range .Labels}} {{label .}}{{end}}
{{end}}{{if .Options}}Options:{{range $name, $on := .Options}} {{$name}}={{$on}}{{end}}
{{end}}
{{separator}}
{{formatRow "Key" "Value" "Detail" "Position" "State"}}
{{separator}}
{{range .Points}}{{formatRow .Key (number .Value) (detail .) (position .Position) (state .)}}
{{end}}{{separator}}
{{if .Totals}}
Totals:
{{range .Totals}}  {{.Category}}: {{number .Total}}
{{end}}{{end}}{{with .Tooltip}}
Tooltip: {{.Title}} at {{position .Anchor}}
{{range .Lines}}  {{.Label}}: {{.Value}}
{{end}}{{end}}`

func (c *Reporter) Handle(view domain.ChartView) error {
	funcMap := template.FuncMap{
		"formatRow": func(key, value, detail, position, state string) string {
			return fmt.Sprintf("| %-*s | %*s | %-*s | %-*s | %-*s |",
				c.config.KeyWidth, key,
				c.config.ValueWidth, value,
				c.config.DetailWidth, detail,
				c.config.PositionWidth, position,
				c.config.StateWidth, state)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.KeyWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.DetailWidth+2),
				strings.Repeat("-", c.config.PositionWidth+2),
				strings.Repeat("-", c.config.StateWidth+2))
		},
		"number":   number,
		"detail":   detail,
		"position": position,
		"state":    state,
		"label": func(l domain.LabelState) string {
			if l.Active {
				return "[x] " + l.Name
			}
			return "[ ] " + l.Name
		},
	}

	t, err := template.New("view").Funcs(funcMap).Parse(viewTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func detail(p domain.PointView) string {
	switch {
	case p.Group != "":
		return p.Group
	case p.Value1 != 0 || p.Value2 != 0:
		return number(p.Value1) + "+" + number(p.Value2)
	case p.MinValue != 0 || p.MaxValue != 0:
		return number(p.MinValue) + " - " + number(p.MaxValue)
	}
	return ""
}

func position(p domain.Position) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

func state(p domain.PointView) string {
	switch {
	case p.Selected:
		return "selected"
	case !p.Emphasized:
		return "dimmed"
	}
	return ""
}
