package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

// Reporter lists chart variants and presets in plain text
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Charts(descriptors []domain.ChartDescriptor) error {
	tmpl := `{{range .}}{{.Kind}}: {{.Title}}
  mark: {{.Mark}}, gesture: {{.Gesture}}, sorts: {{join .Sorts}}{{if .Labels}}
  labels: {{join .Labels}}{{end}}{{if .Options}}
  options: {{join .Options}}{{end}}
{{end}}`
	return c.execute("charts", tmpl, descriptors)
}

func (c *Reporter) Presets(presets []domain.Preset) error {
	tmpl := `{{range .}}{{.Name}}: {{.Kind}}{{if .Sort}}, sort {{.Sort}}{{end}}{{if .Hidden}}, hide {{join .Hidden}}{{end}}{{if .Disabled}}, disable {{join .Disabled}}{{end}}
{{else}}No presets defined
{{end}}`
	return c.execute("presets", tmpl, presets)
}

func (c *Reporter) execute(name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(template.FuncMap{"join": join}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}

func join(values any) string {
	switch v := values.(type) {
	case []string:
		return strings.Join(v, ", ")
	case []domain.SortMode:
		parts := make([]string, len(v))
		for i, m := range v {
			parts[i] = string(m)
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(values)
}
