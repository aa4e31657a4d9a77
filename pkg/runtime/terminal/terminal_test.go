package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := NewCLI(Options{Output: &out})
	cli.SetArgs(args)
	err := cli.Execute()
	return out.String(), err
}

func TestCLI_Charts(t *testing.T) {
	out, err := run(t, "charts")
	require.NoError(t, err)

	assert.Contains(t, out, "basic-bar: Basic bar chart\n  mark: bar, gesture: tap, sorts: none\n")
	assert.Contains(t, out, "grouped-bar: Grouped bar chart\n  mark: bar, gesture: drag, sorts: none, ascending, descending\n  labels: X, Y\n  options: totals\n")
	assert.Contains(t, out, "multi-series-line")
}

func TestCLI_Show(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		absent   []string
		wantErr  error
	}{
		{
			name:     "stacked tooltip",
			args:     []string{"show", "--chart", "stacked-bar", "--tap", "20,100"},
			contains: []string{"Stacked bar chart (stacked-bar, bar, tap)", "Tooltip: A at (70.0, 100.0)", "  total: 15", "  C: 27"},
		},
		{
			name:     "horizontal sorted with share",
			args:     []string{"show", "--chart", "horizontal-bar", "--sort", "descending", "--drag", "100,200"},
			contains: []string{"Sort: descending", "  share_of_max: 50%"},
		},
		{
			name:     "drag released",
			args:     []string{"show", "--chart", "horizontal-bar", "--drag", "100,200", "--release"},
			absent:   []string{"Tooltip:"},
			contains: []string{"Options: values=true"},
		},
		{
			name:     "hidden group",
			args:     []string{"show", "--chart", "grouped-bar", "--hide", "Y"},
			contains: []string{"Labels: [x] X [ ] Y", "  B: 20"},
			absent:   []string{"B/Y"},
		},
		{
			name:     "disabled option",
			args:     []string{"show", "--chart", "grouped-bar", "--disable", "totals"},
			contains: []string{"Options: totals=false"},
			absent:   []string{"Totals:"},
		},
		{
			name:    "unsupported sort",
			args:    []string{"show", "--chart", "basic-bar", "--sort", "ascending"},
			wantErr: domain.ErrUnsupportedSort,
		},
		{
			name:    "unknown sort",
			args:    []string{"show", "--chart", "basic-bar", "--sort", "sideways"},
			wantErr: domain.ErrUnsupportedSort,
		},
		{
			name:    "unknown label",
			args:    []string{"show", "--chart", "grouped-bar", "--hide", "Z"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "bad coordinates",
			args:    []string{"show", "--chart", "basic-bar", "--tap", "left"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "non-finite coordinates",
			args:    []string{"show", "--chart", "basic-bar", "--tap", "NaN"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "infinite drag",
			args:    []string{"show", "--chart", "horizontal-bar", "--drag", "10,+Inf"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "unknown chart",
			args:    []string{"show", "--chart", "pie"},
			wantErr: domain.ErrUnknownChart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}

	t.Run("tap and drag are exclusive", func(t *testing.T) {
		_, err := run(t, "show", "--chart", "basic-bar", "--tap", "1", "--drag", "1")
		assert.Error(t, err)
	})
}

func TestCLI_Presets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.ini")
	require.NoError(t, os.WriteFile(path, []byte("[big-first]\nchart = horizontal-bar\nsort = descending\n"), 0o600))

	out, err := run(t, "presets", "--presets", path)
	require.NoError(t, err)
	assert.Equal(t, "big-first: horizontal-bar, sort descending\n", out)

	out, err = run(t, "show", "--chart", "horizontal-bar", "--preset", "big-first", "--presets", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Sort: descending")

	_, err = run(t, "show", "--chart", "basic-bar", "--preset", "big-first", "--presets", path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = run(t, "show", "--chart", "horizontal-bar", "--preset", "missing", "--presets", path)
	assert.ErrorIs(t, err, domain.ErrPresetNotFound)
}
