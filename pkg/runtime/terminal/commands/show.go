package commands

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
	"github.com/de-tools/chart-atlas/pkg/services/charts"
	"github.com/de-tools/chart-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

// ViewReporter renders one chart view.
type ViewReporter interface {
	Handle(view domain.ChartView) error
}

type ShowCmd struct {
	chart       string
	sort        string
	hide        []string
	disable     []string
	tap         string
	drag        string
	release     bool
	width       float64
	height      float64
	preset      string
	presetsPath string
	registry    charts.Registry
	reporter    ViewReporter
}

func NewShowCmd(registry charts.Registry, reporter ViewReporter) *cobra.Command {
	sc := &ShowCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render a chart after applying interactions",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.chart, "chart", "", "Chart variant to render, as listed by the charts command")
	cmd.Flags().StringVar(&sc.sort, "sort", "", "Sort mode: none, ascending, descending or alphabetical")
	cmd.Flags().StringSliceVar(&sc.hide, "hide", nil, "Labels to hide from the legend")
	cmd.Flags().StringSliceVar(&sc.disable, "disable", nil, "Display options to turn off")
	cmd.Flags().StringVar(&sc.tap, "tap", "", "Tap at X,Y in plot coordinates")
	cmd.Flags().StringVar(&sc.drag, "drag", "", "Drag to X,Y in plot coordinates")
	cmd.Flags().BoolVar(&sc.release, "release", false, "Release the pointer after the drag")
	cmd.Flags().Float64Var(&sc.width, "width", charts.DefaultViewport.Width, "Plot width")
	cmd.Flags().Float64Var(&sc.height, "height", charts.DefaultViewport.Height, "Plot height")
	cmd.Flags().StringVar(&sc.preset, "preset", "", "Preset to start from")
	cmd.Flags().StringVar(&sc.presetsPath, "presets", "", "Path to the presets ini file")

	_ = cmd.MarkFlagRequired("chart")
	cmd.MarkFlagsMutuallyExclusive("tap", "drag")
	cmd.MarkFlagsRequiredTogether("preset", "presets")

	return cmd
}

func (sc *ShowCmd) run(cmd *cobra.Command, args []string) error {
	c, err := sc.registry.Get(domain.ChartKind(sc.chart))
	if err != nil {
		return err
	}
	desc := c.Descriptor()

	inputs, err := sc.inputs(cmd, desc)
	if err != nil {
		return err
	}

	inst := c.Open(domain.Size{Width: sc.width, Height: sc.height})
	for _, in := range inputs {
		inst.Apply(in)
	}
	return sc.reporter.Handle(inst.View())
}

func (sc *ShowCmd) inputs(cmd *cobra.Command, desc domain.ChartDescriptor) ([]domain.Input, error) {
	var inputs []domain.Input

	if sc.preset != "" {
		presets, err := config.NewPresetRegistry(sc.presetsPath)
		if err != nil {
			return nil, err
		}
		preset, err := presets.GetPreset(cmd.Context(), sc.preset)
		if err != nil {
			return nil, err
		}
		if preset.Kind != desc.Kind {
			return nil, fmt.Errorf("%w: preset %s is for %s", domain.ErrInvalidInput, preset.Name, preset.Kind)
		}
		inputs = append(inputs, preset.Inputs()...)
	}

	for _, l := range sc.hide {
		if !slices.Contains(desc.Labels, l) {
			return nil, fmt.Errorf("%w: %s has no label %q", domain.ErrInvalidInput, desc.Kind, l)
		}
		inputs = append(inputs, domain.Input{Type: domain.InputToggleLabel, Label: l})
	}

	if sc.sort != "" {
		mode, err := domain.ParseSortMode(sc.sort)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(desc.Sorts, mode) {
			return nil, fmt.Errorf("%w: %s does not support %s", domain.ErrUnsupportedSort, desc.Kind, mode)
		}
		inputs = append(inputs, domain.Input{Type: domain.InputSort, Sort: mode})
	}

	for _, o := range sc.disable {
		if !slices.Contains(desc.Options, o) {
			return nil, fmt.Errorf("%w: %s has no option %q", domain.ErrInvalidInput, desc.Kind, o)
		}
		inputs = append(inputs, domain.Input{Type: domain.InputToggleOption, Option: o})
	}

	switch {
	case sc.tap != "":
		x, y, err := parsePoint(sc.tap)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, domain.Input{Type: domain.InputTap, X: x, Y: y})
	case sc.drag != "":
		x, y, err := parsePoint(sc.drag)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, domain.Input{Type: domain.InputDrag, X: x, Y: y})
		if sc.release {
			inputs = append(inputs, domain.Input{Type: domain.InputRelease})
		}
	}
	return inputs, nil
}

// parsePoint reads "X" or "X,Y". Both coordinates must be finite.
func parsePoint(s string) (float64, float64, error) {
	xs, ys, hasY := strings.Cut(s, ",")
	x, err := parseCoordinate(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad x in %q", domain.ErrInvalidInput, s)
	}
	if !hasY {
		return x, 0, nil
	}
	y, err := parseCoordinate(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad y in %q", domain.ErrInvalidInput, s)
	}
	return x, y, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate %q is not finite", s)
	}
	return v, nil
}
