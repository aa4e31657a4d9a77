package commands

import (
	"github.com/de-tools/chart-atlas/pkg/models/domain"
	"github.com/de-tools/chart-atlas/pkg/services/charts"
	"github.com/de-tools/chart-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

// ListReporter prints catalogs of chart variants and presets.
type ListReporter interface {
	Charts(descriptors []domain.ChartDescriptor) error
	Presets(presets []domain.Preset) error
}

func NewChartsCmd(registry charts.Registry, reporter ListReporter) *cobra.Command {
	return &cobra.Command{
		Use:   "charts",
		Short: "List available chart variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return reporter.Charts(registry.List())
		},
	}
}

type PresetsCmd struct {
	presetsPath string
	reporter    ListReporter
}

func NewPresetsCmd(reporter ListReporter) *cobra.Command {
	pc := &PresetsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List presets defined in a presets file",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.presetsPath, "presets", "", "Path to the presets ini file")
	_ = cmd.MarkFlagRequired("presets")

	return cmd
}

func (pc *PresetsCmd) run(cmd *cobra.Command, args []string) error {
	registry, err := config.NewPresetRegistry(pc.presetsPath)
	if err != nil {
		return err
	}
	presets, err := registry.GetPresets(cmd.Context())
	if err != nil {
		return err
	}
	return pc.reporter.Presets(presets)
}
