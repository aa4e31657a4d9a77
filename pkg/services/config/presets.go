package config

import (
	"context"
	"fmt"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// PresetRegistry reads named chart presets from an ini file, one section per preset:
//
//	[quarterly]
//	chart   = grouped-bar
//	sort    = descending
//	hide    = Y
//	disable = totals
type PresetRegistry interface {
	GetPresets(ctx context.Context) ([]domain.Preset, error)
	GetPreset(ctx context.Context, name string) (*domain.Preset, error)
}

type iniPresets struct {
	cfg *ini.File
}

// NewPresetRegistry loads presets from path. An empty path yields a registry
// without presets.
func NewPresetRegistry(path string) (PresetRegistry, error) {
	if path == "" {
		return &iniPresets{cfg: ini.Empty()}, nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	return &iniPresets{cfg: cfg}, nil
}

func (p *iniPresets) GetPresets(_ context.Context) ([]domain.Preset, error) {
	var presets []domain.Preset
	for _, section := range p.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		preset, err := parsePreset(section)
		if err != nil {
			return nil, err
		}
		presets = append(presets, *preset)
	}
	return presets, nil
}

func (p *iniPresets) GetPreset(_ context.Context, name string) (*domain.Preset, error) {
	section, err := p.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPresetNotFound, name)
	}
	return parsePreset(section)
}

func parsePreset(section *ini.Section) (*domain.Preset, error) {
	kind := section.Key("chart").String()
	if kind == "" {
		return nil, fmt.Errorf("preset %s: chart is required", section.Name())
	}

	sort, err := domain.ParseSortMode(section.Key("sort").String())
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", section.Name(), err)
	}

	return &domain.Preset{
		Name:     section.Name(),
		Kind:     domain.ChartKind(kind),
		Sort:     sort,
		Hidden:   section.Key("hide").Strings(","),
		Disabled: section.Key("disable").Strings(","),
	}, nil
}
