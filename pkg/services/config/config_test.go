package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 500*time.Millisecond, cfg.Chart.AnimationDelay)
		assert.Equal(t, 320.0, cfg.Chart.Width)
		assert.Equal(t, "chart-atlas.db", cfg.Store.Path)
	})

	t.Run("file", func(t *testing.T) {
		path := writeFile(t, "config.yaml", `
server:
  port: 9090
chart:
  animation_delay: 1s
store:
  path: ""
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, time.Second, cfg.Chart.AnimationDelay)
		assert.Empty(t, cfg.Store.Path)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CHART_ATLAS_SERVER_PORT", "7070")
		t.Setenv("CHART_ATLAS_CHART_ANIMATION_DELAY", "250ms")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, 250*time.Millisecond, cfg.Chart.AnimationDelay)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("CHART_ATLAS_SERVER_PORT", "0")
		_, err := Load("")
		assert.Error(t, err)
	})
}

const presetsFile = `
[groups-by-size]
chart   = grouped-bar
sort    = descending
hide    = Y
disable = totals

[plain]
chart = basic-bar

[broken]
chart = basic-bar
sort  = sideways
`

func TestPresetRegistry(t *testing.T) {
	ctx := context.Background()
	registry, err := NewPresetRegistry(writeFile(t, "presets.ini", presetsFile))
	require.NoError(t, err)

	t.Run("full preset", func(t *testing.T) {
		p, err := registry.GetPreset(ctx, "groups-by-size")
		require.NoError(t, err)
		assert.Equal(t, &domain.Preset{
			Name:     "groups-by-size",
			Kind:     domain.ChartGroupedBar,
			Sort:     domain.SortDescending,
			Hidden:   []string{"Y"},
			Disabled: []string{"totals"},
		}, p)
	})

	t.Run("defaults sort to none", func(t *testing.T) {
		p, err := registry.GetPreset(ctx, "plain")
		require.NoError(t, err)
		assert.Equal(t, domain.SortNone, p.Sort)
		assert.Empty(t, p.Hidden)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := registry.GetPreset(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrPresetNotFound)
	})

	t.Run("invalid sort", func(t *testing.T) {
		_, err := registry.GetPreset(ctx, "broken")
		assert.ErrorIs(t, err, domain.ErrUnsupportedSort)

		_, err = registry.GetPresets(ctx)
		assert.Error(t, err)
	})

	t.Run("no file", func(t *testing.T) {
		empty, err := NewPresetRegistry("")
		require.NoError(t, err)
		presets, err := empty.GetPresets(ctx)
		require.NoError(t, err)
		assert.Empty(t, presets)
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, err := NewPresetRegistry(filepath.Join(t.TempDir(), "nope.ini"))
		assert.Error(t, err)
	})
}
