// Package config loads service settings and chart presets.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "CHART_ATLAS"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Chart   ChartConfig   `mapstructure:"chart"`
	Presets PresetsConfig `mapstructure:"presets"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type StoreConfig struct {
	// Path of the SQLite database. Empty disables session persistence.
	Path string `mapstructure:"path"`
}

type ChartConfig struct {
	AnimationDelay time.Duration `mapstructure:"animation_delay"`
	Width          float64       `mapstructure:"width"`
	Height         float64       `mapstructure:"height"`
}

type PresetsConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("store.path", "chart-atlas.db")
	v.SetDefault("chart.animation_delay", 500*time.Millisecond)
	v.SetDefault("chart.width", 320)
	v.SetDefault("chart.height", 250)
	v.SetDefault("presets.path", "")
	v.SetDefault("log.level", "info")
}

// Load reads settings from the optional config file at path, then from
// CHART_ATLAS_* environment variables, e.g. CHART_ATLAS_SERVER_PORT.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Server.Port <= 0 {
		return nil, fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	return &cfg, nil
}
