// Package config loads planner settings from defaults, an optional YAML
// file, and PRESSURE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/pressure/internal/logging"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is prepended to every environment override, e.g. PRESSURE_DUAL_WORKERS.
const EnvPrefix = "PRESSURE"

// Config holds all settings of the CLI.
type Config struct {
	Start  string       `mapstructure:"start"`
	Single SingleConfig `mapstructure:"single"`
	Dual   DualConfig   `mapstructure:"dual"`
	Log    LogConfig    `mapstructure:"log"`
}

// SingleConfig holds the lone-actor settings.
type SingleConfig struct {
	Minutes int `mapstructure:"minutes"`
}

// DualConfig holds the two-actor settings.
type DualConfig struct {
	Minutes int `mapstructure:"minutes"`
	// Workers is the partition pool size; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration with precedence (highest first):
//  1. Environment variables (PRESSURE_START, PRESSURE_DUAL_WORKERS, ...)
//  2. The YAML file at path, when path is non-empty
//  3. Built-in defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Start == "" {
		return fmt.Errorf("%w: start valve is empty", ErrInvalidConfig)
	}
	if c.Single.Minutes < 0 {
		return fmt.Errorf("%w: single.minutes %d < 0", ErrInvalidConfig, c.Single.Minutes)
	}
	if c.Dual.Minutes < 0 {
		return fmt.Errorf("%w: dual.minutes %d < 0", ErrInvalidConfig, c.Dual.Minutes)
	}
	if c.Dual.Workers < 0 {
		return fmt.Errorf("%w: dual.workers %d < 0", ErrInvalidConfig, c.Dual.Workers)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("start", "AA")
	v.SetDefault("single.minutes", 30)
	v.SetDefault("dual.minutes", 26)
	v.SetDefault("dual.workers", 0)
	v.SetDefault("log.level", "info")
}
