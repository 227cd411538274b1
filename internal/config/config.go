// Package config provides Viper-based configuration loading for the
// progression service and its tools.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ProgressionConfig holds the ability point economy and catalog settings.
type ProgressionConfig struct {
	// CatalogDir is the directory holding per-category ability catalog YAML files.
	CatalogDir string `mapstructure:"catalog_dir"`
	// BasePoints is the ability point pool ceiling at level 1.
	BasePoints int `mapstructure:"base_points"`
	// PointsPerLevel is how many pool points each level past 1 adds.
	PointsPerLevel int `mapstructure:"points_per_level"`
	// MaxLevel is the highest character level the leveler grants points for.
	MaxLevel int `mapstructure:"max_level"`
}

// Config is the root configuration for all binaries.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	Progression ProgressionConfig `mapstructure:"progression"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateProgression(c.Progression); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateProgression(p ProgressionConfig) error {
	var errs []string
	if p.CatalogDir == "" {
		errs = append(errs, "progression.catalog_dir must not be empty")
	}
	if p.BasePoints < 0 {
		errs = append(errs, fmt.Sprintf("progression.base_points must be >= 0, got %d", p.BasePoints))
	}
	if p.PointsPerLevel < 0 {
		errs = append(errs, fmt.Sprintf("progression.points_per_level must be >= 0, got %d", p.PointsPerLevel))
	}
	if p.MaxLevel < 1 {
		errs = append(errs, fmt.Sprintf("progression.max_level must be >= 1, got %d", p.MaxLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with PROGRESSION_ prefix
	v.SetEnvPrefix("PROGRESSION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("progression.catalog_dir", "catalog")
	v.SetDefault("progression.base_points", 10)
	v.SetDefault("progression.points_per_level", 2)
	v.SetDefault("progression.max_level", 60)
}
