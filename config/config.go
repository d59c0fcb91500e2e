// Package config holds the run configuration of the expansion tool.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/specforge/monomorph/transform"
)

// Config represents the complete configuration.
type Config struct {
	QueryBehaviors QueryBehaviors `yaml:"queryBehaviors" json:"queryBehaviors" schema:"queryBehaviors"`
	Output         Output         `yaml:"output" json:"output" schema:"output"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"logLevel" json:"logLevel" schema:"logLevel" validate:"oneof=debug info warn error"`
}

// QueryBehaviors lists the behaviors whose properties are merged into
// request query parameters.
type QueryBehaviors struct {
	Namespace string   `yaml:"namespace" json:"namespace" schema:"namespace" validate:"required"`
	Names     []string `yaml:"names" json:"names" schema:"names" validate:"dive,required"`
}

// Output controls how the expanded model is written.
type Output struct {
	// Indent is the JSON indentation. Empty means compact output.
	Indent string `yaml:"indent" json:"indent" schema:"indent"`

	// Overwrite allows replacing an existing output file.
	Overwrite bool `yaml:"overwrite" json:"overwrite" schema:"overwrite"`
}

// New creates a new Config with default values.
func New() *Config {
	qb := transform.DefaultQueryBehaviors()
	return &Config{
		QueryBehaviors: QueryBehaviors{
			Namespace: qb.Namespace,
			Names:     qb.Names,
		},
		Output: Output{
			Indent:    "  ",
			Overwrite: true,
		},
		LogLevel: "info",
	}
}

// Load returns the default configuration updated from the file at path
// (skipped when path is empty) and then from key=value overrides. The result
// is not validated, so callers can adjust it before calling Validate.
func Load(path string, overrides []string) (*Config, error) {
	c := New()
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := c.ApplyOverrides(overrides); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile loads configuration from a file (YAML or JSON based on extension).
// Fields absent from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		// YAML is a superset of JSON.
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("unable to parse config as YAML or JSON: %w", err)
		}
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ExpandOptions returns the transform options for this configuration.
func (c *Config) ExpandOptions(logger *slog.Logger) []transform.Option {
	return []transform.Option{
		transform.WithLogger(logger),
		transform.WithQueryBehaviors(transform.QueryBehaviors{
			Namespace: c.QueryBehaviors.Namespace,
			Names:     append([]string(nil), c.QueryBehaviors.Names...),
		}),
	}
}
