// Package config loads lenscurve settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/parser"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/projector"
	"gopkg.in/yaml.v3"
)

// Config holds all lenscurve configuration.
type Config struct {
	// Chart settings
	Chart ChartConfig `yaml:"chart"`

	// Projection settings
	Projection ProjectionConfig `yaml:"projection"`

	// Sensor-size curve settings
	Sensor SensorConfig `yaml:"sensor"`

	// Spreadsheet ingestion
	Ingest IngestConfig `yaml:"ingest"`

	// Workers bounds concurrent phone projection (0 = unlimited)
	Workers int `yaml:"workers"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ChartConfig configures the chart axes.
type ChartConfig struct {
	CeilingFocalLength float64  `yaml:"ceiling_focal_length"`
	ReferenceLabels    []string `yaml:"reference_labels"`
	IncludeTable       bool     `yaml:"include_table"`
}

// ProjectionConfig configures the crop-factor projection.
type ProjectionConfig struct {
	DivergenceTolerance float64 `yaml:"divergence_tolerance"`
}

// SensorConfig configures the sensor-size curve.
type SensorConfig struct {
	NormalizeBasis bool   `yaml:"normalize_basis"`
	Scale          string `yaml:"scale"` // categorical, log
}

// IngestConfig configures spreadsheet ingestion.
type IngestConfig struct {
	Sheet   string         `yaml:"sheet"`
	Columns parser.Columns `yaml:"columns"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Chart: ChartConfig{
			CeilingFocalLength: projector.DefaultCeilingFocalLength,
			ReferenceLabels:    append([]string(nil), projector.DefaultReferenceLabels...),
		},
		Projection: ProjectionConfig{
			DivergenceTolerance: projector.DefaultDivergenceTolerance,
		},
		Sensor: SensorConfig{
			NormalizeBasis: true,
			Scale:          string(lenscurve.SensorScaleCategorical),
		},
		Ingest: IngestConfig{
			Columns: parser.DefaultColumns(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults apply when the file doesn't exist
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// Override with environment variables
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the chart builder cannot use.
func (c *Config) Validate() error {
	if c.Chart.CeilingFocalLength <= 0 {
		return errors.New("chart.ceiling_focal_length must be positive")
	}
	if c.Projection.DivergenceTolerance <= 0 {
		return errors.New("projection.divergence_tolerance must be positive")
	}
	if _, err := lenscurve.ParseSensorScale(c.Sensor.Scale); err != nil {
		return fmt.Errorf("sensor.scale: %w", err)
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}

// BuildOptions converts the configuration into chart options.
func (c *Config) BuildOptions() lenscurve.Options {
	normalize := c.Sensor.NormalizeBasis
	opts := lenscurve.DefaultOptions()
	opts.Ceiling = c.Chart.CeilingFocalLength
	opts.DivergenceTolerance = c.Projection.DivergenceTolerance
	opts.NormalizeSensorBasis = &normalize
	opts.SensorScale = lenscurve.SensorScale(c.Sensor.Scale)
	opts.IncludeTable = c.Chart.IncludeTable
	opts.Workers = c.Workers
	return opts
}

// IngestOptions converts the configuration into ingestion options.
func (c *Config) IngestOptions() lenscurve.IngestOptions {
	return lenscurve.IngestOptions{
		Sheet:   c.Ingest.Sheet,
		Columns: c.Ingest.Columns,
		Labels:  append([]string(nil), c.Chart.ReferenceLabels...),
	}
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("LENSCURVE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LENSCURVE_CEILING_FOCAL_LENGTH"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LENSCURVE_CEILING_FOCAL_LENGTH: %w", err)
		}
		c.Chart.CeilingFocalLength = f
	}
	if v := os.Getenv("LENSCURVE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LENSCURVE_WORKERS: %w", err)
		}
		c.Workers = n
	}
	return nil
}
