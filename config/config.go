// Package config loads runtime settings from SALESFORECAST_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name
const Prefix = "SALESFORECAST"

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `envconfig:"LOG"`
	Forecast ForecastConfig `envconfig:"FORECAST"`
	Report   ReportConfig   `envconfig:"REPORT"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level    string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Encoding string `envconfig:"ENCODING" default:"utf-8" validate:"required"`
}

// ForecastConfig contains model fitting configuration
type ForecastConfig struct {
	SplineBoundary string  `envconfig:"SPLINE_BOUNDARY" default:"not-a-knot" validate:"oneof=not-a-knot not_a_knot natural"`
	BandWidth      float64 `envconfig:"BAND_WIDTH" default:"2" validate:"gt=0"`
}

// ReportConfig contains spreadsheet and viewer configuration
type ReportConfig struct {
	FormulaRow  int           `envconfig:"FORMULA_ROW" default:"16" validate:"min=1,max=1048576"`
	SheetName   string        `envconfig:"SHEET_NAME" default:"Prediction Data" validate:"required,max=31"`
	OpenFile    bool          `envconfig:"OPEN_FILE" default:"true"`
	OpenTimeout time.Duration `envconfig:"OPEN_TIMEOUT" default:"30s" validate:"gt=0"`
	HTMLPath    string        `envconfig:"HTML_PATH"`
	SummaryPath string        `envconfig:"SUMMARY_PATH"`
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its validate tag
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
