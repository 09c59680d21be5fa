// Package config loads sheetwise settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. SHEETWISE_LOG_LEVEL.
const Prefix = "SHEETWISE"

// Config holds all application settings.
type Config struct {
	Logging    LoggingConfig    `envconfig:"LOG"`
	Chart      ChartConfig      `envconfig:"CHART"`
	PDF        PDFConfig        `envconfig:"PDF"`
	Classifier ClassifierConfig `envconfig:"CLASSIFIER"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level    string `envconfig:"LEVEL" default:"info"`
	Format   string `envconfig:"FORMAT" default:"json"`
	Output   string `envconfig:"OUTPUT" default:"console"`
	FilePath string `envconfig:"FILE_PATH" default:"logs/sheetwise.log"`
}

// ChartConfig contains chart image settings.
type ChartConfig struct {
	Width  int `envconfig:"WIDTH" default:"800"`
	Height int `envconfig:"HEIGHT" default:"500"`
}

// PDFConfig contains export layout settings.
type PDFConfig struct {
	FontSize    float64 `envconfig:"FONT_SIZE" default:"8"`
	Orientation string  `envconfig:"ORIENTATION" default:"P"`
}

// ClassifierConfig contains column classification settings.
type ClassifierConfig struct {
	Sample int `envconfig:"SAMPLE" default:"10"`
}

// Load reads the configuration from SHEETWISE_* environment variables,
// applying defaults, and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output %q", c.Logging.Output)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	if c.PDF.FontSize <= 0 {
		return fmt.Errorf("PDF font size must be positive, got %v", c.PDF.FontSize)
	}
	c.PDF.Orientation = strings.ToUpper(c.PDF.Orientation)
	if c.PDF.Orientation != "P" && c.PDF.Orientation != "L" {
		return fmt.Errorf("PDF orientation must be P or L, got %q", c.PDF.Orientation)
	}
	if c.Classifier.Sample <= 0 {
		return fmt.Errorf("classifier sample must be positive, got %d", c.Classifier.Sample)
	}
	return nil
}
