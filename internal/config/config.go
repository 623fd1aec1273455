// Package config provides configuration management for the phonenorm CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidOutputFormat = errors.New("output.format must be 'tsv' or 'table'")
	ErrInvalidOutputStyle  = errors.New("output.style must be 'display' or 'e164'")
)

// Config represents the complete CLI configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// ValidationConfig defines how numbering plan violations are handled.
type ValidationConfig struct {
	FailFast   bool `yaml:"fail_fast"`
	StrictNANP bool `yaml:"strict_nanp"`
}

// OutputConfig defines output layout.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=tsv table"`
	Style  string `yaml:"style" validate:"oneof=display e164"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn"},
		Output:  OutputConfig{Format: "tsv", Style: "display"},
	}
}

// LoadConfig loads configuration from a YAML file. Missing keys keep their
// default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch fieldErrs[0].StructNamespace() {
	case "Config.Logging.Level":
		return fmt.Errorf("%w, got %q", ErrInvalidLogLevel, c.Logging.Level)
	case "Config.Output.Format":
		return fmt.Errorf("%w, got %q", ErrInvalidOutputFormat, c.Output.Format)
	case "Config.Output.Style":
		return fmt.Errorf("%w, got %q", ErrInvalidOutputStyle, c.Output.Style)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, fieldErrs[0])
	}
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Level: %s, FailFast: %t, StrictNANP: %t, Format: %s, Style: %s}",
		c.Logging.Level,
		c.Validation.FailFast,
		c.Validation.StrictNANP,
		c.Output.Format,
		c.Output.Style,
	)
}
