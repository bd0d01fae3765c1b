package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"SensexBands/internal/model"
)

// DefaultPath is where the optional config file is looked up.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	Input struct {
		Path        string   `yaml:"path" validate:"required"`
		DateLayout  string   `yaml:"date_layout" validate:"required"`
		Sheet       string   `yaml:"sheet"`
		DropColumns []string `yaml:"drop_columns" validate:"dive,required"`
	} `yaml:"input"`
}

// Load reads config from a YAML file and fills in defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Defaults
	if cfg.Input.Path == "" {
		cfg.Input.Path = "Sensex25years.csv"
	}
	if cfg.Input.DateLayout == "" {
		// day-month-year, zero padding optional
		cfg.Input.DateLayout = "2-1-2006"
	}
	if cfg.Input.DropColumns == nil {
		cfg.Input.DropColumns = []string{model.ColOpen, model.ColHigh, model.ColLow, model.ColVolume}
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, col := range c.Input.DropColumns {
		switch col {
		case model.ColDate, model.ColPrice, model.ColChangePct:
			return fmt.Errorf("input.drop_columns must not contain %q", col)
		}
	}
	return nil
}
