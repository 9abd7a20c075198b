// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/vecmat/matrix"
)

// envPrefix namespaces every variable: RETURNS_INPUT, RETURNS_FORMAT, ...
const envPrefix = "returns"

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// Compounding modes accepted in RETURNS_COMPOUNDING.
const (
	compoundingGeometric = "geometric"
	compoundingSimple    = "simple"
)

// ErrBadConfig is returned when a variable parses but holds an unsupported value.
var ErrBadConfig = errors.New("returns: invalid configuration")

// Config holds the command configuration, read from the environment.
type Config struct {
	Input       string `envconfig:"INPUT" default:"-"`
	Header      bool   `envconfig:"HEADER" default:"true"`
	Format      string `envconfig:"FORMAT" default:"text"`
	Compounding string `envconfig:"COMPOUNDING" default:"geometric"`
	LeadingNaN  bool   `envconfig:"LEADING_NAN" default:"false"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev      bool   `envconfig:"LOG_DEV" default:"false"`
}

// loadConfig processes RETURNS_* variables and validates the enumerations.
func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("%w: RETURNS_FORMAT %q (want %s|%s)", ErrBadConfig, c.Format, formatText, formatJSON)
	}
	switch c.Compounding {
	case compoundingGeometric, compoundingSimple:
	default:
		return fmt.Errorf("%w: RETURNS_COMPOUNDING %q (want %s|%s)",
			ErrBadConfig, c.Compounding, compoundingGeometric, compoundingSimple)
	}

	return nil
}

// seriesOptions maps the configuration onto matrix series options.
func (c *Config) seriesOptions() []matrix.Option {
	var opts []matrix.Option
	if c.LeadingNaN {
		opts = append(opts, matrix.WithLeadingNaN())
	}
	if c.Compounding == compoundingSimple {
		opts = append(opts, matrix.WithCompounding(matrix.CompoundSimple))
	}

	return opts
}
