// SPDX-License-Identifier: MIT

// Package config provides configuration management for the gmat CLI.
//
// Values are layered with koanf, highest priority first:
// explicitly set flags > GMAT_* environment variables > gmat.yaml > defaults.
package config

import (
	"errors"
	"fmt"
)

// Element types accepted by --element.
const (
	ElementInt   = "int"
	ElementFloat = "float"
)

// Output modes accepted by --output.
const (
	OutputText  = "text"
	OutputTable = "table"
)

// Defaults.
const (
	DefaultConfigFile = "gmat.yaml"
	DefaultElement    = ElementInt
	DefaultOutput     = OutputText
	DefaultPrecision  = -1 // shortest representation that round-trips
	EnvPrefix         = "GMAT_"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the resolved CLI settings.
type Config struct {
	Element   string `koanf:"element"`
	Output    string `koanf:"output"`
	Precision int    `koanf:"precision"`
	Verbose   bool   `koanf:"verbose"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Element:   DefaultElement,
		Output:    DefaultOutput,
		Precision: DefaultPrecision,
	}
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	switch c.Element {
	case ElementInt, ElementFloat:
	default:
		return fmt.Errorf("element %q (want %s|%s): %w", c.Element, ElementInt, ElementFloat, ErrInvalidConfig)
	}
	switch c.Output {
	case OutputText, OutputTable:
	default:
		return fmt.Errorf("output %q (want %s|%s): %w", c.Output, OutputText, OutputTable, ErrInvalidConfig)
	}
	if c.Precision < -1 {
		return fmt.Errorf("precision %d (want >= -1): %w", c.Precision, ErrInvalidConfig)
	}

	return nil
}
