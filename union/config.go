// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Declarative view configuration loaded from YAML or the environment.

package union

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = newValidator()

// newValidator registers the "combiner" tag, which accepts any name
// CombinerByName accepts.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("combiner", func(fl validator.FieldLevel) bool {
		_, ok := lookupCombiner(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}

	return v
}

// Config describes a View's policy. The zero value selects the defaults.
type Config struct {
	// Combiner is a CombinerByName name (case-insensitive); empty means sum.
	Combiner string `yaml:"combiner" env:"UNIONVIEW_COMBINER" validate:"omitempty,combiner"`
}

// LoadConfig decodes YAML into a Config and validates it. Unknown keys are
// rejected; empty input yields the zero Config.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// ConfigFromEnv reads UNIONVIEW_* variables into a Config and validates it.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("ConfigFromEnv: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("ConfigFromEnv: %w", err)
	}

	return cfg, nil
}

// Validate checks field constraints.
//
// Errors:
//   - ErrInvalidConfig, joined with the validator's field errors.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Options turns c into construction options for New.
func (c Config) Options() ([]Option, error) {
	if c.Combiner == "" {
		return nil, nil
	}
	comb, err := CombinerByName(c.Combiner)
	if err != nil {
		return nil, err
	}

	return []Option{WithCombiner(comb)}, nil
}

func (c *Config) normalize() {
	c.Combiner = strings.ToLower(strings.TrimSpace(c.Combiner))
}
