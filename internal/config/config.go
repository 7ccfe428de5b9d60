// Package config reads CLI defaults from PROGRESSION_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"

	"github.com/vipcxj/progression/internal/eval"
	"github.com/vipcxj/progression/internal/render"
	"github.com/vipcxj/progression/internal/shell"
)

const Prefix = "PROGRESSION_"

type Config struct {
	Kind        eval.Kind        `env:"KIND" envDefault:"auto"`
	Format      render.Format    `env:"FORMAT" envDefault:"text"`
	Separator   render.Separator `env:"SEPARATOR" envDefault:"comma"`
	Shell       shell.ShellType  `env:"SHELL_TYPE" envDefault:"auto"`
	MaxElements uint64           `env:"MAX_ELEMENTS" envDefault:"1000000"`
	LogLevel    zapcore.Level    `env:"LOG_LEVEL" envDefault:"warn"`
}

func options() env.Options {
	return env.Options{Prefix: Prefix}
}

// Variable describes one environment variable read by Load.
type Variable struct {
	Key     string `json:"key" yaml:"key"`
	Default string `json:"default" yaml:"default"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Variables lists the variables Load reads with their defaults and, when
// set, their current values.
func Variables() ([]Variable, error) {
	params, err := env.GetFieldParamsWithOptions(&Config{}, options())
	if err != nil {
		return nil, fmt.Errorf("failed to get field params: %w", err)
	}
	vars := make([]Variable, 0, len(params))
	for _, p := range params {
		v := Variable{Key: p.Key, Default: p.DefaultValue}
		if val, ok := os.LookupEnv(p.Key); ok {
			v.Value = val
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// Load parses the environment. Unknown enum values are reported with the
// variable name.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, options()); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", withKeys(err))
	}
	return cfg, nil
}

// withKeys prefixes every field parse error with the variable it was read
// from, since env only names the struct field.
func withKeys(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return err
	}
	errs := make([]error, 0, len(agg.Errors))
	for _, e := range agg.Errors {
		var pe env.ParseError
		if errors.As(e, &pe) {
			if key := keyOf(pe.Name); key != "" {
				e = fmt.Errorf("%s: %w", key, e)
			}
		}
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// keyOf returns the variable read into the Config field named field.
func keyOf(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
	if name == "" {
		return ""
	}
	return Prefix + name
}
