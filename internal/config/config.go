// SPDX-License-Identifier: MIT

// Package config loads the cspath YAML configuration. Command-line flags
// override file values, which override Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cspath/cspath"
)

// ErrInvalid wraps every validation failure returned by Validate and Load.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SolverConfig selects the search strategy and input handling.
type SolverConfig struct {
	Strategy string `yaml:"strategy" validate:"oneof=pair-label exact"`
	TieBreak string `yaml:"tie_break" validate:"oneof=min-time first-seen"`
	// InfEdgeThreshold marks entries ≥ the value as missing edges; 0 disables it.
	InfEdgeThreshold int64 `yaml:"inf_edge_threshold" validate:"gte=0"`
	MaxNodes         int   `yaml:"max_nodes" validate:"min=1"`
	StrictSentinel   bool  `yaml:"strict_sentinel"`
}

// Options translates the section into solver options. The time limit is
// per query and is not part of the configuration.
func (s SolverConfig) Options() ([]cspath.Option, error) {
	strategy, err := cspath.ParseStrategy(s.Strategy)
	if err != nil {
		return nil, err
	}
	tieBreak, err := cspath.ParseTieBreak(s.TieBreak)
	if err != nil {
		return nil, err
	}
	opts := []cspath.Option{cspath.WithStrategy(strategy), cspath.WithTieBreak(tieBreak)}
	if s.InfEdgeThreshold > 0 {
		opts = append(opts, cspath.WithInfEdgeThreshold(s.InfEdgeThreshold))
	}

	return opts, nil
}

// OutputConfig controls how infeasible answers are reported.
type OutputConfig struct {
	Infeasible string `yaml:"infeasible" validate:"oneof=sentinel error"`
	Sentinel   int64  `yaml:"sentinel"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Level     string `yaml:"level" validate:"oneof=debug info warn error"`
	Format    string `yaml:"format" validate:"oneof=text json"`
	AddSource bool   `yaml:"add_source"`
}

// ServerConfig configures `cspath serve`.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"hostname_port"`
	MaxNodes        int           `yaml:"max_nodes" validate:"min=1"`
	SolveTimeout    time.Duration `yaml:"solve_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// MetricsConfig names the Prometheus textfile written by `cspath solve`.
// An empty File disables it.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			Strategy: "pair-label",
			TieBreak: "min-time",
			MaxNodes: 2048,
		},
		Output: OutputConfig{
			Infeasible: "sentinel",
			Sentinel:   2147483647,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			MaxNodes:        512,
			SolveTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

var validate = validator.New()

// Validate checks field constraints and reports all violations at once.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalid, verrs.Error())
		}

		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Load reads the YAML file at path over Default and validates the result.
// An empty path yields the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode unmarshals data into cfg, keeping cfg's values for absent keys and
// rejecting unknown keys.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse yaml: %w", err)
	}

	return nil
}

// Marshal renders cfg as YAML, as written by `cspath config init`.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
