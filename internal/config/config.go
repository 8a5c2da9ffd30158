// Package config loads the YAML configuration shared by the mazerun
// binaries.
//
// Every field has a default, so a missing file or a partial file is valid.
// Values read from disk are layered over Default() and then validated.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/mazerun"
)

// Config is the root of the configuration file.
type Config struct {
	Search    SearchConfig    `yaml:"search"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Cache     CacheConfig     `yaml:"cache"`
	Server    ServerConfig    `yaml:"server"`
}

// SearchConfig holds move costs and batching parameters.
type SearchConfig struct {
	StepCost int    `yaml:"step_cost" validate:"gt=0"`
	TurnCost int    `yaml:"turn_cost" validate:"gt=0"`
	Facing   string `yaml:"facing" validate:"oneof=north east south west n e s w"`
	// Workers bounds concurrent searches in batch mode. Zero means one per CPU.
	Workers int `yaml:"workers" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	// File, when set, receives logs instead of stderr.
	File string `yaml:"file"`
}

type TelemetryConfig struct {
	TraceExporter  string `yaml:"trace_exporter" validate:"oneof=none stdout otlp"`
	MetricExporter string `yaml:"metric_exporter" validate:"oneof=none stdout prometheus"`
	OTLPEndpoint   string `yaml:"otlp_endpoint" validate:"required_if=TraceExporter otlp"`
	OTLPInsecure   bool   `yaml:"otlp_insecure"`
}

// CacheConfig controls the on-disk result cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir" validate:"required_if=Enabled true"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			StepCost: mazerun.DefaultStepCost,
			TurnCost: mazerun.DefaultTurnCost,
			Facing:   "east",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			TraceExporter:  "none",
			MetricExporter: "none",
			OTLPEndpoint:   "localhost:4317",
			OTLPInsecure:   true,
		},
		Cache: CacheConfig{
			Dir: ".mazerun-cache",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// Load reads path over the defaults. An empty path or a file that does not
// exist yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Write stores c as YAML at path.
func Write(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the search section into engine options.
func (s SearchConfig) Options() ([]mazerun.Option, error) {
	facing, err := mazerun.ParseOrientation(s.Facing)
	if err != nil {
		return nil, err
	}
	options := []mazerun.Option{
		mazerun.WithCosts(s.StepCost, s.TurnCost),
		mazerun.WithFacing(facing),
	}
	if s.Workers > 0 {
		options = append(options, mazerun.WithWorkers(s.Workers))
	}
	return options, nil
}
