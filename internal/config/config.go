// Package config loads the blueprint CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/blueprint"
)

// Config is the root configuration structure.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Codec   CodecConfig   `yaml:"codec"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// OutputConfig configures export and encode output.
type OutputConfig struct {
	Format string `yaml:"format"` // "json", "yaml", "cbor" or "spew"
	Indent int    `yaml:"indent"` // spaces; negative disables indentation
}

// CodecConfig configures decoding and encoding.
type CodecConfig struct {
	Unknown    string            `yaml:"unknown"` // "passthrough" or "strip"
	Extensions []ExtensionConfig `yaml:"extensions"`
}

// ExtensionConfig adds one field to a record registry.
type ExtensionConfig struct {
	Record string `yaml:"record"` // "definition", "grid" or "block"
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
}

// Formats accepted by Output.Format.
var Formats = []string{"json", "yaml", "cbor", "spew"}

// Load reads configuration from a YAML file. An empty path yields the
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		// Expand environment variables
		data = []byte(os.ExpandEnv(string(data)))

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// applyEnvOverrides applies BLUEPRINT_* environment variables to the config.
// Environment variables always override file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BLUEPRINT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("BLUEPRINT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("BLUEPRINT_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("BLUEPRINT_OUTPUT_INDENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Output.Indent = n
		}
	}
	if v := os.Getenv("BLUEPRINT_UNKNOWN"); v != "" {
		cfg.Codec.Unknown = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "json"
	}
	if cfg.Output.Indent == 0 {
		cfg.Output.Indent = 2
	}
	if cfg.Codec.Unknown == "" {
		cfg.Codec.Unknown = "passthrough"
	}
}

func validate(cfg *Config) error {
	var errs []error
	switch strings.ToLower(cfg.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", cfg.Logging.Level))
	}
	if cfg.Logging.Format != "json" && cfg.Logging.Format != "console" {
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format))
	}
	if err := ValidateFormat(cfg.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}
	if _, ok := blueprint.ParseUnknownPolicy(cfg.Codec.Unknown); !ok {
		errs = append(errs, fmt.Errorf("codec.unknown must be passthrough or strip, got %q", cfg.Codec.Unknown))
	}
	for i, ext := range cfg.Codec.Extensions {
		if ext.Name == "" {
			errs = append(errs, fmt.Errorf("codec.extensions[%d]: name is required", i))
		}
		if _, ok := blueprint.ParseKind(ext.Kind); !ok {
			errs = append(errs, fmt.Errorf("codec.extensions[%d]: unknown kind %q", i, ext.Kind))
		}
		switch strings.ToLower(ext.Record) {
		case "definition", "grid", "block":
		default:
			errs = append(errs, fmt.Errorf("codec.extensions[%d]: record must be definition, grid or block", i))
		}
	}
	return errors.Join(errs...)
}

// ValidateFormat checks an export format name.
func ValidateFormat(f string) error {
	for _, ok := range Formats {
		if f == ok {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (want one of %s)", f, strings.Join(Formats, ", "))
}

// UnknownPolicy returns the configured policy. Load has validated it.
func (c *Config) UnknownPolicy() blueprint.UnknownPolicy {
	p, _ := blueprint.ParseUnknownPolicy(c.Codec.Unknown)
	return p
}

// Schema builds the default schema grown by the configured extensions.
func (c *Config) Schema() (*blueprint.Schema, error) {
	s := blueprint.DefaultSchema()
	for _, ext := range c.Codec.Extensions {
		kind, _ := blueprint.ParseKind(ext.Kind)
		e := blueprint.Extension(ext.Name, kind)
		var err error
		switch strings.ToLower(ext.Record) {
		case "definition":
			s, err = s.WithDefinition(e)
		case "grid":
			s, err = s.WithGrid(e)
		default:
			s, err = s.WithBlock(e)
		}
		if err != nil {
			return nil, fmt.Errorf("extension %s: %w", ext.Name, err)
		}
	}
	return s, nil
}
