// Package config holds the run parameters of the lvlabel command.
//
// Priority: environment > file > defaults. Files are YAML (.yaml, .yml) or
// TOML (.toml); environment variables use the LVLABEL_ prefix. The merged
// result is validated with go-playground/validator struct tags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for a config file with an unsupported extension.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalidEnv is returned when an LVLABEL_ variable cannot be parsed.
	ErrInvalidEnv = errors.New("config: invalid environment value")

	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid configuration")
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVLABEL_"

// configValidate is the shared validator instance.
var configValidate = validator.New()

// Config is the full parameter set.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after Load.
type Config struct {
	// Graph selects the edge-list input for graceful and l321.
	Graph GraphConfig `yaml:"graph" toml:"graph"`

	// Subsets configures subset enumeration.
	Subsets SubsetsConfig `yaml:"subsets" toml:"subsets"`

	// Wheel configures the wheel graceful search.
	Wheel WheelConfig `yaml:"wheel" toml:"wheel"`

	// L321 configures the L(3,2,1) searches.
	L321 L321Config `yaml:"l321" toml:"l321"`

	// Log configures logging.
	Log LogConfig `yaml:"log" toml:"log"`
}

// GraphConfig describes where edges come from.
type GraphConfig struct {
	// Path of the edge-list file; "-" or empty reads standard input.
	Path string `yaml:"path" toml:"path"`
	// Strict rejects a trailing unpaired integer.
	Strict bool `yaml:"strict" toml:"strict"`
	// MultiEdges allows repeated vertex pairs.
	MultiEdges bool `yaml:"multi_edges" toml:"multi_edges"`
}

// SubsetsConfig sets the ground-set size.
type SubsetsConfig struct {
	N int `yaml:"n" toml:"n" validate:"gte=0,lte=50"`
}

// WheelConfig sets the rim length of W_n.
type WheelConfig struct {
	N int `yaml:"n" toml:"n" validate:"gte=3"`
}

// L321Config selects exhaustive or minimum-span mode.
type L321Config struct {
	// MaxLabel is the exhaustive-mode label bound.
	MaxLabel int `yaml:"max_label" toml:"max_label" validate:"gte=0"`
	// MinSpan switches to minimum-span mode.
	MinSpan bool `yaml:"min_span" toml:"min_span"`
	// MaxBound caps the min-span search; 0 means no cap.
	MaxBound int `yaml:"max_bound" toml:"max_bound" validate:"gte=0"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in parameters.
func Default() Config {
	return Config{
		Graph:   GraphConfig{Path: "-"},
		Subsets: SubsetsConfig{N: 3},
		Wheel:   WheelConfig{N: 4},
		L321:    L321Config{MaxLabel: 7},
		Log:     LogConfig{Level: "info"},
	}
}

// Load merges defaults, the file at path (if non-empty) and LVLABEL_
// environment overrides, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

func loadFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("parse TOML %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse YAML %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	return nil
}

// loadEnv applies overrides; lookup is os.LookupEnv outside tests.
func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SUBSETS_N", &cfg.Subsets.N},
		{"WHEEL_N", &cfg.Wheel.N},
		{"L321_MAX_LABEL", &cfg.L321.MaxLabel},
		{"L321_MAX_BOUND", &cfg.L321.MaxBound},
	}
	for _, e := range ints {
		if v, ok := lookup(EnvPrefix + e.key); ok && v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s=%q: %w", EnvPrefix, e.key, v, ErrInvalidEnv)
			}
			*e.dst = i
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"L321_MIN_SPAN", &cfg.L321.MinSpan},
		{"GRAPH_STRICT", &cfg.Graph.Strict},
		{"GRAPH_MULTI_EDGES", &cfg.Graph.MultiEdges},
	}
	for _, e := range bools {
		if v, ok := lookup(EnvPrefix + e.key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s=%q: %w", EnvPrefix, e.key, v, ErrInvalidEnv)
			}
			*e.dst = b
		}
	}

	if v, ok := lookup(EnvPrefix + "GRAPH_PATH"); ok && v != "" {
		cfg.Graph.Path = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	return nil
}
