// Package config loads and validates experiment configuration.
//
// A Config file may be YAML (.yaml, .yml), TOML (.toml) or JSON (.json).
// Fields left out of the file keep the values of Default, which mirror the
// 686-server / 245-switch / 14-port comparison setup.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dcntopo/builder"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrUnknownFormat is returned for a file extension Load cannot decode.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// validate is a singleton validator instance.
var validate = validator.New()

// Config is the root of an experiment configuration.
type Config struct {
	Topology TopologyConfig `yaml:"topology" toml:"topology" json:"topology"`
	Sampling SamplingConfig `yaml:"sampling" toml:"sampling" json:"sampling"`
	Log      LogConfig      `yaml:"log" toml:"log" json:"log"`
	Metrics  MetricsConfig  `yaml:"metrics" toml:"metrics" json:"metrics"`
}

// TopologyConfig selects and parameterizes a builder. For fattree only
// Ports (the k parameter) is read.
type TopologyConfig struct {
	Kind       string `yaml:"kind" toml:"kind" json:"kind" validate:"required,oneof=jellyfish fattree"`
	Servers    int    `yaml:"servers" toml:"servers" json:"servers" validate:"gte=0"`
	Switches   int    `yaml:"switches" toml:"switches" json:"switches" validate:"gte=1"`
	Ports      int    `yaml:"ports" toml:"ports" json:"ports" validate:"gte=1"`
	Seed       int64  `yaml:"seed" toml:"seed" json:"seed"`
	MaxRepairs int    `yaml:"max_repairs" toml:"max_repairs" json:"max_repairs" validate:"gte=0"`
}

// SamplingConfig drives the path-length and link-diversity experiments.
type SamplingConfig struct {
	Samples  int   `yaml:"samples" toml:"samples" json:"samples" validate:"gte=1"`
	Workers  int   `yaml:"workers" toml:"workers" json:"workers" validate:"gte=1,lte=1024"`
	Pairs    int   `yaml:"pairs" toml:"pairs" json:"pairs" validate:"gte=1"`
	KPaths   int   `yaml:"k_paths" toml:"k_paths" json:"k_paths" validate:"gte=1"`
	ECMPWays []int `yaml:"ecmp_ways" toml:"ecmp_ways" json:"ecmp_ways" validate:"dive,gte=1"`
	FatTreeK int   `yaml:"fattree_k" toml:"fattree_k" json:"fattree_k" validate:"gte=0"`
}

// LogConfig configures the zerolog logger built by package logging.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" json:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" toml:"format" json:"format" validate:"oneof=console json"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" toml:"addr" json:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Topology: TopologyConfig{
			Kind:     builder.TopologyJellyfish,
			Servers:  686,
			Switches: 245,
			Ports:    14,
			Seed:     1,
		},
		Sampling: SamplingConfig{
			Samples:  30,
			Workers:  4,
			Pairs:    30,
			KPaths:   8,
			ECMPWays: []int{8, 64},
			FatTreeK: 14,
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate runs the struct-tag rules, then the cross-field checks the tags
// cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalid, e.Namespace(), e.Tag(), e.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	t := c.Topology
	switch t.Kind {
	case builder.TopologyFatTree:
		if t.Ports < builder.MinFatTreePorts || t.Ports%2 != 0 {
			return fmt.Errorf("%w: fattree ports must be even and >= %d, got %d", ErrInvalid, builder.MinFatTreePorts, t.Ports)
		}
	case builder.TopologyJellyfish:
		if t.Servers > t.Switches*t.Ports {
			return fmt.Errorf("%w: %d servers exceed the port budget %d×%d", ErrInvalid, t.Servers, t.Switches, t.Ports)
		}
		if per := (t.Servers + t.Switches - 1) / t.Switches; per > t.Ports {
			return fmt.Errorf("%w: %d servers per switch exceed %d ports", ErrInvalid, per, t.Ports)
		}
	}
	if k := c.Sampling.FatTreeK; k != 0 && (k < builder.MinFatTreePorts || k%2 != 0) {
		return fmt.Errorf("%w: sampling fattree_k must be 0 or even and >= %d, got %d", ErrInvalid, builder.MinFatTreePorts, k)
	}

	return nil
}
