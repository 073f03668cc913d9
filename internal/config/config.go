// Package config loads cohrep configuration from an optional YAML file at
// the root of the analyzed project.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the cohrep configuration file, looked up in the
// input directory.
const FileName = ".cohrep.yaml"

// Config holds all cohrep configuration.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Cache    CacheConfig    `yaml:"cache"`
}

// AnalysisConfig holds configuration for source discovery.
type AnalysisConfig struct {
	// Exclude lists glob patterns, relative to the input root, whose
	// matches are skipped during discovery.
	Exclude []string `yaml:"exclude"`
}

// CacheConfig holds configuration for the skeleton cache.
type CacheConfig struct {
	// Enabled turns the on-disk skeleton cache on or off.
	Enabled bool `yaml:"enabled"`
	// Dir is the cache directory, relative to the input root.
	Dir string `yaml:"dir"`
}

// ErrInvalidConfig is returned when config validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".cohrep",
		},
	}
}

// Load reads config from <dir>/.cohrep.yaml, falling back to defaults when
// no file exists.
func Load(dir string) (*Config, error) {
	return LoadFromPath(filepath.Join(dir, FileName))
}

// LoadFromPath reads config from a specific path. A missing file yields
// the defaults; a malformed or invalid file is an error.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that config values are usable.
func Validate(cfg *Config) error {
	if cfg.Cache.Enabled && cfg.Cache.Dir == "" {
		return fmt.Errorf("%w: cache.dir must not be empty when the cache is enabled", ErrInvalidConfig)
	}
	if filepath.IsAbs(cfg.Cache.Dir) {
		return fmt.Errorf("%w: cache.dir must be relative to the input root, got %q", ErrInvalidConfig, cfg.Cache.Dir)
	}
	for _, p := range cfg.Analysis.Exclude {
		if p == "" {
			return fmt.Errorf("%w: analysis.exclude contains an empty pattern", ErrInvalidConfig)
		}
	}
	return nil
}
