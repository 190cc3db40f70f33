// Package config loads the YAML site configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level site configuration.
type Config struct {
	// BaseURL is the absolute site root used in sitemap locations and
	// rendered navigation, without a trailing slash.
	BaseURL   string       `yaml:"base_url"`
	OutputDir string       `yaml:"output_dir"`
	Source    SourceConfig `yaml:"source"`
	// CanonFile optionally overrides the built-in 66-book canon table.
	CanonFile string `yaml:"canon_file,omitempty"`
}

// SourceConfig selects where raw book JSON comes from. A local directory
// takes precedence over mirrors when both are set.
type SourceConfig struct {
	Dir     string   `yaml:"dir,omitempty"`
	Mirrors []string `yaml:"mirrors,omitempty"`
	// CachePath enables the SQLite blob cache when non-empty.
	CachePath string `yaml:"cache_path,omitempty"`
	// MirrorPause is the delay before falling over to the next mirror.
	MirrorPause time.Duration `yaml:"-"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		BaseURL:   "https://example.org",
		OutputDir: "public",
		Source: SourceConfig{
			Dir:         "data",
			MirrorPause: 2 * time.Second,
		},
	}
}

// Load reads a YAML config file, applying defaults for unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	// Durations arrive as strings; a nil Source means the key was absent
	// and the defaults stand.
	var raw struct {
		BaseURL   string `yaml:"base_url"`
		OutputDir string `yaml:"output_dir"`
		Source    *struct {
			Dir         string   `yaml:"dir"`
			Mirrors     []string `yaml:"mirrors"`
			CachePath   string   `yaml:"cache_path"`
			MirrorPause string   `yaml:"mirror_pause"`
		} `yaml:"source"`
		CanonFile string `yaml:"canon_file"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg := Default()
	if raw.BaseURL != "" {
		cfg.BaseURL = raw.BaseURL
	}
	if raw.OutputDir != "" {
		cfg.OutputDir = raw.OutputDir
	}
	cfg.CanonFile = raw.CanonFile
	if raw.Source != nil {
		cfg.Source.Dir = raw.Source.Dir
		cfg.Source.Mirrors = raw.Source.Mirrors
		cfg.Source.CachePath = raw.Source.CachePath
		if raw.Source.MirrorPause != "" {
			pause, err := time.ParseDuration(raw.Source.MirrorPause)
			if err != nil {
				return nil, fmt.Errorf("invalid mirror_pause %q: %w", raw.Source.MirrorPause, err)
			}
			cfg.Source.MirrorPause = pause
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Source.Dir == "" && len(c.Source.Mirrors) == 0 {
		return fmt.Errorf("source needs a dir or at least one mirror")
	}
	return nil
}
