// Package config provides configuration management for attitude.
// Configuration is loaded from multiple sources with the following precedence:
// embedded defaults → global file → env vars → CLI flags
package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
	"github.com/alexander-akhmetov/attitude/internal/dirs"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all configuration settings for attitude.
// TUISet tracks whether tui was explicitly set, so a later layer can
// override an earlier true with false.
type Config struct {
	Overflow string `yaml:"overflow"` // wrap | saturate | error
	Format   string `yaml:"format"`   // text | json
	Color    string `yaml:"color"`    // auto | always | never
	TUI      bool   `yaml:"tui"`
	Prompt   string `yaml:"prompt"`

	TUISet bool `yaml:"-"`

	configDir string
	sources   []string // ordered list of sources that contributed to this config
}

// Flags carries CLI flag overrides. Empty strings and TUISet=false mean the
// flag was not given.
type Flags struct {
	Overflow string
	Format   string
	Color    string
	TUI      bool
	TUISet   bool
}

// Sources returns the ordered list of sources that contributed to this config.
func (c *Config) Sources() []string {
	return c.sources
}

// ConfigDir returns the global config directory.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Load loads configuration from the default global directory.
func Load() (*Config, error) {
	return LoadWithDir(dirs.ConfigDir())
}

// LoadWithDir loads embedded defaults, then <dir>/config.yaml if it exists,
// then environment overrides. Nothing is written to disk.
func LoadWithDir(dir string) (*Config, error) {
	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	if dir != "" {
		path := filepath.Join(dir, "config.yaml")
		if fileCfg, err := loadFile(path); err == nil {
			cfg.mergeFrom(fileCfg)
			cfg.sources = append(cfg.sources, path)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.configDir = dir

	return cfg, nil
}

// loadEmbedded loads config from the embedded defaults.
func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

// loadFile loads config from a file path.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if err != nil {
		return nil, err
	}
	return parseConfigWithTracking(data)
}

// parseConfig parses YAML config data into a Config struct.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// parseConfigWithTracking parses YAML config and tracks which fields were set.
func parseConfigWithTracking(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if _, ok := raw["tui"]; ok {
		cfg.TUISet = true
	}

	return cfg, nil
}

// applyEnv applies environment variables to the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("ATTITUDE_OVERFLOW"); v != "" {
		c.Overflow = v
		c.sources = append(c.sources, "env:ATTITUDE_OVERFLOW")
	}

	if v := os.Getenv("ATTITUDE_FORMAT"); v != "" {
		c.Format = v
		c.sources = append(c.sources, "env:ATTITUDE_FORMAT")
	}

	if v := os.Getenv("ATTITUDE_COLOR"); v != "" {
		c.Color = v
		c.sources = append(c.sources, "env:ATTITUDE_COLOR")
	}

	if v := os.Getenv("ATTITUDE_TUI"); v != "" {
		c.TUI = v == "true" || v == "1"
		c.TUISet = true
		c.sources = append(c.sources, "env:ATTITUDE_TUI")
	}
}

// mergeFrom merges non-empty/set values from src into c.
func (c *Config) mergeFrom(src *Config) {
	if src.Overflow != "" {
		c.Overflow = src.Overflow
	}
	if src.Format != "" {
		c.Format = src.Format
	}
	if src.Color != "" {
		c.Color = src.Color
	}
	if src.Prompt != "" {
		c.Prompt = src.Prompt
	}
	if src.TUISet {
		c.TUI = src.TUI
		c.TUISet = true
	}
}

// ApplyCLIFlags applies CLI flag overrides to the config.
// CLI flags have the highest precedence.
func (c *Config) ApplyCLIFlags(f Flags) {
	if f.Overflow != "" {
		c.Overflow = f.Overflow
		c.sources = append(c.sources, "cli:overflow")
	}
	if f.Format != "" {
		c.Format = f.Format
		c.sources = append(c.sources, "cli:format")
	}
	if f.Color != "" {
		c.Color = f.Color
		c.sources = append(c.sources, "cli:color")
	}
	if f.TUISet {
		c.TUI = f.TUI
		c.TUISet = true
		c.sources = append(c.sources, "cli:tui")
	}
}

// Validate checks enum fields. It does not look at TUI, which only matters
// for an interactive session; see ValidateSession.
func (c *Config) Validate() error {
	if _, err := attitude.ParsePolicy(c.Overflow); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (want text or json)", c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}

// ValidateSession checks settings that only apply when starting an
// interactive session.
func (c *Config) ValidateSession() error {
	if c.TUI && c.Format == FormatJSON {
		return errors.New("tui cannot be combined with json format")
	}
	return nil
}

// Policy returns the configured overflow policy. Call Validate first.
func (c *Config) Policy() attitude.OverflowPolicy {
	p, _ := attitude.ParsePolicy(c.Overflow)
	return p
}

// YAML renders the effective configuration.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(data), nil
}
