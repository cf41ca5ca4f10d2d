package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ruminaider/plugin-selector/internal/clipboard"
	"go.yaml.in/yaml/v3"
)

// DefaultToastSeconds is how long notifications stay on screen by default.
const DefaultToastSeconds = 3

// Config represents ~/.plugin-selector/config.yaml.
type Config struct {
	Catalog      string `yaml:"catalog,omitempty"`
	Clipboard    string `yaml:"clipboard"`
	ToastSeconds int    `yaml:"toast_seconds"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Clipboard:    clipboard.BackendSystem,
		ToastSeconds: DefaultToastSeconds,
	}
}

// Parse parses config.yaml bytes into a Config. Missing fields take their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Normalize lower-cases the clipboard backend name, matching how
// clipboard.Open reads it, and fills in the default when it is blank.
func (c Config) Normalize() Config {
	c.Clipboard = strings.ToLower(strings.TrimSpace(c.Clipboard))
	if c.Clipboard == "" {
		c.Clipboard = clipboard.BackendSystem
	}
	return c
}

// Validate checks field values.
func (c Config) Validate() error {
	if !slices.Contains(clipboard.Backends, c.Clipboard) {
		return fmt.Errorf("invalid clipboard backend %q", c.Clipboard)
	}
	if c.ToastSeconds < 0 {
		return fmt.Errorf("toast_seconds must not be negative, got %d", c.ToastSeconds)
	}
	return nil
}

// ToastDuration returns ToastSeconds as a duration.
func (c Config) ToastDuration() time.Duration {
	return time.Duration(c.ToastSeconds) * time.Second
}

// Load reads the config file at path. A missing file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
