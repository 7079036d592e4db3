// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all contacts configuration.
type Config struct {
	Store Store `yaml:"store"`
	Log   Log   `yaml:"log"`
	UI    UI    `yaml:"ui"`
}

// Store holds backing file settings.
type Store struct {
	Path        string `yaml:"path"`
	AtomicWrite bool   `yaml:"atomic_write"` // Write to temp file then rename
}

// Log holds file logging settings.
type Log struct {
	File  string `yaml:"file"`  // Empty disables logging
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// UI holds interactive form settings.
type UI struct {
	AltScreen bool `yaml:"alt_screen"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Store: Store{
			Path:        "contacts.txt",
			AtomicWrite: true,
		},
		Log: Log{
			Level: "info",
		},
		UI: UI{
			AltScreen: true,
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return errors.New("config: store.path cannot be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTS_FILE, CONTACTS_ATOMIC_WRITE,
// CONTACTS_LOG_FILE, CONTACTS_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CONTACTS_FILE"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("CONTACTS_ATOMIC_WRITE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid CONTACTS_ATOMIC_WRITE %q: %w", v, err)
		}
		c.Store.AtomicWrite = b
	}
	if v := os.Getenv("CONTACTS_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("CONTACTS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Store *rawStore `yaml:"store"`
	Log   *rawLog   `yaml:"log"`
	UI    *rawUI    `yaml:"ui"`
}

type rawStore struct {
	Path        *string `yaml:"path"`
	AtomicWrite *bool   `yaml:"atomic_write"`
}

type rawLog struct {
	File  *string `yaml:"file"`
	Level *string `yaml:"level"`
}

type rawUI struct {
	AltScreen *bool `yaml:"alt_screen"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Store != nil {
		if layer.Store.Path != nil {
			c.Store.Path = *layer.Store.Path
		}
		if layer.Store.AtomicWrite != nil {
			c.Store.AtomicWrite = *layer.Store.AtomicWrite
		}
	}
	if layer.Log != nil {
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
	if layer.UI != nil {
		if layer.UI.AltScreen != nil {
			c.UI.AltScreen = *layer.UI.AltScreen
		}
	}
}
