// Package config manages the application configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/cubepuzzle"
)

// Config represents the persistent application settings.
type Config struct {
	RotationSpeed float64 `json:"rotation_speed"`
	FPS           int     `json:"fps"`
	TraceDir      string  `json:"trace_dir,omitempty"`
	LogFile       string  `json:"log_file,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		RotationSpeed: cubepuzzle.DefaultRotationSpeed,
		FPS:           60,
	}
}

// DefaultDir returns the application directory in the user's home directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubepuzzle"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// File manages the config file.
type File struct {
	path   string
	config Config
}

// Open loads the config file at path. A missing file yields the defaults.
func Open(path string) (*File, error) {
	f := &File{path: path, config: Default()}

	if err := f.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return f, nil
}

// OpenDefault loads the config file from the default path.
func OpenDefault() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Load loads the config from disk over the current values.
func (f *File) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &f.config); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", f.path, err)
	}
	return f.config.Validate()
}

// Save saves the config to disk.
func (f *File) Save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(f.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Config returns the current settings.
func (f *File) Config() Config {
	return f.config
}

// Path returns the config file path.
func (f *File) Path() string {
	return f.path
}

// Set replaces the settings after validating them.
func (f *File) Set(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f.config = c
	return nil
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	if c.RotationSpeed <= 0 {
		return fmt.Errorf("rotation_speed must be positive, got %v", c.RotationSpeed)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("fps must be in 1..240, got %d", c.FPS)
	}
	return nil
}

// TraceDirOrDefault returns the trace directory, defaulting to
// ~/.cubepuzzle/traces.
func (c Config) TraceDirOrDefault() (string, error) {
	if c.TraceDir != "" {
		return c.TraceDir, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "traces"), nil
}
