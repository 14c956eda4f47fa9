// Package config loads the CLI configuration from a YAML file and the
// environment variables the Alfred workflow communicates through.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const executableName = "blueutil"

// Environment variables the Alfred workflow sets on each invocation.
const (
	// EnvBlueutilDir overrides the directory the blueutil binary is
	// resolved from.
	EnvBlueutilDir = "BLUEUTIL_PATH"

	// EnvPreviousAddress carries the address the user last selected in the
	// workflow; it biases list ordering only.
	EnvPreviousAddress = "AIRPODS_MAC"
)

// Config holds the runtime configuration for the CLI.
type Config struct {
	// BlueutilDir is a directory containing the blueutil binary. Empty
	// means blueutil is resolved from $PATH.
	BlueutilDir string `yaml:"blueutil_dir,omitempty"`

	// DefaultFilter is the name substring `list` filters by when no
	// explicit filter flag is given.
	DefaultFilter string `yaml:"default_filter"`

	// LogLevel is the baseline log level name; verbosity flags lower it.
	LogLevel string `yaml:"log_level"`

	// PreviousAddress biases list ordering. It is only ever supplied via
	// the environment, never persisted.
	PreviousAddress string `yaml:"-"`
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "alfred-bluetooth", "config.yaml"), nil
}

// Load reads the config file at path and applies environment overrides on
// top. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DefaultFilter: "airpod",
		LogLevel:      "warn",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if dir := os.Getenv(EnvBlueutilDir); dir != "" {
		c.BlueutilDir = dir
	}
	if address := os.Getenv(EnvPreviousAddress); address != "" {
		c.PreviousAddress = address
	}
}

// BlueutilPath resolves the blueutil executable: the configured directory
// joined with the binary name, else the bare name for $PATH lookup.
func (c *Config) BlueutilPath() string {
	if c.BlueutilDir == "" {
		return executableName
	}
	return filepath.Join(c.BlueutilDir, executableName)
}
