// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDataFile = "todo_data.json"
	DefaultPriority = "medium"
	DefaultCategory = "general"
	DefaultLogLevel = "warn"
)

// Config holds the full configuration for taskman.
type Config struct {
	// Paths
	DataFile string `toml:"data_file"`

	// Task defaults applied when the user leaves a prompt blank
	DefaultPriority string `toml:"default_priority"`
	DefaultCategory string `toml:"default_category"`

	// Interactive behavior
	ConfirmClear bool `toml:"confirm_clear"`
	Color        bool `toml:"color"`

	// Logging
	LogLevel string `toml:"log_level"`
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Config file (TOML)
// 3. Environment variables
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from config file
	configFile := findConfigFile()
	if configFile != "" {
		if err := loadConfigFile(cfg, configFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}

	// 3. Override from environment
	loadFromEnv(cfg)

	// 4. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DataFile = DefaultDataFile
	cfg.DefaultPriority = DefaultPriority
	cfg.DefaultCategory = DefaultCategory
	cfg.ConfirmClear = true
	cfg.Color = true
	cfg.LogLevel = DefaultLogLevel
}

// findConfigFile looks for a config file in the current directory,
// honoring TASKMAN_CONFIG when set.
func findConfigFile() string {
	if v := os.Getenv("TASKMAN_CONFIG"); v != "" {
		return v
	}
	names := []string{"taskman.toml", ".taskman.toml"}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKMAN_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TASKMAN_PRIORITY"); v != "" {
		cfg.DefaultPriority = v
	}
	if v := os.Getenv("TASKMAN_CATEGORY"); v != "" {
		cfg.DefaultCategory = v
	}
	if v := os.Getenv("TASKMAN_CONFIRM_CLEAR"); v != "" {
		cfg.ConfirmClear = boolFromString(v)
	}
	if v := os.Getenv("TASKMAN_COLOR"); v != "" {
		cfg.Color = boolFromString(v)
	}
	if v := os.Getenv("TASKMAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// parseFlags registers CLI flags on fs and parses args into cfg.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.DataFile, "file", cfg.DataFile, "Path to the task data file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "Colorize task listings")
	return fs.Parse(args)
}

// boolFromString parses common true/false spellings, defaulting false.
func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
