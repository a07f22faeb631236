// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.DataFile != DefaultDataFile {
		t.Errorf("DataFile: got %q, want %q", cfg.DataFile, DefaultDataFile)
	}
	if cfg.DefaultPriority != DefaultPriority {
		t.Errorf("DefaultPriority: got %q, want %q", cfg.DefaultPriority, DefaultPriority)
	}
	if cfg.DefaultCategory != DefaultCategory {
		t.Errorf("DefaultCategory: got %q, want %q", cfg.DefaultCategory, DefaultCategory)
	}
	if !cfg.ConfirmClear {
		t.Error("ConfirmClear: got false, want true")
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taskman.toml")
	content := `
data_file = "my_tasks.json"
default_priority = "high"
confirm_clear = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("TASKMAN_CONFIG", path)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataFile != "my_tasks.json" {
		t.Errorf("DataFile: got %q, want my_tasks.json", cfg.DataFile)
	}
	if cfg.DefaultPriority != "high" {
		t.Errorf("DefaultPriority: got %q, want high", cfg.DefaultPriority)
	}
	if cfg.ConfirmClear {
		t.Error("ConfirmClear: got true, want false from config file")
	}
	// Untouched fields keep their defaults.
	if cfg.DefaultCategory != DefaultCategory {
		t.Errorf("DefaultCategory: got %q, want %q", cfg.DefaultCategory, DefaultCategory)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TASKMAN_CONFIG", "")
	t.Setenv("TASKMAN_DATA_FILE", "env_tasks.json")
	t.Setenv("TASKMAN_PRIORITY", "low")
	t.Setenv("TASKMAN_CONFIRM_CLEAR", "no")
	t.Setenv("TASKMAN_LOG_LEVEL", "debug")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataFile != "env_tasks.json" {
		t.Errorf("DataFile: got %q, want env_tasks.json", cfg.DataFile)
	}
	if cfg.DefaultPriority != "low" {
		t.Errorf("DefaultPriority: got %q, want low", cfg.DefaultPriority)
	}
	if cfg.ConfirmClear {
		t.Error("ConfirmClear: got true, want false from env")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TASKMAN_CONFIG", "")
	t.Setenv("TASKMAN_DATA_FILE", "env_tasks.json")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"-file", "flag_tasks.json"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataFile != "flag_tasks.json" {
		t.Errorf("DataFile: got %q, want flag winning over env", cfg.DataFile)
	}
}

func TestBoolFromString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
		{"banana", false},
	}

	for _, tt := range tests {
		if got := boolFromString(tt.in); got != tt.want {
			t.Errorf("boolFromString(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
