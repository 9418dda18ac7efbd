package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// Config holds the settings for a generation run that are not supplied
// as command-line arguments.
type Config struct {
	LogLevel     string `json:"log_level"`
	Backend      string `json:"backend"` // "tree" or "table"
	Seed         uint64 `json:"seed"`    // 0 means a fresh seed per run
	CrossCheck   bool   `json:"cross_check"`
	DumpPath     string `json:"dump_path"` // model listing output, empty disables
	EnableRunLog bool   `json:"enable_run_log"`
	RunLogPath   string `json:"run_log_path"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		Backend:      "tree",
		Seed:         0,
		CrossCheck:   false,
		DumpPath:     "",
		EnableRunLog: false,
		RunLogPath:   "./kgram_runs.db?_journal_mode=WAL&_busy_timeout=5000",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Log a warning instead of failing, as the run can still proceed with defaults.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Backend != "tree" && config.Backend != "table" {
		return nil, fmt.Errorf("unknown backend %q, want \"tree\" or \"table\"", config.Backend)
	}

	return config, nil
}
