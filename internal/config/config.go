/*
PURPOSE:
  Defines the configuration structure and loading logic for perf-metrics.

REQUIREMENTS:
  User-specified:
  - CSV output path defaults to metrics.csv.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Optional JSON Lines output, log format and log level live here too.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Returns error if an explicitly requested config file is missing.
  - Missing default files fall back to defaults silently.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - CLI flags override file values, file values override defaults.

USAGE:
  cfg, err := config.Load("perf_metrics.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go
*/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for perf-metrics.
type Config struct {
	// InputPath is the dump file to parse. Always set from the command line.
	InputPath string `yaml:"-"`
	CSVPath   string `yaml:"csv_path"`
	// JSONPath enables the JSON Lines sink when non-empty.
	JSONPath  string `yaml:"json_path"`
	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

// DefaultFiles are searched, in order, when no config path is given.
var DefaultFiles = []string{"perf_metrics.yaml", "perf_metrics.yml"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		CSVPath:   "metrics.csv",
		LogFormat: "console",
		LogLevel:  "info",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("failed to read config file %s: %w", name, err)
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
