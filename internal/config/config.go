package config

// Configuration loading and validation for robotbench

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"robotbench/internal/errors"
)

// DefaultConfigFile is the config filename looked up in the workspace root.
const DefaultConfigFile = "robotbench.yaml"

// Config is the workbench configuration.
type Config struct {
	Workspace       string   `yaml:"workspace"`                  // workspace root directory
	DefaultProfile  string   `yaml:"default_profile,omitempty"`  // profile preselected at startup
	SuiteExtensions []string `yaml:"suite_extensions,omitempty"` // file extensions treated as test suites
	LogLevel        string   `yaml:"log_level,omitempty"`        // silent, error, info, verbose, debug
	LogFormat       string   `yaml:"log_format,omitempty"`       // text or json
	LogFile         string   `yaml:"log_file,omitempty"`
}

// CreateDefaultConfig returns the configuration used when no config file
// exists.
func CreateDefaultConfig() *Config {
	return &Config{
		Workspace:       ".",
		SuiteExtensions: []string{".robot", ".txt"},
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// WriteDefaultConfig writes a default config file to path.
func WriteDefaultConfig(path string) error {
	data, err := yaml.Marshal(CreateDefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// LoadConfig loads the configuration from a YAML file. A missing file yields
// the defaults rather than an error.
func LoadConfig(path string) (*Config, error) {
	cfg := CreateDefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.WrapConfigError(fmt.Errorf("read config file: %w", err), path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("parse YAML: %w", err), path)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, errors.WrapConfigError(err, path)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Workspace == "" {
		cfg.Workspace = "."
	}
	if len(cfg.SuiteExtensions) == 0 {
		cfg.SuiteExtensions = []string{".robot", ".txt"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
}

// Validate checks the configuration for values the workbench cannot use.
func Validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "silent", "error", "info", "verbose", "debug":
	default:
		return fmt.Errorf("invalid log_level %q (use silent, error, info, verbose, or debug)", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q (use text or json)", cfg.LogFormat)
	}

	for i, ext := range cfg.SuiteExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("suite_extensions[%d]: %q must start with a dot", i, ext)
		}
	}

	return nil
}
