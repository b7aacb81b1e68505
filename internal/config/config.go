package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/scan-io-git/smelly/pkg/shared/files"
)

// DefaultConfigPath is used when neither --config nor SMELLY_CONFIG is set.
const DefaultConfigPath = "config.yml"

type Config struct {
	Logger Logger `yaml:"logger"`
	Report Report `yaml:"report"`
}

type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

// Report holds defaults for the report command. Flags override them.
type Report struct {
	Format      string `yaml:"format"`
	GroupByFile bool   `yaml:"group_by_file"`
	Color       *bool  `yaml:"color"`
	FailOn      string `yaml:"fail_on"`
	Title       string `yaml:"title"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Logger: Logger{
			Level: "info",
		},
		Report: Report{
			Format: "text",
			Title:  "Smelly report",
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults.
// A missing file at the default location is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv("SMELLY_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = DefaultConfigPath
		}
	}

	expanded, err := files.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path %q: %w", path, err)
	}

	if err := files.ValidatePath(expanded); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config file %q: %w", expanded, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", expanded, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", expanded, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills fields a partial YAML file left empty.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = defaults.Logger.Level
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = defaults.Report.Format
	}
	if cfg.Report.Title == "" {
		cfg.Report.Title = defaults.Report.Title
	}
}

// BoolValue dereferences an optional boolean setting.
func BoolValue(v *bool, defaultValue bool) bool {
	if v == nil {
		return defaultValue
	}
	return *v
}
