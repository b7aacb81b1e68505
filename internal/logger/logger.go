package logger

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/smelly/internal/config"
)

// NewLogger creates a new hclog.Logger instance based on the YAML configuration and the provided name.
func NewLogger(cfg *config.Config, name string) hclog.Logger {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:            name,
		DisableTime:     config.BoolValue(cfg.Logger.DisableTime, true),
		JSONFormat:      config.BoolValue(cfg.Logger.JSONFormat, false),
		IncludeLocation: config.BoolValue(cfg.Logger.IncludeLocation, false),
		Output:          os.Stderr,
		Level:           determineLogLevel(cfg),
	})
}

// determineLogLevel returns a log level determined first by an environment variable, and if not set, by the provided configuration.
// If neither configuration nor environment variable specifies a log level, it defaults to INFO.
func determineLogLevel(cfg *config.Config) hclog.Level {
	if logLevelEnv := os.Getenv("SMELLY_LOG_LEVEL"); logLevelEnv != "" {
		return parseLogLevel(logLevelEnv)
	}
	return parseLogLevel(cfg.Logger.Level)
}

// parseLogLevel converts a string level to hclog.Level.
func parseLogLevel(levelStr string) hclog.Level {
	if levelStr == "" {
		return hclog.Info
	}
	level := hclog.LevelFromString(strings.ToLower(levelStr))
	if level == hclog.NoLevel {
		hclog.New(&hclog.LoggerOptions{
			Level:       hclog.Warn,
			DisableTime: true,
			Output:      os.Stderr,
		}).Warn("Unrecognized log level, defaulting to INFO", "providedLevel", levelStr)
		return hclog.Info
	}
	return level
}
