package config

import (
	"fmt"
	"strings"

	"github.com/scan-io-git/smelly/internal/codesmell"
)

// Formats lists the output formats of the report command.
var Formats = []string{"text", "markdown", "json", "sarif"}

var logLevels = []string{"trace", "debug", "info", "warn", "error"}

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := ValidateReportConfig(&cfg.Report); err != nil {
		return fmt.Errorf("YAML global config: report directive is invalid: %w", err)
	}
	return nil
}

// ValidateLoggerConfig checks the logger section.
func ValidateLoggerConfig(l *Logger) error {
	if l == nil {
		return fmt.Errorf("logger configuration is nil")
	}
	if !isInList(strings.ToLower(l.Level), logLevels) {
		return fmt.Errorf("unsupported log level %q, expected one of: %s", l.Level, strings.Join(logLevels, ", "))
	}
	return nil
}

// ValidateReportConfig checks the report section.
func ValidateReportConfig(r *Report) error {
	if r == nil {
		return fmt.Errorf("report configuration is nil")
	}
	if err := ValidateFormat(r.Format); err != nil {
		return err
	}
	return ValidateFailOn(r.FailOn)
}

// ValidateFormat checks that format is a supported output format.
func ValidateFormat(format string) error {
	if !isInList(format, Formats) {
		return fmt.Errorf("unsupported format %q, expected one of: %s", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFailOn accepts an empty value or a priority name.
func ValidateFailOn(failOn string) error {
	if failOn == "" {
		return nil
	}
	if _, err := codesmell.GetPriority(failOn); err != nil {
		return fmt.Errorf("fail_on: %w", err)
	}
	return nil
}

func isInList(value string, list []string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
