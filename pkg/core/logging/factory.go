// File: factory.go
// Title: Logger Factory
// Description: Builds foundation loggers for the stringy command from its
//              logging settings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-03-02 v0.2.0: Validated level and format, removed remote log shipping

package logging

import (
	"io"
	"os"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
	mdwlog "github.com/msto63/stringy/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, usually the command path
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (json, text, console, logfmt)
	Format string

	// Primary output, stderr when nil
	Output io.Writer

	// Additional outputs written alongside Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns the configuration used when no settings exist
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// NewLogger creates a foundation logger. An unknown level or format fails
// with CONFIG_INVALID.
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeConfigInvalid).
			WithOperation("logging.NewLogger").
			WithDetail("level", cfg.Level)
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeConfigInvalid).
			WithOperation("logging.NewLogger").
			WithDetail("format", cfg.Format)
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}), nil
}

// NewSimpleLogger creates a text logger at info level on stderr
func NewSimpleLogger(name string) *mdwlog.Logger {
	logger, _ := NewLogger(DefaultLoggerConfig(name))
	return logger
}
