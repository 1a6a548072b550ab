// Package log provides structured logging for the stringy command line tool.
//
// Package: log
// Title: Structured Logging
// Description: This package implements a leveled logger with persistent
//              context fields, pluggable formatters (JSON, text, console,
//              logfmt) and integration with the structured error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Synchronous writer only, dropped request tracing fields
//
// Usage:
//
//	import mdwlog "github.com/msto63/stringy/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithField("command", "pad")
//
//	logger.Debug("padding input", mdwlog.Field("length", 12))
//	logger.LogError(err)
package log
