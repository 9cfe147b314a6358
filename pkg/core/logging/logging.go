// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     logging
// Description: zerolog setup for TUI-safe and console diagnostics
// Created:     2026-08-30
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ParseLevel maps a configured level name to a zerolog level,
// defaulting to info for unknown names.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewFileLogger returns a logger appending JSON lines to path. The
// dashboard uses this so diagnostics never write to the terminal the
// TUI owns. The caller closes the returned file on shutdown.
func NewFileLogger(level, path string) (zerolog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(f).Level(ParseLevel(level)).With().Timestamp().Logger()
	return logger, f, nil
}

// NewConsoleLogger returns a human-readable logger on stderr for the
// one-shot commands.
func NewConsoleLogger(level string) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}
