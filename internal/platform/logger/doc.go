// Package logger provides structured logging functionality for the application.
//
// It builds log/slog loggers with configurable levels, writing either JSON
// records or colourised text through github.com/lmittmann/tint.
package logger
