// Package logger holds the diagnostic logger of pngctl. The png library itself
// never logs; everything here is about the command surrounding it.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L *slog.Logger = slog.New(slog.DiscardHandler)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogFile string     // Append JSON records to this file. Default: text records on Output
	Output  io.Writer  // Destination when LogFile is empty. Default: os.Stderr
	Level   slog.Level // Minimum log level
}

// Init configures logging. The returned func closes the log file, if any.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) (func() error, error) {
	noop := func() error { return nil }
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return noop, nil
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return noop, err
		}
		L = slog.New(slog.NewJSONHandler(f, handlerOpts))
		return f.Close, nil
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	L = slog.New(slog.NewTextHandler(out, handlerOpts))
	return noop, nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
