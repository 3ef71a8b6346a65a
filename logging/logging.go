// Package logging adapts github.com/baditaflorin/l to the types.Logger port.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/l"

	"github.com/botirk38/docsim/types"
)

// Config selects where and how log records are written.
type Config struct {
	// Output overrides File and stderr when set.
	Output io.Writer
	// File appends records to the named file.
	File    string
	JSON    bool
	Verbose bool
	// Async buffers records and writes them from a background goroutine.
	Async bool
}

// Logger adapts an l.Logger to types.Logger. Debug records are dropped
// unless the logger was created verbose.
type Logger struct {
	logger  l.Logger
	verbose bool
	file    *os.File
}

// New creates a logger from cfg.
func New(cfg Config) (*Logger, error) {
	output := cfg.Output
	var file *os.File
	if output == nil {
		output = os.Stderr
		if cfg.File != "" {
			f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("failed to open log file: %w", err)
			}
			output, file = f, f
		}
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  cfg.JSON,
		AsyncWrite:  cfg.Async,
		BufferSize:  1024 * 1024,      // 1MB
		MaxFileSize: 10 * 1024 * 1024, // 10MB
		MaxBackups:  5,
		AddSource:   cfg.Verbose,
		Metrics:     false,
	})
	if err != nil {
		if file != nil {
			_ = file.Close()
		}
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &Logger{logger: logger, verbose: cfg.Verbose, file: file}, nil
}

// FromExisting wraps an already configured l.Logger.
func FromExisting(logger l.Logger, verbose bool) *Logger {
	return &Logger{logger: logger, verbose: verbose}
}

// Debug logs a debug message.
func (lg *Logger) Debug(msg string, keysAndValues ...any) {
	if lg.verbose {
		lg.logger.Debug(msg, keysAndValues...)
	}
}

// Info logs an info message.
func (lg *Logger) Info(msg string, keysAndValues ...any) {
	lg.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (lg *Logger) Warn(msg string, keysAndValues ...any) {
	lg.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (lg *Logger) Error(msg string, keysAndValues ...any) {
	lg.logger.Error(msg, keysAndValues...)
}

// Close flushes pending records and releases the log file, if any.
func (lg *Logger) Close() error {
	err := lg.logger.Close()
	if lg.file != nil {
		if cerr := lg.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

type discard struct{}

func (discard) Debug(string, ...any) {}
func (discard) Info(string, ...any)  {}
func (discard) Warn(string, ...any)  {}
func (discard) Error(string, ...any) {}
func (discard) Close() error         { return nil }

// Discard returns a logger that drops every record.
func Discard() types.Logger { return discard{} }
