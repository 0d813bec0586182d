// Package logging provides the structured logger shared by quilter's
// fetcher, download provider and CLI.
//
// Components accept the small Logger interface so tests can run silently
// with Nop, while the CLI wires a zerolog-backed implementation.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger provides structured logging with optional key-value pairs.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs warning-level messages with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})

	// With returns a child logger that attaches the given pairs to every entry.
	With(keysAndValues ...interface{}) Logger
}

// noopLogger is a Logger implementation that does nothing.
type noopLogger struct{}

func (n noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n noopLogger) Error(msg string, keysAndValues ...interface{}) {}

func (n noopLogger) With(keysAndValues ...interface{}) Logger { return n }

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return noopLogger{}
}

// Format selects how entries are rendered.
type Format string

const (
	// FormatConsole renders human-readable, colorized lines.
	FormatConsole Format = "console"
	// FormatJSON renders one JSON object per line.
	FormatJSON Format = "json"
)

// Options configures New.
type Options struct {
	Level  string // debug, info, warn, error
	Format Format
	Output io.Writer
}

// zeroLogger adapts zerolog.Logger to Logger.
type zeroLogger struct {
	zl zerolog.Logger
}

// New creates a zerolog-backed Logger.
func New(opts Options) (Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	out := opts.Output
	switch opts.Format {
	case FormatJSON:
	case FormatConsole, "":
		out = zerolog.ConsoleWriter{Out: opts.Output, TimeFormat: time.Kitchen}
	default:
		return nil, fmt.Errorf("unknown log format: %q", opts.Format)
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &zeroLogger{zl: zl}, nil
}

// ParseLevel converts a level name into a zerolog level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level: %q", name)
	}
}

func (l *zeroLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.emit(l.zl.Debug(), msg, keysAndValues)
}

func (l *zeroLogger) Info(msg string, keysAndValues ...interface{}) {
	l.emit(l.zl.Info(), msg, keysAndValues)
}

func (l *zeroLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.emit(l.zl.Warn(), msg, keysAndValues)
}

func (l *zeroLogger) Error(msg string, keysAndValues ...interface{}) {
	l.emit(l.zl.Error(), msg, keysAndValues)
}

func (l *zeroLogger) With(keysAndValues ...interface{}) Logger {
	return &zeroLogger{zl: l.zl.With().Fields(pairs(keysAndValues)).Logger()}
}

func (l *zeroLogger) emit(ev *zerolog.Event, msg string, keysAndValues []interface{}) {
	ev.Fields(pairs(keysAndValues)).Msg(msg)
}

// pairs turns a flat key-value list into a field map.
// A trailing key without a value is recorded under "!BADKEY".
func pairs(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 >= len(keysAndValues) {
			fields["!BADKEY"] = keysAndValues[i]
			break
		}
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		value := keysAndValues[i+1]
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		fields[key] = value
	}
	return fields
}
