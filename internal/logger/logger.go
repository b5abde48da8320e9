// Package logger is the structured logger shared by glint's packages and
// commands. A nil *Logger is valid everywhere and drops every entry, so
// library code can accept one without checking it.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	// Level is one of debug, info, warn (or warning) and error. Empty means
	// info.
	Level string
	// HumanReadable selects zerolog's console writer over JSON lines.
	HumanReadable bool
	// Writer defaults to stderr so rendered output on stdout stays clean.
	Writer io.Writer
}

// Logger wraps zerolog with the handful of calls glint makes.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = out
		console.TimeFormat = time.Kitchen
		out = console
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// Discard returns a logger that writes nowhere, for programs that own the
// terminal.
func Discard() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func (l *Logger) with(fn func(zerolog.Context) zerolog.Context) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: fn(l.base.With()).Logger()}
}

// WithFields returns a logger that adds fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context { return c.Fields(fields) })
}

// Component returns a logger that tags entries with the emitting package.
func (l *Logger) Component(name string) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context { return c.Str("component", name) })
}

// event returns nil for a nil logger; zerolog events ignore calls on nil.
func (l *Logger) event(level zerolog.Level) *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.base.WithLevel(level)
}

func (l *Logger) Debug(msg string) { l.event(zerolog.DebugLevel).Msg(msg) }

// DebugFields writes a debug entry carrying one-off fields.
func (l *Logger) DebugFields(msg string, fields map[string]any) {
	l.event(zerolog.DebugLevel).Fields(fields).Msg(msg)
}

func (l *Logger) Info(msg string) { l.event(zerolog.InfoLevel).Msg(msg) }

func (l *Logger) Warn(msg string) { l.event(zerolog.WarnLevel).Msg(msg) }

// Error writes err under the "error" key. A nil err is written as a plain
// error entry.
func (l *Logger) Error(err error, msg string) {
	l.event(zerolog.ErrorLevel).Err(err).Msg(msg)
}
