// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type options struct {
	level   slog.Level
	format  string
	out     io.Writer
	logFile string
}

// Option configures New.
type Option func(*options)

// WithLevel sets the minimum level from its name (debug, info, warn, error).
// Unknown names leave the level at info.
func WithLevel(name string) Option {
	return func(o *options) {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err == nil {
			o.level = lvl
		}
	}
}

// WithFormat selects "json" or "text" (tinted console) output.
func WithFormat(format string) Option {
	return func(o *options) { o.format = strings.ToLower(format) }
}

// WithOutput replaces stdout as the primary destination.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLogFile tees every record into a size-rotated file.
func WithLogFile(path string) Option {
	return func(o *options) { o.logFile = path }
}

// New returns a logger writing to stdout (or the WithOutput writer), plus the
// rotating file when WithLogFile is set.
func New(opts ...Option) *slog.Logger {
	o := options{level: slog.LevelInfo, format: FormatJSON, out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	w := o.out
	if o.logFile != "" {
		w = io.MultiWriter(o.out, &lumberjack.Logger{
			Filename:   o.logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	var handler slog.Handler
	switch o.format {
	case FormatText:
		handler = tint.NewHandler(w, &tint.Options{
			Level:      o.level,
			TimeFormat: time.DateTime,
			NoColor:    o.logFile != "",
		})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: o.level})
	}

	return slog.New(handler)
}
