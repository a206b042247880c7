// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger wraps zerolog with the process-wide root logger and
// request-scoped child loggers.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/student-guidance/pkg/types"
)

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

// Options configures the root logger.
type Options struct {
	Level  string
	Format string
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// FromConfig maps the log section of the config onto Options.
func FromConfig(cfg types.LogConfig) Options {
	return Options{Level: cfg.Level, Format: cfg.Format}
}

var root atomic.Pointer[zerolog.Logger]

// Init builds the root logger. Calling it again replaces the root, so the
// CLI can reconfigure once the config file has been read.
func Init(opt Options) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if strings.ToLower(opt.Format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.Writer != nil}
	}

	log := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp().Logger()
	root.Store(&log)
}

// Get returns the root logger, initializing it with defaults on first use.
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(Options{Level: "info"})
	return root.Load()
}

// Named returns a child logger with a component field.
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

type ctxKey struct{}

// WithRequestID annotates ctx with a request id picked up by C.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, reqID)
}

// C returns a child logger enriched with the request id stored in ctx.
func C(ctx context.Context) *Logger {
	l := Get()
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		ll := l.With().Str("request_id", id).Logger()
		return &ll
	}
	return l
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
