// SPDX-License-Identifier: MIT

// Package log provides structured logging for reelmate on top of zerolog.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Service string    // optional service name attached to every log entry
	Version string    // optional build version attached to every log entry
}

var (
	mu         sync.Mutex
	base       zerolog.Logger
	configured bool
)

// Configure (re)initialises the global zerolog logger. The daemon calls it
// once with safe defaults before the config is loaded and again with the
// loaded configuration; the later call wins.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	configure(cfg)
}

func configure(cfg Config) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	} else if env := os.Getenv("REELMATE_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	service := cfg.Service
	if service == "" {
		service = "reelmate"
	}

	ctx := zerolog.New(writer).With().
		Timestamp().
		Str("service", service)
	if cfg.Version != "" {
		ctx = ctx.Str("version", cfg.Version)
	}
	base = ctx.Logger()
	configured = true
}

func logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !configured {
		configure(Config{})
	}
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str(FieldComponent, component).Logger()
}
