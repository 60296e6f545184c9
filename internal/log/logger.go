// Package log configures the zerolog logger shared by the CLI and the HTTP
// service. Library packages never log.
package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for the process logger.
type Config struct {
	Level   string    // "debug", "info", ...; defaults to info
	Format  string    // "json" (default) or "console"
	Output  io.Writer // defaults to os.Stderr
	Service string    // attached to every entry; defaults to "govsn"
}

var (
	mu   sync.RWMutex
	base = New(Config{})
)

// New builds a logger from cfg without touching the process logger.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
			level = parsed
		}
	}
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	service := cfg.Service
	if service == "" {
		service = "govsn"
	}
	return zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", service).
		Logger()
}

// Configure replaces the process logger.
func Configure(cfg Config) {
	l := New(cfg)
	mu.Lock()
	base = l
	mu.Unlock()
}

// Base returns the process logger.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
