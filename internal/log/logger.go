// Package log configures the zerolog logger shared by the gitcz commands.
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
	Level  string    // optional log level ("debug", "info", etc.)
	Output io.Writer // optional writer (defaults to os.Stderr)
}

var (
	mu         sync.Mutex
	configured bool
	base       zerolog.Logger
)

// Configure sets up the base logger. Later calls replace the earlier setup,
// so the root command can raise verbosity after flags are parsed.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	level := zerolog.WarnLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	} else if env := os.Getenv("GITCZ_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	base = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	configured = true
}

func logger() zerolog.Logger {
	mu.Lock()
	if configured {
		defer mu.Unlock()
		return base
	}
	mu.Unlock()

	Configure(Config{})
	return logger()
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}
