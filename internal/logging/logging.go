// Package logging provides structured logging for rowpack using zerolog.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger zerolog.Logger
)

func init() {
	// Library default: JSON to stderr at info level, so driver debug events stay quiet.
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// Init configures the package logger.
// If debug is true, sets log level to Debug.
// If human is true, uses a human-friendly console writer.
func Init(debug bool, human bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var output io.Writer = os.Stderr
	if human {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	SetLogger(zerolog.New(output).With().Timestamp().Logger().Level(level))
}

// L returns the package logger.
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// WithPhase returns a logger with the phase field set.
func WithPhase(phase string) zerolog.Logger {
	return L().With().Str("phase", phase).Logger()
}

// SetLogger overrides the package logger (useful for testing).
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()

	logger = l
}
