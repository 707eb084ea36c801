// Package logger configures the structured logger shared by every bizbook
// component.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with component helpers.
type Logger struct {
	zerolog.Logger
	level zerolog.Level
}

// Config controls where and how much is logged.
type Config struct {
	// Level is one of debug, info, warn, error, disabled.
	Level string `toml:"level"`
	// Output is stdout, stderr or a file path.
	Output string `toml:"output"`
	// Color enables the console writer for stdout/stderr.
	Color bool `toml:"color"`
}

// DefaultConfig logs warnings and errors to stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:  "warn",
		Output: "stderr",
		Color:  true,
	}
}

var global *Logger

// Init builds the global logger from config.
func Init(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	global = l
	return nil
}

// New builds a logger from config without touching the global one.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", config.Level, err)
	}

	var output io.Writer
	switch config.Output {
	case "stdout":
		output = os.Stdout
	case "", "stderr":
		output = os.Stderr
	default:
		if err := os.MkdirAll(filepath.Dir(config.Output), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	if (config.Output == "stdout" || config.Output == "stderr" || config.Output == "") && config.Color {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	return &Logger{
		Logger: zerolog.New(output).Level(level).With().Timestamp().Logger(),
		level:  level,
	}, nil
}

// Nop returns a logger that discards everything. Used by tests and by
// callers that do not want logging.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop(), level: zerolog.Disabled}
}

// GetLogger returns the global logger, initialising it with defaults on
// first use.
func GetLogger() *Logger {
	if global == nil {
		if err := Init(DefaultConfig()); err != nil {
			return Nop()
		}
	}
	return global
}

// WithComponent tags every event with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("component", component).Logger(),
		level:  l.level,
	}
}

// WithError attaches err to every event.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With().Err(err).Logger(),
		level:  l.level,
	}
}

// Level returns the configured minimum level.
func (l *Logger) Level() zerolog.Level {
	return l.level
}
