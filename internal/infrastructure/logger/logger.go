// Package logger builds the service's zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName tags every entry unless Config.Service overrides it.
const ServiceName = "flight-route-query"

// Config selects level, format and static fields.
type Config struct {
	// Level is a zerolog level name. Unknown or empty names fall back to info.
	Level string

	// Format is "json" or "console".
	Format string

	// Caller adds the file:line of the log call.
	Caller bool

	Service string
}

// DefaultConfig logs JSON at info level.
func DefaultConfig() Config {
	return Config{
		Level:   zerolog.InfoLevel.String(),
		Format:  "json",
		Service: ServiceName,
	}
}

// Logger is the zerolog.Logger handed to every layer.
type Logger struct {
	zerolog.Logger
}

// New writes to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput writes to out.
func NewWithOutput(cfg Config, out io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    out != os.Stdout,
		}
	}

	service := cfg.Service
	if service == "" {
		service = ServiceName
	}

	zctx := zerolog.New(out).Level(level).With().Timestamp().Str("service", service)
	if cfg.Caller {
		zctx = zctx.Caller()
	}
	return &Logger{Logger: zctx.Logger()}
}

// WithRequestID tags entries with the id set by the request id middleware.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.with("request_id", requestID)
}

// WithComponent tags entries with the layer that emits them.
func (l *Logger) WithComponent(component string) *Logger {
	return l.with("component", component)
}

func (l *Logger) with(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}
