// Package logging configures the zerolog logger shared by all commands.
package logging

import (
	"io"
	stdlog "log"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel string `mapstructure:"log_level"`
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorFieldName = "error"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return path.Base(file) + ":" + strconv.Itoa(line)
	}
}

// NewLogger creates a console logger on stderr. An unknown level falls back
// to info.
func NewLogger(config *Config) *zerolog.Logger {
	return newLogger(config, os.Stderr)
}

func newLogger(config *Config, out io.Writer) *zerolog.Logger {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	w := zerolog.NewConsoleWriter(
		withTimeFormat(time.Kitchen),
		withOut(out),
	)

	logger := zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(level)
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return &logger
}

// SetGlobalLogger routes the stdlib log package and the zerolog global
// logger through logger.
func SetGlobalLogger(logger *zerolog.Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(logger)
	log.Logger = *logger
	zerolog.DefaultContextLogger = logger
}

func withTimeFormat(format string) func(*zerolog.ConsoleWriter) {
	return func(w *zerolog.ConsoleWriter) {
		w.TimeFormat = format
	}
}

func withOut(out io.Writer) func(*zerolog.ConsoleWriter) {
	return func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.NoColor = true
	}
}
