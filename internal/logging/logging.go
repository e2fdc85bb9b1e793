// Package logging builds the zerolog logger used by the fluentstr CLI.
package logging

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/Gobd/fluentstr/internal/config"
)

// New returns a logger writing to w at the configured level. Format
// "console" writes human readable lines, anything else JSON.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if cfg.Format == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor})
	} else {
		zl = zerolog.New(w)
	}

	return zl.Level(level).With().Timestamp().Logger()
}
