package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger: console format on stderr, level derived
// from the verbosity flags. Verbose wins over quiet when both are set.
func newLogger(w io.Writer, verbose, quiet, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbose:
		level = zerolog.DebugLevel
	case quiet:
		level = zerolog.ErrorLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: noColor}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
