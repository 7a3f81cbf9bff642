package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/alnah/go-cleantext/internal/config"
)

// Environment holds injectable dependencies for testability:
// I/O streams, the clipboard backend, configuration, and logging.
type Environment struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Clipboard ClipboardProvider
	Config    *config.Config
	Log       zerolog.Logger
}

// DefaultEnv returns the production environment. The clipboard backend is
// resolved once here, not re-probed on every operation.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Clipboard: ResolveClipboard(),
		Config:    config.DefaultConfig(),
		Log:       zerolog.Nop(),
	}
}
