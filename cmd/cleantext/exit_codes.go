package main

import (
	"errors"
	"os"

	"github.com/alnah/go-cleantext/internal/config"
)

// Exit codes for the cleantext CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Cleaned successfully (or nothing to do)
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags or config
	ExitIO        = 3 // File not found, permission denied, stdin failure
	ExitClipboard = 4 // Clipboard backend errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Clipboard errors (exit 4)
	if errors.Is(err, ErrClipboardUnavailable) {
		return ExitClipboard
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrReadFile) ||
		errors.Is(err, ErrWriteFile) ||
		errors.Is(err, ErrReadStdin) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrModeConflict) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrInvalidPrefix) {
		return ExitUsage
	}

	return ExitGeneral
}
