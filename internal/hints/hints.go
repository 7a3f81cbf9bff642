// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"runtime"
	"strings"
)

// GOOS is swappable in tests to exercise per-OS clipboard hints.
var GOOS = func() string { return runtime.GOOS }

// ForClipboardUnavailable returns hints for a missing clipboard backend.
// Linux needs an external helper binary; other platforms ship one.
func ForClipboardUnavailable() string {
	switch GOOS() {
	case "linux":
		return format("install xclip, xsel, or wl-clipboard (Wayland)")
	case "windows", "darwin":
		return format("clipboard access failed; use --file or stdin instead")
	default:
		return format("no clipboard backend on this platform; use --file or stdin instead")
	}
}

// ForEmptyClipboard returns a hint for an empty clipboard.
func ForEmptyClipboard() string {
	return format("copy some text first, then rerun with --clipboard")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/cleantext) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/cleantext") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForEmptyStdin returns a hint for empty interactive input.
func ForEmptyStdin() string {
	return format("paste text and finish with an empty line or Ctrl+D")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
