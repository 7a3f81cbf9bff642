// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a
// name. A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./cleantext.yaml" -> true (relative path)
//   - "/etc/cleantext.yaml" -> true (absolute)
//   - "C:\config\cleantext.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SiblingPath returns the path of a file placed next to original, with
// prefix prepended to the base name.
//
// Example: SiblingPath("/notes/draft.txt", "cleaned_") -> "/notes/cleaned_draft.txt"
func SiblingPath(original, prefix string) string {
	return filepath.Join(filepath.Dir(original), prefix+filepath.Base(original))
}
