package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	cleantext "github.com/alnah/go-cleantext"
	"github.com/alnah/go-cleantext/internal/fileutil"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// processFile reads a UTF-8 text file, cleans it, and writes the result to
// a sibling file named by prefixing the original filename.
func processFile(env *Environment, p *Printer, path, prefix string, opts cleantext.Options, showSummary bool) error {
	if !fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided by design
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadFile, err)
	}
	raw := string(data)

	cleaned, summary := cleantext.Clean(raw, opts)

	outPath := fileutil.SiblingPath(path, prefix)
	if err := os.WriteFile(outPath, []byte(cleaned), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	env.Log.Debug().Str("in", path).Str("out", outPath).Int("out_runes", summary.FinalLength).Msg("file cleaned")
	p.Success("Cleaned file written: " + outPath)
	if showSummary {
		renderSummary(p, summary, utf8.RuneCountInString(raw))
	}
	return nil
}
