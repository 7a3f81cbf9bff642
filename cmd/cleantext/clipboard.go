package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/atotto/clipboard"

	cleantext "github.com/alnah/go-cleantext"
	"github.com/alnah/go-cleantext/internal/hints"
)

// ErrClipboardUnavailable reports a missing clipboard backend.
var ErrClipboardUnavailable = errors.New("clipboard backend unavailable")

// ClipboardProvider abstracts clipboard access so tests can substitute a
// fake and platforms without a backend degrade to a clear error instead of
// scattered availability checks.
type ClipboardProvider interface {
	Available() bool
	Read() (string, error)
	Write(text string) error
}

// systemClipboard backs ClipboardProvider with the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) Available() bool { return !clipboard.Unsupported }

func (systemClipboard) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}

func (systemClipboard) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// unavailableClipboard is substituted when no backend exists. Every
// operation fails with ErrClipboardUnavailable plus a per-OS hint.
type unavailableClipboard struct{}

func (unavailableClipboard) Available() bool { return false }

func (unavailableClipboard) Read() (string, error) {
	return "", fmt.Errorf("%w%s", ErrClipboardUnavailable, hints.ForClipboardUnavailable())
}

func (unavailableClipboard) Write(string) error {
	return fmt.Errorf("%w%s", ErrClipboardUnavailable, hints.ForClipboardUnavailable())
}

// ResolveClipboard picks the clipboard backend once at startup.
func ResolveClipboard() ClipboardProvider {
	sys := systemClipboard{}
	if sys.Available() {
		return sys
	}
	return unavailableClipboard{}
}

// processClipboard reads the clipboard, cleans it, and writes the result
// back. An empty clipboard is a notice, not an error.
func processClipboard(env *Environment, p *Printer, opts cleantext.Options, showSummary bool) error {
	raw, err := env.Clipboard.Read()
	if err != nil {
		return err
	}
	if raw == "" {
		p.Notice("Clipboard is empty.")
		return nil
	}

	cleaned, summary := cleantext.Clean(raw, opts)
	if err := env.Clipboard.Write(cleaned); err != nil {
		return err
	}

	env.Log.Debug().Int("in_runes", utf8.RuneCountInString(raw)).Int("out_runes", summary.FinalLength).Msg("clipboard cleaned")
	p.Success("Clipboard cleaned and copied back to clipboard.")
	if showSummary {
		renderSummary(p, summary, utf8.RuneCountInString(raw))
	}
	return nil
}
