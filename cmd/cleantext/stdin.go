package main

import (
	"bufio"
	"fmt"
	"strings"
	"unicode/utf8"

	cleantext "github.com/alnah/go-cleantext"
)

// maxLineSize bounds a single pasted line (1MB).
const maxLineSize = 1 << 20

// processStdin reads lines until an empty line or EOF, cleans the joined
// text, and prints the result. Empty input is a notice, not an error.
func processStdin(env *Environment, p *Printer, opts cleantext.Options, showSummary bool) error {
	p.Heading("Paste your text. Press Enter on an empty line (or Ctrl+D) to end:")

	scanner := bufio.NewScanner(env.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrReadStdin, err)
	}

	raw := strings.Join(lines, "\n")
	if raw == "" {
		p.Notice("No input received.")
		return nil
	}

	cleaned, summary := cleantext.Clean(raw, opts)

	env.Log.Debug().Int("lines", len(lines)).Int("out_runes", summary.FinalLength).Msg("stdin cleaned")
	p.Heading("\n--- Cleaned Output ---\n")
	p.Plain(cleaned)
	if showSummary {
		renderSummary(p, summary, utf8.RuneCountInString(raw))
	}
	return nil
}
