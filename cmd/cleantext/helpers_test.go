package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-cleantext/internal/config"
)

// fakeClipboard records writes and serves canned reads.
type fakeClipboard struct {
	content  string
	readErr  error
	writeErr error
	written  []string
}

func (f *fakeClipboard) Available() bool { return true }

func (f *fakeClipboard) Read() (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.content, nil
}

func (f *fakeClipboard) Write(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, text)
	return nil
}

// newTestEnv builds an Environment wired to buffers and a fake clipboard.
func newTestEnv(stdin string) (*Environment, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Environment{
		Stdin:     strings.NewReader(stdin),
		Stdout:    out,
		Stderr:    io.Discard,
		Clipboard: &fakeClipboard{},
		Config:    config.DefaultConfig(),
		Log:       zerolog.Nop(),
	}, out
}

// plainPrinter returns a Printer with color off so output is predictable.
func plainPrinter(out io.Writer) *Printer {
	return &Printer{Out: out, Color: false}
}

func mustParse(t *testing.T, args ...string) (*cliFlags, *flag.FlagSet) {
	t.Helper()
	flags, fs, err := parseFlags(append([]string{"cleantext"}, args...))
	if err != nil {
		t.Fatalf("parseFlags(%v) error = %v", args, err)
	}
	return flags, fs
}
