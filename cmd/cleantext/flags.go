package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the cleantext CLI.
type cliFlags struct {
	clipboard bool
	file      string
	language  bool
	noColor   bool
	summary   bool
	config    string
	quiet     bool
	verbose   bool
	version   bool
}

// parseFlags parses CLI flags. The returned FlagSet is kept so callers can
// distinguish explicitly-set flags from defaults when merging with config.
func parseFlags(args []string) (*cliFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("cleantext", flag.ContinueOnError)
	f := &cliFlags{}

	// Modes (mutually exclusive; default is stdin)
	fs.BoolVarP(&f.clipboard, "clipboard", "c", false, "read from clipboard and copy cleaned text back")
	fs.StringVarP(&f.file, "file", "f", "", "path to a text file to clean (output: cleaned_<filename>)")

	// Cleaning
	fs.BoolVarP(&f.language, "language", "l", false, "apply language punctuation replacements (¿ ¡ « » etc.)")

	// Output control
	fs.BoolVar(&f.noColor, "no-color", false, "disable color output")
	fs.BoolVarP(&f.summary, "summary", "s", false, "show a summary of what was changed")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logging")

	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs, nil
}
