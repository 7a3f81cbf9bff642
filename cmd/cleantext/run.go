package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	cleantext "github.com/alnah/go-cleantext"
	"github.com/alnah/go-cleantext/internal/config"
	"github.com/alnah/go-cleantext/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrModeConflict = errors.New("--clipboard and --file are mutually exclusive")
	ErrFileNotFound = errors.New("file not found")
	ErrReadFile     = errors.New("failed to read input file")
	ErrWriteFile    = errors.New("failed to write cleaned file")
	ErrReadStdin    = errors.New("failed to read standard input")
)

// run resolves configuration, merges flags over it, and dispatches to the
// selected mode adapter.
func run(flags *cliFlags, fs *flag.FlagSet, env *Environment) error {
	if flags.version {
		fmt.Fprintln(env.Stdout, "cleantext "+Version)
		return nil
	}

	if flags.clipboard && flags.file != "" {
		return ErrModeConflict
	}

	cfg := env.Config
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchedPaths(flags.config)))
			}
			return err
		}
		cfg = loaded
	}
	mergeFlags(flags, fs, cfg)

	printer := &Printer{Out: env.Stdout, Color: cfg.Color, Quiet: flags.quiet}
	opts := cleantext.Options{LanguageMode: cfg.Language}

	env.Log.Debug().
		Bool("language", cfg.Language).
		Bool("summary", cfg.Summary).
		Bool("color", cfg.Color).
		Msg("options resolved")

	switch {
	case flags.clipboard:
		return processClipboard(env, printer, opts, cfg.Summary)
	case flags.file != "":
		return processFile(env, printer, flags.file, cfg.Output.Prefix, opts, cfg.Summary)
	default:
		return processStdin(env, printer, opts, cfg.Summary)
	}
}

// mergeFlags overlays explicitly-set CLI flags onto the config (CLI wins).
// Flags left at their defaults do not clobber config file values.
func mergeFlags(flags *cliFlags, fs *flag.FlagSet, cfg *config.Config) {
	if fs.Changed("language") {
		cfg.Language = flags.language
	}
	if fs.Changed("no-color") {
		cfg.Color = !flags.noColor
	}
	if fs.Changed("summary") {
		cfg.Summary = flags.summary
	}
}
