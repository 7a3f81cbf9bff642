package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cleantext [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Clean clipboard, file, or pasted text: normalize quotes and whitespace,")
	fmt.Fprintln(w, "strip UTM tracking fragments, and optionally substitute language punctuation.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes (mutually exclusive, default: read from stdin):")
	fmt.Fprintln(w, "  -c, --clipboard           Read from clipboard and copy cleaned text back")
	fmt.Fprintln(w, "  -f, --file <path>         Clean a text file (output: cleaned_<filename>)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cleaning:")
	fmt.Fprintln(w, "  -l, --language            Apply language punctuation replacements (¿ ¡ « » — – …)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -s, --summary             Show a summary of what was changed")
	fmt.Fprintln(w, "      --no-color            Disable color output")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logging")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --version             Print version information")
}
