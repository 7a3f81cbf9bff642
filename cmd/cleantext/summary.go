package main

import (
	"fmt"

	cleantext "github.com/alnah/go-cleantext"
)

// renderSummary prints every key present in the summary as a human-readable
// line, plus the original and cleaned lengths. The language punctuation line
// appears only when language mode ran, so "off" and "on but zero matches"
// stay distinguishable.
func renderSummary(p *Printer, summary cleantext.Summary, originalLength int) {
	p.Heading("\n--- Summary ---")
	p.Detail(fmt.Sprintf("Fancy double quotes replaced: %d", summary.FancyDoubleBefore))
	p.Detail(fmt.Sprintf("Fancy single quotes replaced: %d", summary.FancySingleBefore))
	p.Detail(fmt.Sprintf("UTM tracking parts removed: %d", summary.UTMRemoved))
	if summary.LangPunctReplaced != nil {
		p.Detail(fmt.Sprintf("Language punctuation replacements: %d", *summary.LangPunctReplaced))
	}
	p.Heading(fmt.Sprintf("Original length: %d", originalLength))
	p.Heading(fmt.Sprintf("Cleaned length: %d", summary.FinalLength))
}
