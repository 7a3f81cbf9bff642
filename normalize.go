package cleantext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Runs of whitespace of any kind (spaces, tabs, newlines)
	whitespaceRun = regexp.MustCompile(`\s+`)

	// UTM tracking fragment: "?utm_" through the next whitespace
	utmFragment = regexp.MustCompile(`\?utm_\S+`)
)

// Fancy quote glyphs and their ASCII replacements.
var (
	fancyDoubleQuotes = []string{"“", "”"}
	fancySingleQuotes = []string{"‘", "’"}
)

// languagePunctuation maps language-specific punctuation to ASCII
// equivalents. Applied only in language mode.
var languagePunctuation = []struct{ from, to string }{
	{"¿", "?"},
	{"¡", "!"},
	{"«", `"`},
	{"»", `"`},
	{"—", "-"},
	{"–", "-"},
	{"…", "..."},
}

// Clean runs the full normalization pipeline over text and reports what
// changed. Order matters: quote counts are captured before replacement, and
// UTM matching runs against the whitespace-collapsed text so a fragment
// interrupted by collapsed whitespace is not recognized.
func Clean(text string, opts Options) (string, Summary) {
	var summary Summary

	text, summary.FancyDoubleBefore, summary.FancySingleBefore = ReplaceFancyQuotes(text)

	if opts.LanguageMode {
		var replaced int
		text, replaced = ApplyLanguagePunctuation(text)
		summary.LangPunctReplaced = &replaced
	}

	text = NormalizeLineEndings(text)
	text = CollapseWhitespace(text)

	text, summary.UTMRemoved = StripTrackingParams(text)

	// Removing a fragment can leave a double space where it sat.
	text = CollapseWhitespace(text)

	summary.FinalLength = utf8.RuneCountInString(text)
	return text, summary
}

// ReplaceFancyQuotes replaces fancy double/single quote glyphs with their
// ASCII equivalents. Returns the new text plus the double and single counts
// found before replacement.
func ReplaceFancyQuotes(content string) (replaced string, doubles, singles int) {
	for _, q := range fancyDoubleQuotes {
		doubles += strings.Count(content, q)
	}
	for _, q := range fancySingleQuotes {
		singles += strings.Count(content, q)
	}

	for _, q := range fancyDoubleQuotes {
		content = strings.ReplaceAll(content, q, `"`)
	}
	for _, q := range fancySingleQuotes {
		content = strings.ReplaceAll(content, q, "'")
	}

	return content, doubles, singles
}

// ApplyLanguagePunctuation substitutes every entry of the language
// punctuation table and returns the total number of characters replaced.
func ApplyLanguagePunctuation(content string) (string, int) {
	replaced := 0
	for _, p := range languagePunctuation {
		n := strings.Count(content, p.from)
		if n == 0 {
			continue
		}
		replaced += n
		content = strings.ReplaceAll(content, p.from, p.to)
	}
	return content, replaced
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims the result. Paragraph breaks do not survive this; the tool
// targets single-paragraph snippets, so that is accepted rather than
// special-cased.
func CollapseWhitespace(content string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(content, " "))
}

// StripTrackingParams removes UTM tracking fragments ("?utm_" up to the next
// whitespace or end of text) and returns how many were removed.
func StripTrackingParams(content string) (string, int) {
	matches := utmFragment.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}
	return utmFragment.ReplaceAllString(content, ""), len(matches)
}
