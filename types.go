package cleantext

// Options configures a cleaning pass.
type Options struct {
	// LanguageMode applies the language punctuation substitution table
	// (¿ ¡ « » — – and the ellipsis character) on top of the always-on
	// transformations.
	LanguageMode bool
}

// Summary reports how much each transformation changed the input.
// Quote counts are captured before their replacement step runs, so they
// reflect the original text.
type Summary struct {
	// FancyDoubleBefore is the number of fancy double-quote glyphs
	// (U+201C, U+201D) found before replacement.
	FancyDoubleBefore int

	// FancySingleBefore is the number of fancy single-quote glyphs
	// (U+2018, U+2019) found before replacement.
	FancySingleBefore int

	// LangPunctReplaced is the number of characters replaced via the
	// language punctuation table. Nil when language mode is off; a
	// non-nil zero means language mode was on but nothing matched.
	LangPunctReplaced *int

	// UTMRemoved is the number of UTM tracking fragments removed.
	UTMRemoved int

	// FinalLength is the rune length of the cleaned text.
	FinalLength int
}
