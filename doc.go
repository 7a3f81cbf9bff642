// Package cleantext normalizes free-form text snippets: fancy quotes become
// ASCII quotes, whitespace runs collapse to single spaces, UTM tracking
// fragments are stripped from URLs, and an optional table substitutes
// language-specific punctuation.
//
// # Quick Start
//
// Clean a string and inspect what changed:
//
//	cleaned, summary := cleantext.Clean("Hello “World”", cleantext.Options{})
//	fmt.Println(cleaned)                   // Hello "World"
//	fmt.Println(summary.FancyDoubleBefore) // 2
//
// Enable language mode to also replace ¿ ¡ « » — – and the ellipsis character:
//
//	cleaned, summary := cleantext.Clean("¿Qué? ¡Vamos!", cleantext.Options{LanguageMode: true})
//	fmt.Println(cleaned)                    // ?Qué? !Vamos!
//	fmt.Println(*summary.LangPunctReplaced) // 2
//
// # Pipeline
//
// Clean applies these transformations in order:
//
//  1. Fancy double/single quotes counted, then replaced with ASCII " and '
//  2. Language punctuation substitution (language mode only)
//  3. CRLF and CR line endings normalized to LF
//  4. Whitespace runs collapsed to single spaces, text trimmed
//  5. UTM tracking fragments (?utm_... up to whitespace) counted and removed
//  6. Whitespace collapsed again to close gaps left by removals
//
// Step 4 intentionally flattens paragraph breaks: the package targets
// single-paragraph snippets such as clipboard contents.
//
// Clean is a pure function. It never fails, holds no state, and is safe to
// call concurrently.
package cleantext
