package cleantext_test

import (
	"fmt"

	cleantext "github.com/alnah/go-cleantext"
)

func ExampleClean() {
	cleaned, summary := cleantext.Clean("Hello “World”", cleantext.Options{})
	fmt.Println(cleaned)
	fmt.Println(summary.FancyDoubleBefore)
	// Output:
	// Hello "World"
	// 2
}

func ExampleClean_languageMode() {
	cleaned, summary := cleantext.Clean("¿Qué? ¡Vamos!", cleantext.Options{LanguageMode: true})
	fmt.Println(cleaned)
	fmt.Println(*summary.LangPunctReplaced)
	// Output:
	// ?Qué? !Vamos!
	// 2
}

func ExampleClean_trackingParams() {
	cleaned, summary := cleantext.Clean(
		"Check this: https://example.com/page?utm_source=x&utm_medium=y more text",
		cleantext.Options{},
	)
	fmt.Println(cleaned)
	fmt.Println(summary.UTMRemoved)
	// Output:
	// Check this: https://example.com/page more text
	// 1
}
