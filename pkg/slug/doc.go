// Package slug turns arbitrary text into URL-safe identifiers using the
// sanitizer pipeline.
//
// Make keeps the characters sanitizer.KeepAllowed accepts, transliterates
// accented letters, lowercases, and joins the remaining words with a
// separator. Any mix of spaces, hyphens and underscores counts as a single
// word break here, unlike sanitizer.Sanitize which only collapses runs of the
// same separator.
//
//	import "github.com/dmitrymomot/textutils/pkg/slug"
//
//	slug.Make("Crème Brûlée, à la carte!") // "creme-brulee-a-la-carte"
//	slug.Make("Hello World", slug.Separator("_"))  // "hello_world"
//	slug.Make("Hello World", slug.WithSuffix(6))   // "hello-world-x7g3k2"
//	slug.Make("Hello World", slug.MaxLength(8))    // "hello-wo"
//
// Letters outside the supported Latin-1 subset (for example "ß" or "ł") are
// dropped, not transliterated.
package slug
