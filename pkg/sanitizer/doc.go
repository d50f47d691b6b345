// Package sanitizer normalizes free-form text into a restricted, predictable
// form and validates email-like strings.
//
// The central function is Sanitize. It runs a fixed pipeline:
//
//  1. KeepAllowed deletes everything except ASCII letters and digits, space,
//     hyphen, underscore and a fixed set of accented Latin-1 letters
//     (ÀÁÂÃÄÅ, ÈÉÊË, ÌÍÎÏ, ÒÓÔÕÖØ, ÙÚÛÜ in both cases, plus Çç, Ññ, ÿŸ).
//  2. CollapseSeparators turns runs of the same separator into one. Only
//     same-character runs collapse: "a  b" becomes "a b" while "a -_b" stays.
//  3. Transliterate (with RemapUnicode(true)) replaces accented letters with
//     their ASCII base letter.
//  4. ReplaceSpaces (with AllowSpaces(false)) substitutes SpaceReplacement for
//     every whitespace run.
//
// Collapsing runs before the replacement step means a replacement such as "_"
// is never itself collapsed.
//
// # Usage
//
//	import "github.com/dmitrymomot/textutils/pkg/sanitizer"
//
//	s := sanitizer.Sanitize("Crème  brûlée!", sanitizer.RemapUnicode(true))
//	// s == "Creme brulee"
//
//	id := sanitizer.Sanitize("Crème  brûlée!",
//	    sanitizer.AllowSpaces(false),
//	    sanitizer.SpaceReplacement("_"),
//	)
//	// id == "Crème_brûlée"
//
//	email, err := sanitizer.SanitizeEmail(" John.DOE @Example.com ")
//	// email == "john.doe@example.com", err == nil
//
// StripHTML removes markup using a strict bluemonday policy and returns plain
// text with whitespace collapsed.
//
// # Error handling
//
// Sanitize and StripHTML never fail. SanitizeEmail returns ErrInvalidFormat
// when the normalized value lacks an "@" or a "."; this is a syntactic
// heuristic only, so "a@b." passes.
//
// # Concurrency
//
// The allowed-character set and transliteration table are built once during
// package initialization and never modified, so every function is safe for
// concurrent use.
package sanitizer
