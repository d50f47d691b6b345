// Package random generates opaque tokens and random strings.
//
// Token returns a UUIDv4 whose hyphens are replaced by underscores, handy for
// identifiers that must survive Sanitize unchanged.
//
// String builds a string of the requested size from one or more character
// classes. Classes are bit flags and can also be parsed from the
// comma-separated form "uppercase,lowercase,digits":
//
//	import "github.com/dmitrymomot/textutils/pkg/random"
//
//	tok := random.Token() // "9b2f6c3e_0d4a_4c1e_9f7a_2b8c1d3e4f5a"
//
//	code, err := random.String(6, random.Uppercase, random.Digits)
//
//	classes, err := random.ParseClasses("lowercase,digits")
//	s, err := random.String(32, classes)
//
// Randomness comes from crypto/rand, so every function is safe for concurrent
// use.
package random
