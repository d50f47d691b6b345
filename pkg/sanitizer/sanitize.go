package sanitizer

import "strings"

// Option configures Sanitize.
type Option func(*options)

type options struct {
	spaceReplacement string
	allowSpaces      bool
	remapUnicode     bool
}

// defaultOptions keeps spaces, uses "-" as replacement and leaves accents alone.
func defaultOptions() *options {
	return &options{
		allowSpaces:      true,
		spaceReplacement: "-",
		remapUnicode:     false,
	}
}

// AllowSpaces controls whether spaces are kept.
// When disabled, every whitespace run is replaced by the SpaceReplacement value.
func AllowSpaces(enabled bool) Option {
	return func(o *options) {
		o.allowSpaces = enabled
	}
}

// SpaceReplacement sets the string substituted for whitespace runs when
// spaces are not allowed. An empty string deletes spaces. Default is "-".
func SpaceReplacement(s string) Option {
	return func(o *options) {
		o.spaceReplacement = s
	}
}

// RemapUnicode enables transliteration of accented letters to ASCII.
func RemapUnicode(enabled bool) Option {
	return func(o *options) {
		o.remapUnicode = enabled
	}
}

// Sanitize removes every character outside the allowed set, collapses runs of
// the same separator and then optionally transliterates accented letters and
// substitutes spaces. The steps always run in that order.
//
//	sanitizer.Sanitize("Hello,  wörld!!")                          // "Hello wörld"
//	sanitizer.Sanitize("Hello,  wörld!!", sanitizer.RemapUnicode(true)) // "Hello world"
func Sanitize(s string, opts ...Option) string {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	transforms := []func(string) string{KeepAllowed, CollapseSeparators}
	if cfg.remapUnicode {
		transforms = append(transforms, Transliterate)
	}
	if !cfg.allowSpaces {
		transforms = append(transforms, ReplaceSpaces(cfg.spaceReplacement))
	}

	return Apply(s, transforms...)
}

// KeepAllowed deletes every rune that is not an ASCII letter or digit, a
// separator, or one of the supported accented Latin letters.
func KeepAllowed(s string) string {
	return strings.Map(func(r rune) rune {
		if IsAllowed(r) {
			return r
		}
		return -1
	}, s)
}

// CollapseSeparators replaces runs of two or more identical separators
// (space, hyphen, underscore) with a single one.
// Runs mixing different separators, like " -_", are left untouched.
func CollapseSeparators(s string) string {
	for _, run := range separatorRuns {
		s = run.re.ReplaceAllLiteralString(s, run.sep)
	}
	return s
}

// Transliterate replaces supported accented letters with their ASCII base
// letter. Any other rune passes through.
func Transliterate(s string) string {
	return strings.Map(func(r rune) rune {
		if base, ok := ASCIIFold(r); ok {
			return base
		}
		return r
	}, s)
}

// ReplaceSpaces returns a transform substituting replacement for every run of
// whitespace. The replacement is inserted literally.
func ReplaceSpaces(replacement string) func(string) string {
	return func(s string) string {
		return whitespaceRegex.ReplaceAllLiteralString(s, replacement)
	}
}
