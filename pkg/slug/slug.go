package slug

import (
	"strings"

	"github.com/dmitrymomot/textutils/pkg/random"
	"github.com/dmitrymomot/textutils/pkg/sanitizer"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	separator    string
	maxLength    int
	suffixLength int
}

func defaultConfig() *config {
	return &config{
		separator:    "-",
		maxLength:    0, // no limit
		suffixLength: 0, // no suffix by default
	}
}

// MaxLength limits the slug to n runes, suffix included. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// WithSuffix appends a random lowercase alphanumeric suffix of the given
// length, separated by the configured separator.
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

var normalize = sanitizer.Compose(
	sanitizer.KeepAllowed,
	sanitizer.Transliterate,
	sanitizer.ToLower,
)

// Make creates a URL-safe slug from s.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	words := strings.FieldsFunc(normalize(s), isWordBreak)

	suffix := ""
	if cfg.suffixLength > 0 {
		n := cfg.suffixLength
		if cfg.maxLength > 0 && n > cfg.maxLength {
			n = cfg.maxLength
		}
		// Without entropy the slug is returned unsuffixed.
		if rnd, err := random.String(n, random.Lowercase|random.Digits); err == nil {
			suffix = rnd
		}
	}

	limit := cfg.maxLength
	if limit > 0 && suffix != "" {
		limit -= runeLen(cfg.separator) + runeLen(suffix)
		if limit <= 0 {
			return suffix
		}
	}

	result := join(words, cfg.separator, limit)

	switch {
	case suffix == "":
		return result
	case result == "":
		return suffix
	default:
		return result + cfg.separator + suffix
	}
}

func isWordBreak(r rune) bool {
	return r == ' ' || r == '-' || r == '_'
}

// join joins words with sep, keeping at most limit runes when limit is
// positive. Only the last word may be cut; the result never ends in a whole
// or partial separator.
func join(words []string, sep string, limit int) string {
	if limit <= 0 {
		return strings.Join(words, sep)
	}

	var b strings.Builder
	n := 0
	for i, word := range words {
		if i > 0 {
			if n+runeLen(sep) >= limit {
				break
			}
			b.WriteString(sep)
			n += runeLen(sep)
		}
		if rs := []rune(word); n+len(rs) > limit {
			b.WriteString(string(rs[:limit-n]))
			break
		}
		b.WriteString(word)
		n += runeLen(word)
	}
	return b.String()
}

func runeLen(s string) int {
	return len([]rune(s))
}
