package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Strips all HTML, keeping text content only
		strictPolicy = bluemonday.StrictPolicy()
		strictPolicy.AddSpaceWhenStrippingTag(true)
	})
}

// StripHTML removes all markup and returns the text content.
// Adjacent elements are separated by a space, entities are unescaped and
// newlines, tabs and repeated spaces are collapsed to single spaces.
func StripHTML(s string) string {
	initPolicies()
	text := strictPolicy.Sanitize(s)
	return NormalizeWhitespace(html.UnescapeString(text))
}
