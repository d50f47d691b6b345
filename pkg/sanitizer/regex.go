package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Space substitution
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Separator collapsing, one pattern per separator so mixed runs stay intact
	separatorRuns = []struct {
		re  *regexp.Regexp
		sep string
	}{
		{re: regexp.MustCompile(` {2,}`), sep: " "},
		{re: regexp.MustCompile(`-{2,}`), sep: "-"},
		{re: regexp.MustCompile(`_{2,}`), sep: "_"},
	}
)
