package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textutils/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies multiple transforms in sequence",
			input: "  HELLO WORLD  ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToLower,
			},
			expected: "hello world",
		},
		{
			name:  "order matters for collapsing",
			input: "a ! b",
			transforms: []func(string) string{
				sanitizer.CollapseSeparators,
				sanitizer.KeepAllowed,
			},
			expected: "a  b",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello world",
			transforms: []func(string) string{},
			expected:   "hello world",
		},
		{
			name:  "handles empty input",
			input: "",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToLower,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := sanitizer.Apply(tt.input, tt.transforms...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	slug := sanitizer.Compose(
		sanitizer.KeepAllowed,
		sanitizer.CollapseSeparators,
		sanitizer.Transliterate,
		sanitizer.Trim,
		sanitizer.ToLower,
		sanitizer.ReplaceSpaces("-"),
	)

	assert.Equal(t, "creme-brulee", slug("  Crème   Brûlée! "))
	assert.Equal(t, "uber-cool", slug("Über cool"))
	assert.Equal(t, "", slug("!!!"))
}
