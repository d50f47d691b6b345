package slug_test

import (
	"regexp"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textutils/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{
			name:     "simple text",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "with punctuation",
			input:    "Hello, World!",
			expected: "hello-world",
		},
		{
			name:     "with numbers",
			input:    "Product 123",
			expected: "product-123",
		},
		{
			name:     "leading and trailing spaces",
			input:    "  Hello,  World  ",
			expected: "hello-world",
		},
		{
			name:     "mixed separators collapse",
			input:    "a -_b--c__d",
			expected: "a-b-c-d",
		},
		{
			name:     "transliterates accents",
			input:    "Crème Brûlée, à la carte!",
			expected: "creme-brulee-a-la-carte",
		},
		{
			name:     "drops unsupported letters",
			input:    "Straße Łódź",
			expected: "strae-od",
		},
		{
			name:     "custom separator",
			input:    "Hello World",
			opts:     []slug.Option{slug.Separator("_")},
			expected: "hello_world",
		},
		{
			name:     "max length",
			input:    "Hello World",
			opts:     []slug.Option{slug.MaxLength(8)},
			expected: "hello-wo",
		},
		{
			name:     "max length does not end with separator",
			input:    "Hello World",
			opts:     []slug.Option{slug.MaxLength(6)},
			expected: "hello",
		},
		{
			name:     "max length inside multi-rune separator",
			input:    "ab cd",
			opts:     []slug.Option{slug.Separator("--"), slug.MaxLength(3)},
			expected: "ab",
		},
		{
			name:     "max length right after multi-rune separator",
			input:    "ab cd",
			opts:     []slug.Option{slug.Separator("--"), slug.MaxLength(5)},
			expected: "ab--c",
		},
		{
			name:     "max length keeps words ending in separator letter",
			input:    "box fox",
			opts:     []slug.Option{slug.Separator("x"), slug.MaxLength(3)},
			expected: "box",
		},
		{
			name:     "only symbols",
			input:    "!!! ???",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}

func TestMake_WithSuffix(t *testing.T) {
	t.Parallel()

	t.Run("appends suffix", func(t *testing.T) {
		t.Parallel()
		result := slug.Make("Hello World", slug.WithSuffix(6))
		assert.Regexp(t, regexp.MustCompile(`^hello-world-[a-z0-9]{6}$`), result)
		assert.NotEqual(t, result, slug.Make("Hello World", slug.WithSuffix(6)))
	})

	t.Run("fits max length", func(t *testing.T) {
		t.Parallel()
		result := slug.Make("Hello World", slug.WithSuffix(4), slug.MaxLength(10))
		assert.Regexp(t, regexp.MustCompile(`^hello-[a-z0-9]{4}$`), result)
		assert.Equal(t, 10, utf8.RuneCountInString(result))
	})

	t.Run("suffix only when nothing fits", func(t *testing.T) {
		t.Parallel()
		result := slug.Make("Hello World", slug.WithSuffix(8), slug.MaxLength(5))
		assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{5}$`), result)
	})

	t.Run("suffix only for empty input", func(t *testing.T) {
		t.Parallel()
		result := slug.Make("!!!", slug.WithSuffix(4))
		assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{4}$`), result)
	})
}
