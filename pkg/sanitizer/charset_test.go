package sanitizer_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textutils/pkg/sanitizer"
)

func TestASCIIFold(t *testing.T) {
	t.Parallel()

	expected := map[rune]rune{
		'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A',
		'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
		'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E',
		'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
		'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I',
		'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
		'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O', 'Ø': 'O',
		'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o',
		'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U',
		'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
		'Ç': 'C', 'ç': 'c',
		'Ñ': 'N', 'ñ': 'n',
		'ÿ': 'y', 'Ÿ': 'Y',
	}

	for r, want := range expected {
		got, ok := sanitizer.ASCIIFold(r)
		require.True(t, ok, "missing transliteration for %q", r)
		assert.Equal(t, want, got, "transliteration of %q", r)
		assert.True(t, sanitizer.IsAllowed(r), "%q must be allowed", r)
	}

	for _, r := range "aZ09 -_ýÝæÆß×÷" {
		_, ok := sanitizer.ASCIIFold(r)
		assert.False(t, ok, "unexpected transliteration for %q", r)
	}
}

func TestASCIIFold_PreservesCase(t *testing.T) {
	t.Parallel()

	for _, r := range "ÀÁÂÃÄÅàáâãäåÈÉÊËèéêëÌÍÎÏìíîïÒÓÔÕÖØòóôõöøÙÚÛÜùúûüÇçÑñÿŸ" {
		got, ok := sanitizer.ASCIIFold(r)
		require.True(t, ok)
		assert.LessOrEqual(t, got, rune(unicode.MaxASCII))
		assert.Equal(t, unicode.IsUpper(r), unicode.IsUpper(got), "case of %q", r)
	}
}

func TestIsAllowed(t *testing.T) {
	t.Parallel()

	for r := 'a'; r <= 'z'; r++ {
		assert.True(t, sanitizer.IsAllowed(r))
		assert.True(t, sanitizer.IsAllowed(unicode.ToUpper(r)))
	}
	for r := '0'; r <= '9'; r++ {
		assert.True(t, sanitizer.IsAllowed(r))
	}
	for _, r := range " -_" {
		assert.True(t, sanitizer.IsAllowed(r))
	}

	for _, r := range "\t\n\r.,;:!?@#$%^&*()[]{}<>/\\|'\"`~+=ýÝæÆßœ×÷¿¡€😀\u00a0" {
		assert.False(t, sanitizer.IsAllowed(r), "%q must not be allowed", r)
	}
}
