package sanitizer

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// accentedLetters is the Latin-1 subset kept by KeepAllowed on top of ASCII
// letters, digits and separators.
const accentedLetters = "ÀÁÂÃÄÅàáâãäå" +
	"ÈÉÊËèéêë" +
	"ÌÍÎÏìíîï" +
	"ÒÓÔÕÖØòóôõöø" +
	"ÙÚÛÜùúûü" +
	"ÇçÑñÿŸ"

// strokeLetters carry the diacritic inside the glyph, NFD leaves them as is.
var strokeLetters = map[rune]rune{
	'Ø': 'O',
	'ø': 'o',
}

// Read-only after package initialization.
var (
	allowedAccents   = buildAllowedAccents(accentedLetters)
	transliterations = buildTransliterations(accentedLetters)
)

func buildAllowedAccents(letters string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(letters))
	for _, r := range letters {
		set[r] = struct{}{}
	}
	return set
}

// buildTransliterations maps every letter to the ASCII base letter left after
// canonical decomposition drops the combining marks.
func buildTransliterations(letters string) map[rune]rune {
	table := make(map[rune]rune, len(letters))
	for _, r := range letters {
		if base, ok := strokeLetters[r]; ok {
			table[r] = base
			continue
		}

		decomposed := []rune(norm.NFD.String(string(r)))
		if len(decomposed) < 2 {
			continue
		}

		base := decomposed[0]
		if base > unicode.MaxASCII || !unicode.IsLetter(base) {
			continue
		}
		table[r] = base
	}
	return table
}

// IsAllowed reports whether r survives the character filtering step.
func IsAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '-', r == '_':
		return true
	}
	_, ok := allowedAccents[r]
	return ok
}

// ASCIIFold returns the ASCII letter an accented letter transliterates to.
// The second result is false for runes outside the transliteration table.
func ASCIIFold(r rune) (rune, bool) {
	base, ok := transliterations[r]
	return base, ok
}
