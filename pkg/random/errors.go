package random

import "errors"

var (
	// ErrNoCharset is returned when the selected classes produce an empty alphabet.
	ErrNoCharset = errors.New("no character class selected")
	// ErrUnknownClass is returned by ParseClasses for a name other than
	// uppercase, lowercase or digits.
	ErrUnknownClass = errors.New("unknown character class")
)
