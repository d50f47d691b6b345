package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Class is a set of characters String may draw from.
type Class uint8

const (
	Uppercase Class = 1 << iota
	Lowercase
	Digits

	// All is used when no class is passed to String.
	All = Uppercase | Lowercase | Digits
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
)

var classNames = map[string]Class{
	"uppercase": Uppercase,
	"lowercase": Lowercase,
	"digits":    Digits,
}

// Alphabet returns the characters covered by c, uppercase first.
func (c Class) Alphabet() string {
	var b strings.Builder
	if c&Uppercase != 0 {
		b.WriteString(uppercaseChars)
	}
	if c&Lowercase != 0 {
		b.WriteString(lowercaseChars)
	}
	if c&Digits != 0 {
		b.WriteString(digitChars)
	}
	return b.String()
}

// String returns a random string of size characters drawn uniformly from the
// union of classes. No classes means All. A non-positive size yields "".
func String(size int, classes ...Class) (string, error) {
	mask := All
	if len(classes) > 0 {
		mask = 0
		for _, c := range classes {
			mask |= c
		}
	}

	alphabet := mask.Alphabet()
	if alphabet == "" {
		return "", ErrNoCharset
	}
	if size <= 0 {
		return "", nil
	}

	limit := big.NewInt(int64(len(alphabet)))
	b := make([]byte, size)
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		b[i] = alphabet[n.Int64()]
	}

	return string(b), nil
}

// ParseClasses parses a comma-separated list of class names
// ("uppercase", "lowercase", "digits"). Names are case-insensitive and empty
// items are ignored.
func ParseClasses(list string) (Class, error) {
	var mask Class
	for name := range strings.SplitSeq(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		c, ok := classNames[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
		}
		mask |= c
	}

	if mask == 0 {
		return 0, ErrNoCharset
	}
	return mask, nil
}
