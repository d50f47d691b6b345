package sanitizer

import "strings"

// SanitizeEmail trims the input, deletes all inner whitespace and lowercases it.
// The result must contain at least one "@" and one "."; otherwise
// ErrInvalidFormat is returned. No further address validation is done.
func SanitizeEmail(s string) (string, error) {
	email := Apply(s, Trim, RemoveWhitespace, ToLower)

	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return "", ErrInvalidFormat
	}

	return email, nil
}

// EmailDomain returns the part after "@" of an address already normalized by
// SanitizeEmail, or "" when it does not hold exactly one "@".
func EmailDomain(email string) string {
	_, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return ""
	}
	return domain
}
