package sanitizer

import "errors"

// ErrInvalidFormat is returned by SanitizeEmail when the normalized value has
// no "@" or no ".". The message text is fixed.
var ErrInvalidFormat = errors.New("Invalid email address") //nolint:staticcheck
