package random

import (
	"strings"

	"github.com/google/uuid"
)

// Token returns a random UUIDv4 with "-" replaced by "_".
func Token() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "_")
}
