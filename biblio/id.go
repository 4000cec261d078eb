package biblio

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a fresh identifier of the form "PREFIX-XXXXXXXXXX"
// where the suffix is ten upper-case hex characters from a random UUID.
// An empty prefix defaults to "DOC".
func GenerateID(prefix string) string {
	if prefix == "" {
		prefix = "DOC"
	}
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(hex[:10])
}
