package biblio

import (
	"errors"
	"strings"
	"unicode"
)

// ValidateISBN reports whether s has a valid ISBN-10 or ISBN-13 shape.
// Hyphens and surrounding whitespace are stripped first. Ten characters
// whose first nine are digits pass (the last may be a check character),
// as do thirteen digits. An empty input is an error, not merely invalid.
func ValidateISBN(s string) (bool, error) {
	if s == "" {
		return false, errors.New("biblio: isbn must not be empty")
	}

	clean := strings.TrimSpace(strings.ReplaceAll(s, "-", ""))
	switch len(clean) {
	case 10:
		return allDigits(clean[:9]), nil
	case 13:
		return allDigits(clean), nil
	default:
		return false, nil
	}
}

// ISBNValidator adapts ValidateISBN to the catalog's identifier hook.
func ISBNValidator(s string) bool {
	ok, err := ValidateISBN(s)
	return err == nil && ok
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
