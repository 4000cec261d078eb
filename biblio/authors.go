package biblio

import (
	"errors"
	"strings"
	"unicode"
)

// NormalizeAuthor standardizes an author name into "Last, First Middle"
// form with title-cased words.
//
//	"jane doe"                 -> "Doe, Jane"
//	"John Ronald Reuel Tolkien" -> "Tolkien, John Ronald Reuel"
//	"plato"                    -> "Plato"
//
// Input already in "Last, First" form passes through re-cased. An empty
// name is an error.
func NormalizeAuthor(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errors.New("biblio: author name must not be empty")
	}

	last, firsts := splitName(trimmed)
	if len(firsts) == 0 {
		return titleWord(last), nil
	}
	return titleWord(last) + ", " + strings.Join(titleWords(firsts), " "), nil
}

// splitName breaks a name into the family name and the given names, in
// given-name order. Accepts both "First Middle Last" and "Last, First
// Middle" input.
func splitName(name string) (last string, firsts []string) {
	if before, after, ok := strings.Cut(name, ","); ok {
		return strings.TrimSpace(before), strings.Fields(after)
	}

	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name, nil
	}
	return parts[len(parts)-1], parts[:len(parts)-1]
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(strings.ToLower(w))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func titleWords(ws []string) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = titleWord(w)
	}
	return out
}
