// Package token holds the normalization rule shared by the keyword index
// and its queries. There is exactly one tokenizer; indexing and lookup must
// never disagree on what a token is.
package token

import (
	"slices"
	"strings"
	"unicode"

	"github.com/hupe1980/bibgo/record"
)

// Tokenize lower-cases text and splits it on every rune that is neither a
// letter nor a digit. Empty tokens are dropped. No minimum length, no stop
// words, no stemming.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Set tokenizes every input and returns the union as a sorted slice without
// duplicates. Returns nil when no input yields a token.
func Set(fields ...string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, f := range fields {
		for _, t := range Tokenize(f) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}

	slices.Sort(out)
	return out
}

// Terms returns the index term set of a record: the token set of its title,
// abstract and keywords.
func Terms(r record.Record) []string {
	fields := make([]string, 0, len(r.Keywords)+2)
	fields = append(fields, r.Title, r.Abstract)
	fields = append(fields, r.Keywords...)
	return Set(fields...)
}
