package biblio

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/hupe1980/bibgo/record"
)

// ParseRecord converts a loose metadata map, as produced by external
// library systems, into a record.
//
// Field resolution:
//   - title:      "title" or "name"; required, markup stripped
//   - authors:    "authors" list or single "author" string, normalized;
//     defaults to "Unknown"
//   - year:       "year" (number or string) or the leading year of
//     "publication_date"
//   - identifier: "identifier", "id" or "isbn"; generated when absent
//   - keywords:   "keywords" list
//   - abstract:   "abstract" or "summary", markup stripped
//
// Identifiers that contain a digit get a best-effort ISBN shape check whose
// failure is ignored; external systems ship many identifier schemes.
func ParseRecord(m map[string]any) (record.Record, error) {
	title := Sanitize(stringField(m, "title", "name"))
	if title == "" {
		return record.Record{}, fmt.Errorf("%w: record must contain a title", record.ErrInvalid)
	}

	identifier := stringField(m, "identifier", "id", "isbn")
	if identifier == "" {
		identifier = GenerateID("REC")
	}
	if strings.ContainsFunc(identifier, unicode.IsDigit) {
		_, _ = ValidateISBN(identifier)
	}

	b := record.NewBuilder().
		WithIdentifier(identifier).
		WithTitle(title).
		WithAbstract(Sanitize(stringField(m, "abstract", "summary"))).
		WithAuthors(parseAuthors(m)...).
		WithYear(parseYear(m)).
		WithKeywords(stringList(m, "keywords")...)

	rec, err := b.Build()
	if err != nil {
		return record.Record{}, err
	}
	return rec, nil
}

func parseAuthors(m map[string]any) []string {
	raw := stringList(m, "authors")
	if len(raw) == 0 {
		if a := stringField(m, "author"); a != "" {
			raw = []string{a}
		}
	}
	if len(raw) == 0 {
		return []string{"Unknown"}
	}

	out := make([]string, 0, len(raw))
	for _, a := range raw {
		normalized, err := NormalizeAuthor(a)
		if err != nil {
			continue
		}
		out = append(out, normalized)
	}
	if len(out) == 0 {
		return []string{"Unknown"}
	}
	return out
}

func parseYear(m map[string]any) int {
	switch v := m["year"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if y := leadingYear(v); y != 0 {
			return y
		}
	}
	return leadingYear(stringField(m, "publication_date"))
}

// leadingYear extracts a four-digit year prefix from strings such as
// "2021-05-01" or "2021".
func leadingYear(s string) int {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return 0
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0
	}
	return y
}

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

func stringList(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
