package biblio

import (
	"fmt"
	"strings"
	"unicode"
)

// Citation is a rendered citation with its style.
type Citation struct {
	Style Style  `json:"style"`
	Text  string `json:"citation"`
}

// APAReference renders a full APA reference entry, richer than
// FormatCitation: initialed authors, sentence-cased title, publisher and
// DOI.
//
//	Doe, J., & Smith, J. (2021). Understanding widgets. Widget Press.
//	https://doi.org/10.1234/widget.2021
type APAReference struct {
	Authors   []string
	Year      int
	Title     string
	Publisher string
	DOI       string
}

// Generate renders the reference. A reference without authors starts with
// "Unknown Author"; a missing year renders as "(n.d.).".
func (r APAReference) Generate() Citation {
	var b strings.Builder

	b.WriteString(initialedAuthors(r.Authors))

	year := "n.d."
	if r.Year != 0 {
		year = fmt.Sprintf("%d", r.Year)
	}
	fmt.Fprintf(&b, " (%s).", year)

	if title := sentenceCase(r.Title); title != "" {
		b.WriteString(" " + withPeriod(title))
	}
	if r.Publisher != "" {
		b.WriteString(" " + withPeriod(r.Publisher))
	}
	if r.DOI != "" {
		b.WriteString(" " + r.DOI)
	}

	return Citation{Style: StyleAPA, Text: b.String()}
}

// initialedAuthors renders authors as "Last, F. M." entries joined with
// ", " and an ampersand before the final author.
func initialedAuthors(authors []string) string {
	if len(authors) == 0 {
		return "Unknown Author"
	}

	entries := make([]string, 0, len(authors))
	for _, a := range authors {
		entries = append(entries, initialedAuthor(a))
	}
	if len(entries) == 1 {
		return entries[0]
	}
	return strings.Join(entries[:len(entries)-1], ", ") + ", & " + entries[len(entries)-1]
}

func initialedAuthor(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Unknown Author"
	}

	last, firsts := splitName(trimmed)
	if len(firsts) == 0 {
		return titleWord(last)
	}

	initials := make([]string, 0, len(firsts))
	for _, f := range firsts {
		for _, r := range f {
			initials = append(initials, string(unicode.ToUpper(r))+".")
			break
		}
	}
	return titleWord(last) + ", " + strings.Join(initials, " ")
}

// sentenceCase upper-cases the first letter and leaves the rest untouched.
func sentenceCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func withPeriod(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
