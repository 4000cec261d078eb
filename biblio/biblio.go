// Package biblio implements the bibliographic collaborators consumed by
// the catalog: identifier validation, author name normalization, unique ID
// generation, citation formatting and loose-record parsing.
package biblio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/bibgo/record"
)

// Style identifies a citation style.
type Style string

const (
	StyleAPA Style = "APA"
	StyleMLA Style = "MLA"
)

// ErrUnsupportedStyle is returned for citation styles the formatter does
// not know.
var ErrUnsupportedStyle = errors.New("unsupported citation style")

// FormatCitation renders a record as a citation string.
//
// APA: Doe, Jane (2023). Test Title.
// MLA: Doe, Jane. "Test Title." 2023.
//
// A record without authors cites as "Unknown Author"; a record without a
// year cites as "n.d.".
func FormatCitation(rec record.Record, style Style) (string, error) {
	year := "n.d."
	if rec.Year != 0 {
		year = fmt.Sprintf("%d", rec.Year)
	}

	switch style {
	case StyleAPA:
		return fmt.Sprintf("%s (%s). %s", apaAuthors(rec.Authors), year, withPeriod(rec.Title)), nil
	case StyleMLA:
		return fmt.Sprintf("%s. %q %s.", mlaAuthors(rec.Authors), withPeriod(rec.Title), year), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, style)
	}
}

func apaAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return "Unknown Author"
	case 1:
		return authors[0]
	default:
		return strings.Join(authors[:len(authors)-1], ", ") + ", & " + authors[len(authors)-1]
	}
}

func mlaAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return "Unknown Author"
	case 1:
		return authors[0]
	case 2:
		return authors[0] + ", and " + authors[1]
	default:
		return authors[0] + ", et al."
	}
}
