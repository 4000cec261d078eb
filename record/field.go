package record

// Field identifies a searchable record field.
type Field uint8

const (
	FieldTitle Field = iota
	FieldAbstract
	FieldKeywords
	FieldAuthors
	FieldIdentifier
)

// String returns the string representation of the Field.
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAbstract:
		return "abstract"
	case FieldKeywords:
		return "keywords"
	case FieldAuthors:
		return "authors"
	case FieldIdentifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// DefaultFields returns the fields searched when the caller names none:
// title, abstract and keywords.
func DefaultFields() []Field {
	return []Field{FieldTitle, FieldAbstract, FieldKeywords}
}

// Values returns the record values covered by a field. Multi-valued fields
// return one entry per element.
func (r Record) Values(f Field) []string {
	switch f {
	case FieldTitle:
		return []string{r.Title}
	case FieldAbstract:
		return []string{r.Abstract}
	case FieldKeywords:
		return r.Keywords
	case FieldAuthors:
		return r.Authors
	case FieldIdentifier:
		return []string{r.Identifier}
	default:
		return nil
	}
}
