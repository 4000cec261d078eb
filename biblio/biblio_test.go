package biblio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bibgo/record"
)

func TestNormalizeAuthor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "first last", in: "jane doe", want: "Doe, Jane"},
		{name: "many given names", in: "John Ronald Reuel Tolkien", want: "Tolkien, John Ronald Reuel"},
		{name: "single word", in: "plato", want: "Plato"},
		{name: "already normalized", in: "doe, jane", want: "Doe, Jane"},
		{name: "surrounding whitespace", in: "  jane doe  ", want: "Doe, Jane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAuthor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("empty name is an error", func(t *testing.T) {
		_, err := NormalizeAuthor("")
		assert.Error(t, err)
		_, err = NormalizeAuthor("   ")
		assert.Error(t, err)
	})
}

func TestValidateISBN(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, isbn := range []string{"9780306406157", "0306406152", "978-0-306-40615-7", "0-306-40615-2"} {
			ok, err := ValidateISBN(isbn)
			require.NoError(t, err)
			assert.True(t, ok, isbn)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, isbn := range []string{"abc123", "123", "97803064061579", "abcdefghij"} {
			ok, err := ValidateISBN(isbn)
			require.NoError(t, err)
			assert.False(t, ok, isbn)
		}
	})

	t.Run("isbn-10 allows a check character", func(t *testing.T) {
		ok, err := ValidateISBN("030640615X")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := ValidateISBN("")
		assert.Error(t, err)
	})
}

func TestISBNValidator(t *testing.T) {
	assert.True(t, ISBNValidator("9780306406157"))
	assert.False(t, ISBNValidator("abc123"))
	assert.False(t, ISBNValidator(""))
}

func TestGenerateID(t *testing.T) {
	id := GenerateID("REC")
	assert.Regexp(t, `^REC-[0-9A-F]{10}$`, id)

	assert.Regexp(t, `^DOC-[0-9A-F]{10}$`, GenerateID(""))

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[GenerateID("REC")] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestFormatCitation(t *testing.T) {
	single := record.NewBuilder().
		WithIdentifier("DOC-001").
		WithTitle("Test Title").
		WithAuthors("Doe, Jane").
		WithYear(2023).
		MustBuild()

	t.Run("APA", func(t *testing.T) {
		got, err := FormatCitation(single, StyleAPA)
		require.NoError(t, err)
		assert.Equal(t, "Doe, Jane (2023). Test Title.", got)
	})

	t.Run("MLA", func(t *testing.T) {
		got, err := FormatCitation(single, StyleMLA)
		require.NoError(t, err)
		assert.Equal(t, `Doe, Jane. "Test Title." 2023.`, got)
	})

	t.Run("unsupported style", func(t *testing.T) {
		_, err := FormatCitation(single, Style("CHICAGO"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedStyle))
	})

	t.Run("missing year renders n.d.", func(t *testing.T) {
		rec := record.NewBuilder().
			WithIdentifier("DOC-002").
			WithTitle("Undated Work").
			WithAuthors("Doe, Jane").
			MustBuild()

		got, err := FormatCitation(rec, StyleAPA)
		require.NoError(t, err)
		assert.Equal(t, "Doe, Jane (n.d.). Undated Work.", got)
	})

	t.Run("missing authors render Unknown Author", func(t *testing.T) {
		rec := record.NewBuilder().
			WithIdentifier("DOC-003").
			WithTitle("Orphaned Work").
			WithYear(1999).
			MustBuild()

		got, err := FormatCitation(rec, StyleAPA)
		require.NoError(t, err)
		assert.Equal(t, "Unknown Author (1999). Orphaned Work.", got)
	})

	t.Run("two authors", func(t *testing.T) {
		rec := record.NewBuilder().
			WithIdentifier("DOC-004").
			WithTitle("Joint Work").
			WithAuthors("Doe, Jane", "Smith, John").
			WithYear(2021).
			MustBuild()

		apa, err := FormatCitation(rec, StyleAPA)
		require.NoError(t, err)
		assert.Equal(t, "Doe, Jane, & Smith, John (2021). Joint Work.", apa)

		mla, err := FormatCitation(rec, StyleMLA)
		require.NoError(t, err)
		assert.Equal(t, `Doe, Jane, and Smith, John. "Joint Work." 2021.`, mla)
	})

	t.Run("three or more authors in MLA use et al", func(t *testing.T) {
		rec := record.NewBuilder().
			WithIdentifier("DOC-005").
			WithTitle("Crowded Work").
			WithAuthors("Doe, Jane", "Smith, John", "Roe, Richard").
			WithYear(2020).
			MustBuild()

		mla, err := FormatCitation(rec, StyleMLA)
		require.NoError(t, err)
		assert.Equal(t, `Doe, Jane, et al. "Crowded Work." 2020.`, mla)
	})
}

func TestAPAReference(t *testing.T) {
	t.Run("full reference", func(t *testing.T) {
		ref := APAReference{
			Authors:   []string{"Jane Doe", "John Smith"},
			Year:      2021,
			Title:     "understanding widgets",
			Publisher: "Widget Press",
			DOI:       "https://doi.org/10.1234/widget.2021",
		}

		c := ref.Generate()
		assert.Equal(t, StyleAPA, c.Style)
		assert.True(t, len(c.Text) > 0)
		assert.Equal(t,
			"Doe, J., & Smith, J. (2021). Understanding widgets. Widget Press. https://doi.org/10.1234/widget.2021",
			c.Text)
	})

	t.Run("no authors", func(t *testing.T) {
		c := APAReference{Title: "Orphaned Work", Year: 1999}.Generate()
		assert.Equal(t, "Unknown Author (1999). Orphaned Work.", c.Text)
	})

	t.Run("missing year", func(t *testing.T) {
		c := APAReference{Authors: []string{"Jane Doe"}, Title: "Undated"}.Generate()
		assert.Equal(t, "Doe, J. (n.d.). Undated.", c.Text)
	})

	t.Run("many given names become initials", func(t *testing.T) {
		c := APAReference{Authors: []string{"John Ronald Reuel Tolkien"}, Year: 1954, Title: "On fairy stories"}.Generate()
		assert.Equal(t, "Tolkien, J. R. R. (1954). On fairy stories.", c.Text)
	})
}

func TestParseRecord(t *testing.T) {
	t.Run("full map", func(t *testing.T) {
		rec, err := ParseRecord(map[string]any{
			"title":      "Understanding Widgets",
			"author":     "jane doe",
			"year":       2021,
			"identifier": "WID-001",
			"keywords":   []any{"Widgets", "design"},
			"abstract":   "A study of widgets",
		})
		require.NoError(t, err)

		assert.Equal(t, "WID-001", rec.Identifier)
		assert.Equal(t, "Understanding Widgets", rec.Title)
		assert.Equal(t, []string{"Doe, Jane"}, rec.Authors)
		assert.Equal(t, 2021, rec.Year)
		assert.Equal(t, []string{"design", "widgets"}, rec.Keywords)
		assert.Equal(t, "A study of widgets", rec.Abstract)
	})

	t.Run("alternate field names", func(t *testing.T) {
		rec, err := ParseRecord(map[string]any{
			"name":             "Aliased Title",
			"id":               "ALT-001",
			"summary":          "Aliased abstract",
			"publication_date": "2019-04-01",
		})
		require.NoError(t, err)

		assert.Equal(t, "Aliased Title", rec.Title)
		assert.Equal(t, "ALT-001", rec.Identifier)
		assert.Equal(t, "Aliased abstract", rec.Abstract)
		assert.Equal(t, 2019, rec.Year)
	})

	t.Run("authors list normalized", func(t *testing.T) {
		rec, err := ParseRecord(map[string]any{
			"title":   "Many Hands",
			"authors": []any{"jane doe", "john smith"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Doe, Jane", "Smith, John"}, rec.Authors)
	})

	t.Run("missing author defaults to Unknown", func(t *testing.T) {
		rec, err := ParseRecord(map[string]any{"title": "Anonymous Work"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Unknown"}, rec.Authors)
	})

	t.Run("missing identifier is generated", func(t *testing.T) {
		rec, err := ParseRecord(map[string]any{"title": "Fresh Work"})
		require.NoError(t, err)
		assert.Regexp(t, `^REC-[0-9A-F]{10}$`, rec.Identifier)
	})

	t.Run("missing title fails", func(t *testing.T) {
		_, err := ParseRecord(map[string]any{"author": "jane doe"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, record.ErrInvalid))
	})

	t.Run("markup stripped", func(t *testing.T) {
		rec, err := ParseRecord(map[string]any{
			"title":    `Widgets <b>Explained</b>`,
			"abstract": `See <a href="http://example.com">the site</a>`,
		})
		require.NoError(t, err)
		assert.Equal(t, "Widgets Explained", rec.Title)
		assert.Equal(t, "See the site", rec.Abstract)
	})

	t.Run("markup-only title fails", func(t *testing.T) {
		_, err := ParseRecord(map[string]any{"title": "<br/>"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, record.ErrInvalid))
	})

	t.Run("year from float and string", func(t *testing.T) {
		rec, err := ParseRecord(map[string]any{"title": "From JSON", "year": float64(2018)})
		require.NoError(t, err)
		assert.Equal(t, 2018, rec.Year)

		rec, err = ParseRecord(map[string]any{"title": "From String", "year": "2017"})
		require.NoError(t, err)
		assert.Equal(t, 2017, rec.Year)
	})

	t.Run("isbn identifier accepted", func(t *testing.T) {
		rec, err := ParseRecord(map[string]any{"title": "A Book", "isbn": "9780306406157"})
		require.NoError(t, err)
		assert.Equal(t, "9780306406157", rec.Identifier)
	})
}

func TestSanitize(t *testing.T) {
	cleaned := Sanitize(`Hello<script>alert("x")</script>`)
	assert.NotContains(t, cleaned, "<")
	assert.NotContains(t, cleaned, ">")
	assert.Contains(t, cleaned, "Hello")

	assert.Equal(t, "plain text", Sanitize("plain text"))
	assert.Equal(t, "a b", Sanitize("a <b"))
}
