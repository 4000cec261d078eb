package record

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	t.Run("deep copy of slice fields", func(t *testing.T) {
		orig := Record{
			Identifier: "DOC-001",
			Title:      "Quantum Systems",
			Authors:    []string{"Doe, Jane"},
			Keywords:   []string{"physics", "quantum"},
		}

		clone := orig.Clone()
		clone.Authors[0] = "changed"
		clone.Keywords[0] = "changed"

		assert.Equal(t, "Doe, Jane", orig.Authors[0])
		assert.Equal(t, "physics", orig.Keywords[0])
	})

	t.Run("nil slices stay nil", func(t *testing.T) {
		clone := Record{Identifier: "DOC-001"}.Clone()
		assert.Nil(t, clone.Authors)
		assert.Nil(t, clone.Keywords)
	})
}

func TestEqual(t *testing.T) {
	base := Record{
		Identifier:  "DOC-001",
		Title:       "Quantum Systems",
		Authors:     []string{"Doe, Jane"},
		Year:        2023,
		Keywords:    []string{"quantum"},
		LastUpdated: time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("equal to its clone", func(t *testing.T) {
		assert.True(t, base.Equal(base.Clone()))
	})

	t.Run("timestamp compared by instant, not location", func(t *testing.T) {
		other := base.Clone()
		other.LastUpdated = base.LastUpdated.In(time.FixedZone("X", 3600))
		assert.True(t, base.Equal(other))
	})

	t.Run("content difference detected", func(t *testing.T) {
		other := base.Clone()
		other.Title = "Machine Learning"
		assert.False(t, base.Equal(other))
	})
}

func TestValidate(t *testing.T) {
	t.Run("empty identifier rejected", func(t *testing.T) {
		err := Record{}.Validate(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "identifier", ve.Field)
	})

	t.Run("whitespace identifier rejected", func(t *testing.T) {
		err := Record{Identifier: "   "}.Validate(nil)
		assert.True(t, errors.Is(err, ErrInvalid))
	})

	t.Run("validator hook consulted", func(t *testing.T) {
		rejectAll := func(string) bool { return false }
		err := Record{Identifier: "DOC-001"}.Validate(rejectAll)
		assert.True(t, errors.Is(err, ErrInvalid))

		acceptAll := func(string) bool { return true }
		assert.NoError(t, Record{Identifier: "DOC-001"}.Validate(acceptAll))
	})

	t.Run("nil hook accepts any non-empty identifier", func(t *testing.T) {
		assert.NoError(t, Record{Identifier: "anything"}.Validate(nil))
	})
}

func TestNormalizeKeywords(t *testing.T) {
	t.Run("lower-cases, trims, dedups and sorts", func(t *testing.T) {
		got := NormalizeKeywords([]string{"Physics", " quantum ", "physics", "AI"})
		assert.Equal(t, []string{"ai", "physics", "quantum"}, got)
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, NormalizeKeywords(nil))
		assert.Nil(t, NormalizeKeywords([]string{"", "  "}))
	})
}

func TestFieldValues(t *testing.T) {
	rec := Record{
		Identifier: "DOC-001",
		Title:      "Quantum Systems",
		Abstract:   "A study",
		Authors:    []string{"Doe, Jane", "Smith, John"},
		Keywords:   []string{"physics", "quantum"},
	}

	assert.Equal(t, []string{"Quantum Systems"}, rec.Values(FieldTitle))
	assert.Equal(t, []string{"A study"}, rec.Values(FieldAbstract))
	assert.Equal(t, []string{"physics", "quantum"}, rec.Values(FieldKeywords))
	assert.Equal(t, []string{"Doe, Jane", "Smith, John"}, rec.Values(FieldAuthors))
	assert.Equal(t, []string{"DOC-001"}, rec.Values(FieldIdentifier))
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "title", FieldTitle.String())
	assert.Equal(t, "abstract", FieldAbstract.String())
	assert.Equal(t, "keywords", FieldKeywords.String())
	assert.Equal(t, "authors", FieldAuthors.String())
	assert.Equal(t, "identifier", FieldIdentifier.String())
	assert.Equal(t, "unknown", Field(99).String())
}

func TestDefaultFields(t *testing.T) {
	assert.Equal(t, []Field{FieldTitle, FieldAbstract, FieldKeywords}, DefaultFields())
}
