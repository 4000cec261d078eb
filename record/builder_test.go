package record

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("builds a normalized record", func(t *testing.T) {
		rec, err := NewBuilder().
			WithIdentifier(" DOC-001 ").
			WithTitle("Quantum Systems").
			WithAbstract("A study of entanglement").
			WithAuthors("Doe, Jane", "Smith, John").
			WithYear(2023).
			WithKeywords("Quantum", "physics", "quantum").
			Build()
		require.NoError(t, err)

		assert.Equal(t, "DOC-001", rec.Identifier)
		assert.Equal(t, "Quantum Systems", rec.Title)
		assert.Equal(t, []string{"Doe, Jane", "Smith, John"}, rec.Authors)
		assert.Equal(t, 2023, rec.Year)
		assert.Equal(t, []string{"physics", "quantum"}, rec.Keywords)
	})

	t.Run("missing identifier fails", func(t *testing.T) {
		_, err := NewBuilder().WithTitle("No Identity").Build()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
	})

	t.Run("immutable chaining", func(t *testing.T) {
		base := NewBuilder().WithIdentifier("DOC-001")
		a := base.WithTitle("A")
		b := base.WithTitle("B")

		recA, err := a.Build()
		require.NoError(t, err)
		recB, err := b.Build()
		require.NoError(t, err)

		assert.Equal(t, "A", recA.Title)
		assert.Equal(t, "B", recB.Title)
	})

	t.Run("explicit timestamp preserved", func(t *testing.T) {
		ts := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
		rec, err := NewBuilder().WithIdentifier("DOC-001").WithLastUpdated(ts).Build()
		require.NoError(t, err)
		assert.True(t, ts.Equal(rec.LastUpdated))
	})

	t.Run("MustBuild panics on invalid record", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().WithTitle("No Identity").MustBuild()
		})
	})

	t.Run("MustBuild returns the record", func(t *testing.T) {
		rec := NewBuilder().WithIdentifier("DOC-001").MustBuild()
		assert.Equal(t, "DOC-001", rec.Identifier)
	})
}
