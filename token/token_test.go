package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bibgo/record"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lower-cases and splits on spaces",
			text: "Quantum Systems",
			want: []string{"quantum", "systems"},
		},
		{
			name: "splits on punctuation",
			text: "machine-learning: a survey (2nd ed.)",
			want: []string{"machine", "learning", "a", "survey", "2nd", "ed"},
		},
		{
			name: "numerals are tokens",
			text: "published 2023",
			want: []string{"published", "2023"},
		},
		{
			name: "no minimum token length",
			text: "a b ml",
			want: []string{"a", "b", "ml"},
		},
		{
			name: "unicode letters kept",
			text: "Schrödinger's cat",
			want: []string{"schrödinger", "s", "cat"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "punctuation only",
			text: "--- !!! ...",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestSet(t *testing.T) {
	t.Run("union without duplicates, sorted", func(t *testing.T) {
		got := Set("Quantum Systems", "quantum computing")
		assert.Equal(t, []string{"computing", "quantum", "systems"}, got)
	})

	t.Run("nil when nothing tokenizes", func(t *testing.T) {
		assert.Nil(t, Set("", "..."))
	})
}

func TestTerms(t *testing.T) {
	rec := record.NewBuilder().
		WithIdentifier("DOC-001").
		WithTitle("Quantum Systems").
		WithAbstract("A study of entanglement").
		WithKeywords("physics", "quantum-computing").
		MustBuild()

	got := Terms(rec)
	assert.Equal(t, []string{"a", "computing", "entanglement", "of", "physics", "quantum", "study", "systems"}, got)
}

func TestTermsIgnoreAuthorsAndIdentifier(t *testing.T) {
	rec := record.NewBuilder().
		WithIdentifier("DOC-001").
		WithTitle("Quantum").
		WithAuthors("Doe, Jane").
		MustBuild()

	got := Terms(rec)
	assert.NotContains(t, got, "doe")
	assert.NotContains(t, got, "doc")
	assert.Equal(t, []string{"quantum"}, got)
}
