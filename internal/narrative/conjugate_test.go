package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConjugateToGerund_IrregularTable(t *testing.T) {
	// Every irregular key alone must map to exactly its gerund, with no
	// trailing artifacts.
	for past, gerund := range irregularGerunds {
		assert.Equal(t, gerund, ConjugateToGerund(past), "key %q", past)
	}
}

func TestConjugateToGerund_RegularHeuristic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"planted", "planting"},
		{"removed", "removing"},
		{"organized", "organizing"},
		{"surveyed", "surveying"},
		{"attended", "attending"},
		// Short "-ed" tokens are left alone (length gate).
		{"red", "red"},
		{"bed", "bed"},
		{"need", "need"},
		// Not past tense at all.
		{"trail", "trail"},
		{"counting", "counting"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConjugateToGerund(tt.in), "input %q", tt.in)
	}
}

func TestConjugateToGerund_PreservesPunctuationAndBoundaries(t *testing.T) {
	assert.Equal(t,
		"leading a hike, planting trees, and giving a talk.",
		ConjugateToGerund("led a hike, planted trees, and gave a talk."))

	// Token boundaries survive, including runs of spaces.
	assert.Equal(t, "leading  the  way", ConjugateToGerund("led  the  way"))
}

// Re-application changes nothing for text already in gerund form.
func TestConjugateToGerund_IdempotentOnGerunds(t *testing.T) {
	once := ConjugateToGerund("led a guided hike and removed invasives")
	assert.Equal(t, once, ConjugateToGerund(once))
}

func TestConjugateToGerund_EmptyAndWhitespace(t *testing.T) {
	assert.Equal(t, "", ConjugateToGerund(""))
	assert.Equal(t, " ", ConjugateToGerund(" "))
}
