package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_ExactWordBoundaryMatch(t *testing.T) {
	e := NewExtractor()

	matches, err := e.Extract("experienced python developer azure cloud", []string{"Python", "Azure"})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Python": 1.0, "Azure": 1.0}, matches)
}

func TestExtract_MultiWordSkill(t *testing.T) {
	e := NewExtractor()

	matches, err := e.Extract("senior machine learning engineer", []string{"machine learning"})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"machine learning": 1.0}, matches)
}

func TestExtract_SubstringMatch(t *testing.T) {
	e := NewExtractor()

	matches, err := e.Extract("postgresql databases at scale", []string{"sql"})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"sql": SubstringConfidence}, matches)
}

func TestExtract_BoundaryMatchAtTextEdges(t *testing.T) {
	e := NewExtractor()

	matches, err := e.Extract("python", []string{"python"})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"python": 1.0}, matches)
}

func TestExtract_FuzzyMatch(t *testing.T) {
	e := NewExtractor()

	// "kubernete" is one deletion away from "kubernetes": similarity 0.9.
	matches, err := e.Extract("deployed kubernete clusters", []string{"kubernetes"})

	require.NoError(t, err)
	require.Contains(t, matches, "kubernetes")
	assert.InDelta(t, 0.9*FuzzyWeight, matches["kubernetes"], 1e-12)
}

func TestExtract_FuzzyBelowThresholdIgnored(t *testing.T) {
	e := NewExtractor()

	matches, err := e.Extract("python sql azure", []string{"java"})

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestExtract_FuzzyThresholdOption(t *testing.T) {
	e := NewExtractor(WithFuzzyThreshold(0.95))

	matches, err := e.Extract("deployed kubernete clusters", []string{"kubernetes"})

	require.NoError(t, err)
	assert.Empty(t, matches, "0.9 similarity is below a 0.95 threshold")
}

func TestExtract_ConfidenceOrdering(t *testing.T) {
	e := NewExtractor()

	matches, err := e.Extract("python postgresql kubernete", []string{"python", "sql", "kubernetes"})

	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, 1.0, matches["python"])
	assert.Equal(t, SubstringConfidence, matches["sql"])
	assert.Less(t, matches["kubernetes"], FuzzyWeight)
	assert.Greater(t, matches["python"], matches["sql"])
	assert.Greater(t, matches["sql"], matches["kubernetes"])
}

func TestExtract_NilVocabulary(t *testing.T) {
	e := NewExtractor()

	_, err := e.Extract("python", nil)

	assert.ErrorIs(t, err, ErrNilVocabulary)
}

func TestExtract_EmptyVocabulary(t *testing.T) {
	e := NewExtractor()

	matches, err := e.Extract("python sql", []string{})

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestExtract_EmptyDocument(t *testing.T) {
	e := NewExtractor()

	matches, err := e.Extract("", []string{"python", "sql"})

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestExtract_DuplicateVocabularyEntries(t *testing.T) {
	e := NewExtractor()

	matches, err := e.Extract("python developer", []string{"Python", "PYTHON", "python"})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Python": 1.0}, matches)
}

func TestExtract_BlankVocabularyEntriesSkipped(t *testing.T) {
	e := NewExtractor()

	matches, err := e.Extract("python developer", []string{"", "  ", "python"})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"python": 1.0}, matches)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "kubernetes", "kubernetes", 1.0},
		{"one deletion", "kubernetes", "kubernete", 0.9},
		{"one empty", "", "kubernetes", 0.0},
		{"other empty", "kubernetes", "", 0.0},
		{"both empty", "", "", 1.0},
		{"disjoint", "go", "sql", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-12)
		})
	}
}

func TestFuzzyThresholdDefaults(t *testing.T) {
	assert.Equal(t, DefaultFuzzyThreshold, NewExtractor().FuzzyThreshold())
	// Out-of-range values fall back to the default.
	assert.Equal(t, DefaultFuzzyThreshold, NewExtractor(WithFuzzyThreshold(0)).FuzzyThreshold())
	assert.Equal(t, DefaultFuzzyThreshold, NewExtractor(WithFuzzyThreshold(1.5)).FuzzyThreshold())
	assert.Equal(t, 0.5, NewExtractor(WithFuzzyThreshold(0.5)).FuzzyThreshold())
}
