package matching

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Match(t *testing.T) {
	engine := NewEngine()
	vocabulary := []string{"Python", "SQL", "Azure", "Docker", "Kubernetes"}

	result, err := engine.Match(
		"python sql azure docker",
		"python azure kubernetes",
		vocabulary,
	)
	require.NoError(t, err)

	// Resume matches four vocabulary skills, the job three.
	assert.Len(t, result.ResumeSkills, 4)
	assert.Len(t, result.JobSkills, 3)
	assert.Equal(t, []string{"Azure", "Python"}, result.MatchingSkills)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingSkills)
	assert.InDelta(t, 2.0/3.0, result.SkillRatio, 1e-12)

	// Similarity stays in bounds and the percentage follows the 0.6/0.4 blend.
	assert.GreaterOrEqual(t, result.Similarity, 0.0)
	assert.LessOrEqual(t, result.Similarity, 1.0)
	assert.Equal(t, Combine(result.Similarity, 2, 3), result.Percentage)
}

func TestEngine_Match_RawTextIsNormalized(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Match(
		"Senior PYTHON developer. Worked with Azure & Docker!",
		"We need Python and Azure experience.",
		[]string{"Python", "Azure", "Docker"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Azure", "Python"}, result.MatchingSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, 1.0, result.SkillRatio)
}

func TestEngine_Match_EmptyResume(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Match("", "python azure", []string{"Python", "Azure"})
	require.NoError(t, err)

	assert.Zero(t, result.Similarity)
	assert.Empty(t, result.ResumeSkills)
	assert.Empty(t, result.MatchingSkills)
	assert.Equal(t, []string{"Azure", "Python"}, result.MissingSkills)
	assert.Zero(t, result.SkillRatio)
	assert.Equal(t, 0.0, result.Percentage)
}

func TestEngine_Match_NilVocabulary(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Match("python", "python", nil)

	assert.ErrorIs(t, err, skills.ErrNilVocabulary)
}

func TestEngine_Match_EmptyVocabulary(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Match("python sql", "python azure", []string{})
	require.NoError(t, err)

	assert.Empty(t, result.MatchingSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Zero(t, result.SkillRatio)
	// Percentage is driven purely by text similarity.
	assert.Equal(t, Combine(result.Similarity, 0, 0), result.Percentage)
}

func TestEngine_FuzzyThresholdOption(t *testing.T) {
	strict := NewEngine(skills.WithFuzzyThreshold(0.95))

	result, err := strict.Match("deployed kubernete clusters", "kubernetes", []string{"Kubernetes"})
	require.NoError(t, err)

	// 0.9 token similarity is below the stricter threshold.
	assert.Empty(t, result.ResumeSkills)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingSkills)
}
