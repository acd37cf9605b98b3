package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine_Weighting(t *testing.T) {
	// similarity 0.5 and skill ratio 0.5 combine to exactly 50.0.
	assert.Equal(t, 50.0, Combine(0.5, 2, 4))
}

func TestCombine_ZeroTotalSkills(t *testing.T) {
	// No required skills: the percentage is similarity-only.
	assert.Equal(t, 30.0, Combine(0.5, 0, 0))
	assert.Equal(t, 0.0, Combine(0.0, 0, 0))
}

func TestCombine_RoundsToTwoDecimals(t *testing.T) {
	// (1/3)*0.6 + (1/3)*0.4 = 1/3 -> 33.33
	assert.Equal(t, 33.33, Combine(1.0/3.0, 1, 3))
}

func TestCombine_Bounds(t *testing.T) {
	assert.Equal(t, 100.0, Combine(1.0, 4, 4))
	assert.Equal(t, 0.0, Combine(0.0, 0, 4))
}

func TestSkillRatio(t *testing.T) {
	assert.Equal(t, 0.5, SkillRatio(2, 4))
	assert.Equal(t, 0.0, SkillRatio(0, 0))
	assert.Equal(t, 0.0, SkillRatio(3, 0))
	assert.Equal(t, 1.0, SkillRatio(3, 3))
}

func TestMatchPercentage_MatchesCombine(t *testing.T) {
	a := "python sql azure docker"
	b := "python azure kubernetes"

	// MatchPercentage is Cosine followed by Combine; identical texts with all
	// skills matched give a perfect score.
	assert.Equal(t, 100.0, MatchPercentage(a, a, 3, 3))
	assert.InDelta(t, 86.67, MatchPercentage(a, b, 2, 3), 0.001)
}

func TestSkillOverlap(t *testing.T) {
	matching, missing := SkillOverlap(
		[]string{"python", "azure", "docker"},
		[]string{"Python", "Azure", "Kubernetes"},
	)

	// Job-side casing and order are preserved.
	assert.Equal(t, []string{"Python", "Azure"}, matching)
	assert.Equal(t, []string{"Kubernetes"}, missing)
}

func TestSkillOverlap_EmptyInputs(t *testing.T) {
	matching, missing := SkillOverlap(nil, nil)
	assert.Empty(t, matching)
	assert.Empty(t, missing)

	matching, missing = SkillOverlap(nil, []string{"Go"})
	assert.Empty(t, matching)
	assert.Equal(t, []string{"Go"}, missing)

	matching, missing = SkillOverlap([]string{"Go"}, nil)
	assert.Empty(t, matching)
	assert.Empty(t, missing)
}

func TestSkillOverlap_DuplicateJobSkills(t *testing.T) {
	matching, missing := SkillOverlap(
		[]string{"go"},
		[]string{"Go", "GO", "Rust", "rust"},
	)

	assert.Equal(t, []string{"Go"}, matching)
	assert.Equal(t, []string{"Rust"}, missing)
}
