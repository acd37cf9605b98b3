// Package matching combines text similarity and skill overlap into the final
// match percentage reported to users.
package matching

import (
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/similarity"
)

// Weights for the final percentage. Fixed policy, not user-configurable:
// changing either silently changes every reported score.
const (
	SimilarityWeight = 0.6
	SkillWeight      = 0.4
)

// Combine merges a cosine similarity score with a skill overlap ratio into a
// percentage in [0, 100], rounded to two decimal places. A zero
// totalSkills resolves the skill ratio to 0 rather than dividing by zero.
func Combine(sim float64, matchingSkills, totalSkills int) float64 {
	ratio := SkillRatio(matchingSkills, totalSkills)
	pct := (sim*SimilarityWeight + ratio*SkillWeight) * 100
	return math.Round(pct*100) / 100
}

// SkillRatio returns matchingSkills/totalSkills, or 0 when totalSkills is 0.
func SkillRatio(matchingSkills, totalSkills int) float64 {
	if totalSkills <= 0 {
		return 0.0
	}
	return float64(matchingSkills) / float64(totalSkills)
}

// MatchPercentage scores two normalized texts given pre-computed skill
// counts. It is the one-call form of Cosine followed by Combine.
func MatchPercentage(textA, textB string, matchingSkills, totalSkills int) float64 {
	return Combine(similarity.Cosine(textA, textB), matchingSkills, totalSkills)
}

// SkillOverlap splits the job's required skills into those present in the
// resume's extracted skills and those missing, compared case-insensitively.
// Both lists preserve the job-side casing and order; the missing list is what
// users see, so its contents must match the required names exactly.
func SkillOverlap(resumeSkills, jobSkills []string) (matching, missing []string) {
	present := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		present[strings.ToLower(s)] = true
	}

	matching = make([]string, 0, len(jobSkills))
	missing = make([]string, 0, len(jobSkills))
	seen := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		lower := strings.ToLower(s)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		if present[lower] {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matching, missing
}
