package matching

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/textnorm"
)

// Result is the full outcome of scoring a resume against a job description.
// It is computed fresh on every call; persistence is the caller's concern.
type Result struct {
	Percentage     float64            `json:"percentage"`
	Similarity     float64            `json:"similarity"`
	SkillRatio     float64            `json:"skill_ratio"`
	MatchingSkills []string           `json:"matching_skills"`
	MissingSkills  []string           `json:"missing_skills"`
	ResumeSkills   map[string]float64 `json:"resume_skills"`
	JobSkills      map[string]float64 `json:"job_skills"`
}

// Engine runs the complete scoring flow: normalize both texts, extract
// skills from each against a shared vocabulary, compute TF-IDF cosine
// similarity, and combine. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	extractor *skills.Extractor
}

// NewEngine creates an Engine. Extractor options (such as the fuzzy
// threshold) are passed through.
func NewEngine(opts ...skills.Option) *Engine {
	return &Engine{extractor: skills.NewExtractor(opts...)}
}

// Match scores resumeText against jobText using vocabulary as the set of
// candidate skills. Raw text is accepted; normalization happens here.
func (e *Engine) Match(resumeText, jobText string, vocabulary []string) (*Result, error) {
	resumeNorm := textnorm.NormalizeText(resumeText)
	jobNorm := textnorm.NormalizeText(jobText)

	resumeSkills, err := e.extractor.Extract(resumeNorm, vocabulary)
	if err != nil {
		return nil, err
	}
	jobSkills, err := e.extractor.Extract(jobNorm, vocabulary)
	if err != nil {
		return nil, err
	}

	matchingNames, missingNames := SkillOverlap(names(resumeSkills), names(jobSkills))
	sim := similarity.Cosine(resumeNorm, jobNorm)

	return &Result{
		Percentage:     Combine(sim, len(matchingNames), len(jobSkills)),
		Similarity:     sim,
		SkillRatio:     SkillRatio(len(matchingNames), len(jobSkills)),
		MatchingSkills: matchingNames,
		MissingSkills:  missingNames,
		ResumeSkills:   resumeSkills,
		JobSkills:      jobSkills,
	}, nil
}

// names returns the skill names of an extraction result, sorted so that
// downstream matching/missing lists are deterministic.
func names(extracted map[string]float64) []string {
	out := make([]string, 0, len(extracted))
	for name := range extracted {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
