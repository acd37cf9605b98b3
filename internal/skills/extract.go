// Package skills extracts confidence-scored skill matches from normalized
// document text against a caller-supplied skill vocabulary.
package skills

import (
	"errors"
	"runtime"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/sync/errgroup"
)

// Confidence policy constants. Exact word-boundary matches always outrank
// substring matches, which always outrank fuzzy matches.
const (
	ExactConfidence     = 1.0
	SubstringConfidence = 0.7
	FuzzyWeight         = 0.6

	DefaultFuzzyThreshold = 0.8
)

// ErrNilVocabulary is returned when Extract is called without a vocabulary.
// An empty (non-nil) vocabulary is valid degenerate input and yields an
// empty result instead.
var ErrNilVocabulary = errors.New("skills: vocabulary is nil")

// Extractor matches vocabulary skills against normalized text.
// It is stateless and safe for concurrent use.
type Extractor struct {
	fuzzyThreshold float64
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFuzzyThreshold overrides the minimum normalized edit-distance
// similarity required for a fuzzy match. Values outside (0, 1] fall back to
// the default.
func WithFuzzyThreshold(threshold float64) Option {
	return func(e *Extractor) {
		if threshold > 0 && threshold <= 1 {
			e.fuzzyThreshold = threshold
		}
	}
}

// NewExtractor creates an Extractor with the default fuzzy threshold.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{fuzzyThreshold: DefaultFuzzyThreshold}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FuzzyThreshold reports the configured fuzzy matching threshold.
func (e *Extractor) FuzzyThreshold() float64 {
	return e.fuzzyThreshold
}

// Extract returns a skill name -> confidence mapping for every vocabulary
// skill found in text. The text must already be normalized (see textnorm).
//
// Matching runs in two phases:
//   - exact: a skill bounded by whitespace or the text edges scores 1.0; a
//     raw substring occurrence scores 0.7.
//   - fuzzy: skills unmatched by phase one are compared token-by-token with
//     normalized Levenshtein similarity; the best similarity at or above the
//     threshold scores bestSimilarity * 0.6.
//
// Duplicate vocabulary entries collapse case-insensitively onto the first
// occurrence's casing. Empty text or an empty vocabulary yields an empty map.
func (e *Extractor) Extract(text string, vocabulary []string) (map[string]float64, error) {
	if vocabulary == nil {
		return nil, ErrNilVocabulary
	}

	matches := make(map[string]float64)
	seen := make(map[string]bool, len(vocabulary))
	padded := " " + text + " "

	// Skills that survive phase one unmatched, in vocabulary order.
	var pending []string

	for _, skill := range vocabulary {
		name := strings.TrimSpace(skill)
		if name == "" {
			continue
		}
		lower := strings.ToLower(name)
		if seen[lower] {
			continue
		}
		seen[lower] = true

		switch {
		case strings.Contains(padded, " "+lower+" "):
			matches[name] = ExactConfidence
		case strings.Contains(text, lower):
			matches[name] = SubstringConfidence
		default:
			pending = append(pending, name)
		}
	}

	if len(pending) == 0 {
		return matches, nil
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return matches, nil
	}

	// Fuzzy matching is the expensive part (vocabulary x tokens Levenshtein
	// grid), so it runs per-skill in parallel. Each goroutine writes only its
	// own slot.
	best := make([]float64, len(pending))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range pending {
		g.Go(func() error {
			best[i] = bestTokenSimilarity(strings.ToLower(name), tokens)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	for i, name := range pending {
		if best[i] >= e.fuzzyThreshold {
			matches[name] = best[i] * FuzzyWeight
		}
	}
	return matches, nil
}

// Similarity returns the normalized Levenshtein similarity of two strings:
// 1 - distance/max(len). Identical non-empty strings score 1.0; if exactly
// one string is empty the score is 0.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

func bestTokenSimilarity(skill string, tokens []string) float64 {
	best := 0.0
	for _, tok := range tokens {
		if sim := Similarity(skill, tok); sim > best {
			best = sim
		}
	}
	return best
}
