// Package similarity computes TF-IDF cosine similarity between a pair of
// normalized documents.
//
// The IDF here is a deliberate two-document simplification, not a general
// corpus IDF: for each term the document count c is 1 or 2, and
// IDF(t) = ln(2 / (1 + c)). Shared terms therefore dominate the score and the
// formula must not be swapped for a corpus-style variant, or scores drift.
package similarity

import (
	"math"
	"strings"
)

// Vectorize builds TF-IDF vectors for a pair of tokenized documents over
// their shared union vocabulary. Terms absent from a document get weight 0.
// The returned maps are freshly allocated per call; nothing is shared.
func Vectorize(docA, docB []string) (vecA, vecB map[string]float64, vocab map[string]struct{}) {
	tfA := termFrequencies(docA)
	tfB := termFrequencies(docB)

	vocab = make(map[string]struct{}, len(tfA)+len(tfB))
	for t := range tfA {
		vocab[t] = struct{}{}
	}
	for t := range tfB {
		vocab[t] = struct{}{}
	}

	vecA = make(map[string]float64, len(vocab))
	vecB = make(map[string]float64, len(vocab))
	for t := range vocab {
		c := 0
		if _, ok := tfA[t]; ok {
			c++
		}
		if _, ok := tfB[t]; ok {
			c++
		}
		idf := math.Log(2.0 / (1.0 + float64(c)))
		vecA[t] = tfA[t] * idf
		vecB[t] = tfB[t] * idf
	}
	return vecA, vecB, vocab
}

// Cosine returns the cosine similarity of two normalized texts in [0, 1].
// Inputs are expected to already be normalized; tokenization here is plain
// whitespace splitting with no further cleaning. Either text empty yields 0.
func Cosine(textA, textB string) float64 {
	vecA, vecB, vocab := Vectorize(tokenize(textA), tokenize(textB))

	var dot, normA, normB float64
	for t := range vocab {
		a, b := vecA[t], vecB[t]
		dot += a * b
		normA += a * a
		normB += b * b
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Clamp floating-point overshoot.
	if sim < 0 {
		return 0.0
	}
	if sim > 1 {
		return 1.0
	}
	return sim
}

// termFrequencies returns TF(t) = count(t)/len(doc) for each term.
// Counting is ASCII case-insensitive. An empty document yields an empty map.
func termFrequencies(doc []string) map[string]float64 {
	if len(doc) == 0 {
		return map[string]float64{}
	}

	counts := make(map[string]float64, len(doc))
	for _, t := range doc {
		counts[strings.ToLower(t)]++
	}
	n := float64(len(doc))
	for t := range counts {
		counts[t] /= n
	}
	return counts
}

func tokenize(text string) []string {
	return strings.Fields(text)
}
