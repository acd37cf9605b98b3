// Package textnorm cleans and tokenizes raw document text into the canonical
// token sequence used by skill extraction and similarity scoring.
package textnorm

import "strings"

// Normalize converts raw text into an ordered sequence of lowercase
// alphanumeric tokens. Every character outside [a-z0-9] and whitespace is
// replaced with a space, whitespace runs are collapsed, and stop words and
// single-character tokens are dropped. Empty or whitespace-only input yields
// a nil slice.
func Normalize(text string) []string {
	if text == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			// ASCII-only casing keeps results identical across locales.
			return r + ('a' - 'A')
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\f', r == '\v':
			return r
		default:
			return ' '
		}
	}, text)

	var tokens []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 1 || StopWords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Join reconstructs the normalized text from a token sequence. The result is
// what the skill extractor searches for substring and word-boundary matches.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}

// NormalizeText is a convenience for callers that want the normalized text as
// a single space-joined string.
func NormalizeText(text string) string {
	return Join(Normalize(text))
}
