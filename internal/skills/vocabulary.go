package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed vocabulary.schema.json
var vocabularySchema string

// vocabularyFile is the on-disk shape of a skill vocabulary.
type vocabularyFile struct {
	Skills []string `json:"skills"`
}

// LoadVocabulary reads a JSON skill vocabulary file, validates it against the
// embedded schema, canonicalizes variant spellings, and deduplicates entries
// case-insensitively while preserving order.
func LoadVocabulary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary validates and parses raw vocabulary JSON.
func ParseVocabulary(data []byte) ([]string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(vocabularySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate vocabulary: %w", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("invalid vocabulary:")
		for _, desc := range result.Errors() {
			sb.WriteString("\n  ")
			sb.WriteString(desc.String())
		}
		return nil, fmt.Errorf("%s", sb.String())
	}

	var file vocabularyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	return DedupeVocabulary(file.Skills), nil
}

// DedupeVocabulary canonicalizes skill names and drops case-insensitive
// duplicates, keeping the first occurrence.
func DedupeVocabulary(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		canonical := Canonical(name)
		if canonical == "" {
			continue
		}
		lower := strings.ToLower(canonical)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, canonical)
	}
	return out
}
