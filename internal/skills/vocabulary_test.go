package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVocabulary_Valid(t *testing.T) {
	skills, err := ParseVocabulary([]byte(`{"skills": ["Python", "golang", "Kubernetes"]}`))

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Go", "Kubernetes"}, skills)
}

func TestParseVocabulary_DedupesCaseInsensitively(t *testing.T) {
	skills, err := ParseVocabulary([]byte(`{"skills": ["Python", "PYTHON", "python", "SQL"]}`))

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL"}, skills)
}

func TestParseVocabulary_AliasesCollapse(t *testing.T) {
	// "golang" and "k8s" canonicalize to names that collide with later entries.
	skills, err := ParseVocabulary([]byte(`{"skills": ["golang", "Go", "k8s", "Kubernetes"]}`))

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes"}, skills)
}

func TestParseVocabulary_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"skills not an array", `{"skills": "python"}`},
		{"non-string entry", `{"skills": ["python", 42]}`},
		{"empty entry", `{"skills": [""]}`},
		{"missing skills key", `{}`},
		{"unknown key", `{"skills": [], "extra": true}`},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVocabulary([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": ["Python", "Azure"]}`), 0o644))

	skills, err := LoadVocabulary(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Azure"}, skills)
}

func TestLoadVocabulary_MissingFile(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"golang", "Go"},
		{"K8S", "Kubernetes"},
		{"nodejs", "Node.js"},
		{"  Python  ", "Python"},
		{"Terraform", "Terraform"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonical(tt.in), "Canonical(%q)", tt.in)
	}
}
