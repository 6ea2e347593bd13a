package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile_ValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"weights": {"skill_weight": 0.4, "experience_weight": 0.2, "education_weight": 0.15, "text_similarity_weight": 0.15, "semantic_similarity_weight": 0.1},
		"fit_thresholds": {"excellent": 85, "good": 70, "fair": 50},
		"education_partial_credit": 50
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	assert.NoError(t, ValidateFile(ConfigSchema, path))
}

func TestValidateFile_RejectsUnknownConfigKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bogus_key": 1}`), 0644))

	err := ValidateFile(ConfigSchema, path)
	require.Error(t, err)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateFile_RejectsNegativeWeight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"weights": {"skill_weight": -0.5}}`), 0644))

	err := ValidateFile(ConfigSchema, path)
	require.Error(t, err)
}

func TestValidateFile_ValidTaxonomy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	content := `{
		"categories": [{"name": "languages", "skills": ["Python", "Go"]}],
		"synonyms": {"Go": ["Golang"]},
		"certifications": ["PMP"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	assert.NoError(t, ValidateFile(TaxonomySchema, path))
}

func TestValidateFile_TaxonomyRequiresCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"synonyms": {}}`), 0644))

	err := ValidateFile(TaxonomySchema, path)
	require.Error(t, err)
}

func TestValidateFile_UnknownSchema(t *testing.T) {
	err := ValidateFile("nope.schema.json", "whatever.json")
	require.Error(t, err)

	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}

func TestValidateFile_MissingDocument(t *testing.T) {
	err := ValidateFile(ConfigSchema, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateBytes_MalformedJSON(t *testing.T) {
	schema, err := schemaFiles.ReadFile(ConfigSchema)
	require.NoError(t, err)

	err = ValidateBytes(ConfigSchema, schema, []byte("{not json"))
	require.Error(t, err)
}

func TestValidationError_ListsFields(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "weights.skill_weight", Message: "must be >= 0"},
	}}

	assert.Contains(t, ve.Error(), "weights.skill_weight")
	assert.Contains(t, ve.Error(), "must be >= 0")
}
