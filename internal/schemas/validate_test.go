package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchemaPath(t *testing.T) {
	// Tests run two levels below the repository root.
	path := ResolveSchemaPath(CandidateProfileSchema)
	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))

	assert.Empty(t, ResolveSchemaPath("schemas/no_such.schema.json"))
}

func TestValidateJSON_ValidCandidate(t *testing.T) {
	schemaPath := ResolveSchemaPath(CandidateProfileSchema)
	require.NotEmpty(t, schemaPath)

	jsonPath := filepath.Join(t.TempDir(), "candidate.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"contact": {"name": "Ada"},
		"skills": [{"name": "Go"}]
	}`), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingSkills(t *testing.T) {
	schemaPath := ResolveSchemaPath(CandidateProfileSchema)
	require.NotEmpty(t, schemaPath)

	jsonPath := filepath.Join(t.TempDir(), "candidate.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"contact": {"name": "Ada"}}`), 0o644))

	err := ValidateJSON(schemaPath, jsonPath)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "skills")
}

func TestValidateJSON_RequirementSchema(t *testing.T) {
	schemaPath := ResolveSchemaPath(RequirementProfileSchema)
	require.NotEmpty(t, schemaPath)

	jsonPath := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"title": "Backend Engineer",
		"required_skills": [{"name": "Go", "importance": 4}]
	}`), 0o644))
	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"required_skills": []}`), 0o644))
	assert.Error(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	schemaPath := ResolveSchemaPath(CandidateProfileSchema)
	require.NotEmpty(t, schemaPath)

	assert.Error(t, ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "nope.json")))
	assert.Error(t, ValidateJSON(filepath.Join(t.TempDir(), "nope.schema.json"), schemaPath))
}

func TestValidateJSONString(t *testing.T) {
	schema := `{
		"type": "object",
		"required": ["title"],
		"properties": {"title": {"type": "string", "minLength": 1}}
	}`

	assert.NoError(t, ValidateJSONString(schema, `{"title": "Engineer"}`))

	err := ValidateJSONString(schema, `{"title": ""}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	var loadErr *SchemaLoadError
	err = ValidateJSONString(`{not json`, `{}`)
	require.ErrorAs(t, err, &loadErr)
}
