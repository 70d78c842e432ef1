package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSONString_Valid(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": { "name": { "type": "string" } },
		"required": ["name"]
	}`

	err := ValidateJSONString(schema, `{"name": "ok"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": { "name": { "type": "string" } },
		"required": ["name"]
	}`

	err := ValidateJSONString(schema, `{"name": 42}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{ not json`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateProfileFile_ValidProfile(t *testing.T) {
	path := writeTempJSON(t, `{
		"skillGap": {
			"priorityA": [
				{ "skill": "Python", "currentLevel": 2, "targetLevel": 4 }
			]
		},
		"careerFit": {
			"clusters": [
				{ "title": "Data Science", "fit": 87, "domains": ["Analytics"] }
			]
		},
		"employability": { "improvementAreas": ["portfolio projects"] },
		"riasec": { "code": "IRC" },
		"stream": "Science"
	}`)

	assert.NoError(t, ValidateProfileFile(path))
}

func TestValidateProfileFile_MissingBothSections(t *testing.T) {
	path := writeTempJSON(t, `{"stream": "Science"}`)

	err := ValidateProfileFile(path)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateProfileFile_BlankSkillRejected(t *testing.T) {
	path := writeTempJSON(t, `{
		"skillGap": { "priorityA": [ { "skill": "" } ] }
	}`)

	err := ValidateProfileFile(path)
	require.Error(t, err)
}

func TestValidateProfileFile_FileNotFound(t *testing.T) {
	err := ValidateProfileFile("/nonexistent/profile.json")
	assert.Error(t, err)
}

func TestResolveSchemaPath_FindsProfileSchema(t *testing.T) {
	path := ResolveSchemaPath(ProfileSchemaFile)
	require.NotEmpty(t, path)

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
