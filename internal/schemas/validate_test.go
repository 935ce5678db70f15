package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"age": {"type": "integer", "minimum": 0}
	}
}`

func TestValidateStringValid(t *testing.T) {
	err := ValidateString(personSchema, `{"name": "Dana", "age": 34}`)
	assert.NoError(t, err)
}

func TestValidateStringInvalid(t *testing.T) {
	err := ValidateString(personSchema, `{"age": -1}`)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Errors, 2)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestValidateStringBadSchema(t *testing.T) {
	err := ValidateString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var lErr *SchemaLoadError
	assert.ErrorAs(t, err, &lErr)
}

func TestValidateFileMissingSchema(t *testing.T) {
	err := ValidateFile(filepath.Join(t.TempDir(), "missing.schema.json"), "also-missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestForStageEmbedded(t *testing.T) {
	for _, stage := range []string{"product_specs", "development_plan", "review_report", "test_report"} {
		schema, ok := ForStage(stage, "")
		require.True(t, ok, "stage %s should have an embedded schema", stage)
		assert.NotEmpty(t, schema)
	}
}

func TestForStageUnknown(t *testing.T) {
	_, ok := ForStage("brainstorm", "")
	assert.False(t, ok)
}

func TestForStageDirOverride(t *testing.T) {
	dir := t.TempDir()
	override := `{"type": "object"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "product_specs.schema.json"), []byte(override), 0644))

	schema, ok := ForStage("product_specs", dir)
	require.True(t, ok)
	assert.Equal(t, override, schema)
}

func TestValidateStage(t *testing.T) {
	valid := `{
		"title": "TaskFlow",
		"description": "task tracking",
		"audience": [{"name": "Dana", "role": "Lead", "goals": ["ship"]}],
		"features": [{"name": "Board", "description": "kanban", "priority": "high", "acceptance_criteria": ["drag"]}]
	}`
	assert.NoError(t, ValidateStage("product_specs", "", valid))

	invalid := `{"title": "TaskFlow"}`
	err := ValidateStage("product_specs", "", invalid)
	require.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestValidateStageWithoutSchemaPasses(t *testing.T) {
	assert.NoError(t, ValidateStage("brainstorm", "", `{"anything": true}`))
}
