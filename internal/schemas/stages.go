package schemas

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed *.schema.json
var schemaFS embed.FS

// stageSchemas maps artifact stage names to their embedded schema file.
var stageSchemas = map[string]string{
	"product_specs":    "product_spec.schema.json",
	"development_plan": "development_plan.schema.json",
	"review_report":    "review_report.schema.json",
	"test_report":      "test_report.schema.json",
}

// ForStage returns the schema content for a stage artifact. A file named
// <stage>.schema.json in schemaDir takes precedence over the embedded copy;
// an empty schemaDir skips the lookup. The second return is false when no
// schema covers the stage.
func ForStage(stage, schemaDir string) (string, bool) {
	if schemaDir != "" {
		override := filepath.Join(schemaDir, stage+".schema.json")
		if content, err := os.ReadFile(override); err == nil {
			return string(content), true
		}
	}

	file, ok := stageSchemas[stage]
	if !ok {
		return "", false
	}
	content, err := schemaFS.ReadFile(file)
	if err != nil {
		return "", false
	}
	return string(content), true
}

// ValidateStage validates a stage artifact's JSON content against its schema.
// Stages without a schema pass.
func ValidateStage(stage, schemaDir, jsonContent string) error {
	schema, ok := ForStage(stage, schemaDir)
	if !ok {
		return nil
	}
	return ValidateString(schema, jsonContent)
}
