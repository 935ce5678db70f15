package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageConstantsAreUnique(t *testing.T) {
	stages := []string{
		StageProductSpecs, StageBrainstorm, StageArchitecture, StagePlan,
		StageCode, StageReview, StageTestReport, StageMonitoring,
		StageRefactor, StageStatus, StageDocumentation,
		StageSpecMarkdown, StageArchMarkdown, StageDocsMarkdown, StageStatusMarkdown,
	}

	seen := make(map[string]bool, len(stages))
	for _, stage := range stages {
		require.NotEmpty(t, stage)
		assert.False(t, seen[stage], "duplicate stage constant %q", stage)
		seen[stage] = true
	}
}

func TestConnectInvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-database-url")
	assert.Error(t, err)
}
