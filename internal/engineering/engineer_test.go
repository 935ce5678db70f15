package engineering

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/agent/agenttest"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/types"
)

func testPlan() *types.DevelopmentPlan {
	return &types.DevelopmentPlan{
		Components: []types.ComponentPlan{
			{Name: "store", Description: "persistence layer"},
			{Name: "api", Description: "HTTP layer", Dependencies: []string{"store"}},
		},
		FileStructure: []types.PlannedFile{
			{Path: "internal/store/store.go", Purpose: "persistence"},
			{Path: "internal/api/api.go", Purpose: "handlers"},
		},
		ImplementationOrder: []string{"store", "api"},
	}
}

// scriptedEngineer answers implement/optimize/test prompts in rotation, the
// order Implement issues them per component.
func scriptedEngineer() *agenttest.MockLLMClient {
	call := 0
	return &agenttest.MockLLMClient{
		GenerateContentFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			call++
			switch call % 3 {
			case 1:
				return "```go\npackage x\n\nfunc Impl() {}\n```", nil
			case 2:
				return "package x\n\nfunc Optimized() {}", nil
			default:
				return "package x\n\nfunc TestImpl(t *testing.T) {}", nil
			}
		},
	}
}

func TestImplementComponentUnwrapsFence(t *testing.T) {
	e := NewEngineer(agenttest.StaticJSON("```go\npackage store\n```"))

	code, err := e.ImplementComponent(context.Background(), &types.ComponentPlan{Name: "store", Description: "x"}, "")
	require.NoError(t, err)
	assert.Equal(t, "package store", code)
}

func TestOptimizeCodeKeepsOriginalOnEmptyRewrite(t *testing.T) {
	e := NewEngineer(agenttest.StaticJSON("   \n"))

	code, err := e.OptimizeCode(context.Background(), "package x", "desc")
	require.NoError(t, err)
	assert.Equal(t, "package x", code)
}

func TestGenerateTestsEmptyCode(t *testing.T) {
	e := NewEngineer(agenttest.StaticJSON("tests"))

	_, err := e.GenerateTests(context.Background(), "", "desc")
	require.Error(t, err)

	var vErr *agent.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestImplementFollowsOrder(t *testing.T) {
	var prompts []string
	client := &agenttest.MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			prompts = append(prompts, prompt)
			return "package x", nil
		},
	}
	e := NewEngineer(client)

	bundle, err := e.Implement(context.Background(), testPlan(), "")
	require.NoError(t, err)
	require.Len(t, bundle.Components, 2)
	assert.Equal(t, "store", bundle.Components[0].Name)
	assert.Equal(t, "internal/store/store.go", bundle.Components[0].Path)
	assert.Equal(t, "api", bundle.Components[1].Name)

	// The second component's implementation prompt sees the first one's code.
	require.GreaterOrEqual(t, len(prompts), 4)
	assert.True(t, strings.Contains(prompts[3], "--- store ---"))
}

func TestImplementUnknownComponentInOrder(t *testing.T) {
	plan := testPlan()
	plan.ImplementationOrder = []string{"store", "ghost"}
	e := NewEngineer(scriptedEngineer())

	_, err := e.Implement(context.Background(), plan, "")
	require.Error(t, err)

	var vErr *agent.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Message, "ghost")
}

func TestImplementPersistsFiles(t *testing.T) {
	// The planned file structure nests sources in subdirectories that do not
	// exist yet; persist must create them instead of failing the run.
	dir := t.TempDir()

	e := NewEngineer(scriptedEngineer())
	_, err := e.Implement(context.Background(), testPlan(), dir)
	require.NoError(t, err)

	code, err := os.ReadFile(filepath.Join(dir, "internal", "store", "store.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "func Optimized")

	tests, err := os.ReadFile(filepath.Join(dir, "internal", "store", "store_test.go"))
	require.NoError(t, err)
	assert.Contains(t, string(tests), "func TestImpl")

	api, err := os.ReadFile(filepath.Join(dir, "internal", "api", "api.go"))
	require.NoError(t, err)
	assert.NotEmpty(t, api)
}
