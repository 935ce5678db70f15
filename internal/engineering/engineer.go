// Package engineering implements the Engineer agent: it turns a development
// plan into implementation code and test scaffolding, component by component.
package engineering

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/artifact"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "engineer.json"

// Engineer is the Engineer agent
type Engineer struct {
	base  *agent.Base
	store artifact.Store
}

// NewEngineer creates an Engineer around an existing LLM client.
func NewEngineer(client llm.Client) *Engineer {
	return &Engineer{
		base:  agent.New("engineer", client),
		store: artifact.NewFSStore(),
	}
}

// ImplementComponent generates the implementation code for one planned
// component. existingCode carries already-generated sibling components so the
// model can reference their interfaces; it may be empty for the first one.
func (e *Engineer) ImplementComponent(ctx context.Context, component *types.ComponentPlan, existingCode string) (string, error) {
	componentJSON, err := agent.MarshalForPrompt(component)
	if err != nil {
		return "", e.base.Fail("component_code", err)
	}
	if existingCode == "" {
		existingCode = "(none yet)"
	}

	prompt, err := prompts.Render(promptFile, "component-code", map[string]string{
		"Component":    componentJSON,
		"ExistingCode": existingCode,
	})
	if err != nil {
		return "", e.base.Fail("component_code", err)
	}

	code, err := e.base.Completion(ctx, prompt, prompts.MustGet(promptFile, "system-implement"), llm.TierAdvanced)
	if err != nil {
		return "", e.base.Fail("component_code", err)
	}
	return llm.CleanJSONBlock(code), nil
}

// GenerateTests produces test scaffolding for a component's implementation.
func (e *Engineer) GenerateTests(ctx context.Context, code, requirements string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", e.base.Fail("component_tests", &agent.ValidationError{Message: "component code input is empty"})
	}

	prompt, err := prompts.Render(promptFile, "component-tests", map[string]string{
		"Code":         code,
		"Requirements": requirements,
	})
	if err != nil {
		return "", e.base.Fail("component_tests", err)
	}

	tests, err := e.base.Completion(ctx, prompt, prompts.MustGet(promptFile, "system-tests"), llm.TierStandard)
	if err != nil {
		return "", e.base.Fail("component_tests", err)
	}
	return llm.CleanJSONBlock(tests), nil
}

// OptimizeCode runs the optimization pass over an implementation. The pass is
// conservative: when the model returns an empty rewrite, the original code is
// kept unchanged.
func (e *Engineer) OptimizeCode(ctx context.Context, code, requirements string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", e.base.Fail("optimize_code", &agent.ValidationError{Message: "code input is empty"})
	}

	prompt, err := prompts.Render(promptFile, "optimize-code", map[string]string{
		"Code":         code,
		"Requirements": requirements,
	})
	if err != nil {
		return "", e.base.Fail("optimize_code", err)
	}

	optimized, err := e.base.Completion(ctx, prompt, prompts.MustGet(promptFile, "system-optimize"), llm.TierAdvanced)
	if err != nil {
		return "", e.base.Fail("optimize_code", err)
	}

	optimized = llm.CleanJSONBlock(optimized)
	if strings.TrimSpace(optimized) == "" {
		return code, nil
	}
	return optimized, nil
}

// Implement runs the full engineering flow over the plan's implementation
// order: code, optimization, then tests per component. When outputDir is
// non-empty each component file and its test file are persisted there.
func (e *Engineer) Implement(ctx context.Context, plan *types.DevelopmentPlan, outputDir string) (*types.CodeBundle, error) {
	if plan == nil || len(plan.Components) == 0 {
		return nil, e.base.Fail("implement", &agent.ValidationError{Message: "development plan has no components"})
	}

	byName := make(map[string]*types.ComponentPlan, len(plan.Components))
	for i := range plan.Components {
		byName[plan.Components[i].Name] = &plan.Components[i]
	}

	order := plan.ImplementationOrder
	if len(order) == 0 {
		order = make([]string, 0, len(plan.Components))
		for i := range plan.Components {
			order = append(order, plan.Components[i].Name)
		}
	}

	bundle := &types.CodeBundle{OutputDir: outputDir}
	var existing strings.Builder

	for _, name := range order {
		component, ok := byName[name]
		if !ok {
			return nil, e.base.Fail("implement", &agent.ValidationError{
				Field:   "implementation_order",
				Message: "unknown component " + name,
			})
		}

		code, err := e.ImplementComponent(ctx, component, existing.String())
		if err != nil {
			return nil, err
		}

		code, err = e.OptimizeCode(ctx, code, component.Description)
		if err != nil {
			return nil, err
		}

		tests, err := e.GenerateTests(ctx, code, component.Description)
		if err != nil {
			return nil, err
		}

		generated := types.GeneratedComponent{
			Name:     component.Name,
			Path:     componentPath(plan, component.Name),
			Code:     code,
			TestCode: tests,
		}
		bundle.Components = append(bundle.Components, generated)

		existing.WriteString("\n// --- " + component.Name + " ---\n")
		existing.WriteString(code)

		if outputDir != "" {
			if err := e.persist(outputDir, &generated); err != nil {
				return nil, e.base.Fail("implement", err)
			}
		}
	}

	return bundle, nil
}

// persist writes a component and its tests under outputDir. Planned file
// structures nest sources in subdirectories, so intermediate directories are
// created here; stage artifacts keep the strict existing-parent contract.
func (e *Engineer) persist(outputDir string, component *types.GeneratedComponent) error {
	path := filepath.Join(outputDir, component.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &artifact.IOError{Op: "mkdir", Path: path, Cause: err}
	}
	if err := e.store.Save(path, artifact.NewText(component.Path, component.Code)); err != nil {
		return err
	}
	if component.TestCode == "" {
		return nil
	}
	testPath := testFilePath(path)
	return e.store.Save(testPath, artifact.NewText(filepath.Base(testPath), component.TestCode))
}

// componentPath resolves the planned file for a component, falling back to a
// flat <name>.go layout when the plan's file structure does not mention it.
func componentPath(plan *types.DevelopmentPlan, name string) string {
	for _, file := range plan.FileStructure {
		base := filepath.Base(file.Path)
		if strings.TrimSuffix(base, filepath.Ext(base)) == name {
			return file.Path
		}
	}
	return name + ".go"
}

func testFilePath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_test" + ext
}
