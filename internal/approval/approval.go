// Package approval implements the cross-role validation gate. Every gate runs
// a deterministic required-field check first and only consults the model when
// the structure passes; the model judgment is a non-deterministic supplement,
// never the sole line of defense.
package approval

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "approval.json"

// Stage identifies which gate-specific validation applies.
type Stage string

// Gate stages with dedicated validation prompts.
const (
	StageProductSpecs Stage = "product_specs"
	StageArchitecture Stage = "architecture"
)

var structValidate = validator.New()

// System issues validation judgments on inter-role artifacts.
type System struct {
	base *agent.Base
}

// NewSystem creates an approval system around an existing LLM client.
func NewSystem(client llm.Client) *System {
	return &System{base: agent.New("approval", client)}
}

// precheck runs the deterministic struct-tag validation on content. A failed
// precheck produces a rejection without spending a model call.
func precheck(content any) *types.ValidationResult {
	if content == nil {
		return &types.ValidationResult{
			IsApproved: false,
			Issues:     []string{"no content to validate"},
		}
	}
	if err := structValidate.Struct(content); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			issues := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				issues = append(issues, fe.Namespace()+" failed "+fe.Tag()+" check")
			}
			return &types.ValidationResult{IsApproved: false, Issues: issues}
		}
		// Non-struct content (maps, slices) has no tags to check; fall through
		// to the model judgment.
	}
	return nil
}

// ValidateProductSpecs validates a product specification for completeness and clarity.
func (s *System) ValidateProductSpecs(ctx context.Context, specs any) (*types.ValidationResult, error) {
	if rejected := precheck(specs); rejected != nil {
		return rejected, nil
	}

	specsJSON, err := agent.MarshalForPrompt(specs)
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.Render(promptFile, "validate-product-specs", map[string]string{
		"Specs": specsJSON,
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.base.CompletionJSON(ctx, prompt, "", llm.TierStandard)
	if err != nil {
		return nil, err
	}

	result, err := agent.DecodeJSON[types.ValidationResult](raw)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ValidateArchitecture validates an architecture artifact against product specifications.
func (s *System) ValidateArchitecture(ctx context.Context, architecture, specs any) (*types.ValidationResult, error) {
	if rejected := precheck(architecture); rejected != nil {
		return rejected, nil
	}

	archJSON, err := agent.MarshalForPrompt(architecture)
	if err != nil {
		return nil, err
	}
	specsJSON, err := agent.MarshalForPrompt(specs)
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.Render(promptFile, "validate-architecture", map[string]string{
		"Specs":        specsJSON,
		"Architecture": archJSON,
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.base.CompletionJSON(ctx, prompt, "", llm.TierStandard)
	if err != nil {
		return nil, err
	}

	result, err := agent.DecodeJSON[types.ValidationResult](raw)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CrossValidateWithRole reviews content from another role's perspective.
func (s *System) CrossValidateWithRole(ctx context.Context, content any, role string, roleContext any) (*types.RoleFeedback, error) {
	contentJSON, err := agent.MarshalForPrompt(content)
	if err != nil {
		return nil, err
	}

	contextBlock := "\n"
	if roleContext != nil {
		contextJSON, err := agent.MarshalForPrompt(roleContext)
		if err != nil {
			return nil, err
		}
		contextBlock = "\nAdditional Context:\n" + contextJSON + "\n"
	}

	prompt, err := prompts.Render(promptFile, "cross-validate-role", map[string]string{
		"Role":    role,
		"Content": contentJSON,
		"Context": contextBlock,
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.base.CompletionJSON(ctx, prompt, "", llm.TierStandard)
	if err != nil {
		return nil, err
	}

	feedback, err := agent.DecodeJSON[types.RoleFeedback](raw)
	if err != nil {
		return nil, err
	}
	return feedback, nil
}
