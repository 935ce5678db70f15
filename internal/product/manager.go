// Package product implements the Product Manager agent: it turns raw project
// requirements into a validated product specification artifact.
package product

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/approval"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "product_manager.json"

// Roles consulted when cross-validating a finished specification.
var stakeholderRoles = []string{"architect", "engineer", "qa_engineer", "security_analyst"}

// Manager is the Product Manager agent
type Manager struct {
	base        *agent.Base
	checkpoints *approval.CheckpointSystem
}

// NewManager creates a Product Manager around an existing LLM client.
// The checkpoint system may be nil, in which case stakeholder validation is skipped.
func NewManager(client llm.Client, checkpoints *approval.CheckpointSystem) *Manager {
	return &Manager{
		base:        agent.New("product_manager", client),
		checkpoints: checkpoints,
	}
}

// AnalyzeMarketContext analyzes market context from raw requirements text.
func (m *Manager) AnalyzeMarketContext(ctx context.Context, requirements string) (*types.MarketContext, error) {
	if strings.TrimSpace(requirements) == "" {
		return nil, m.base.Fail("market_context", &agent.ValidationError{Message: "requirements input is empty"})
	}

	prompt, err := prompts.Render(promptFile, "market-context", map[string]string{
		"Requirements": requirements,
	})
	if err != nil {
		return nil, m.base.Fail("market_context", err)
	}

	raw, err := m.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierStandard)
	if err != nil {
		return nil, m.base.Fail("market_context", err)
	}

	market, err := agent.DecodeJSON[types.MarketContext](raw)
	if err != nil {
		return nil, m.base.Fail("market_context", err)
	}
	return market, nil
}

// CreateUserPersonas generates user personas from a market context.
// Personas missing a technical proficiency are defaulted, not rejected.
func (m *Manager) CreateUserPersonas(ctx context.Context, market *types.MarketContext) ([]types.UserPersona, error) {
	marketJSON, err := agent.MarshalForPrompt(market)
	if err != nil {
		return nil, m.base.Fail("user_personas", err)
	}

	prompt, err := prompts.Render(promptFile, "user-personas", map[string]string{
		"MarketContext": marketJSON,
	})
	if err != nil {
		return nil, m.base.Fail("user_personas", err)
	}

	raw, err := m.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierStandard)
	if err != nil {
		return nil, m.base.Fail("user_personas", err)
	}

	personas, err := agent.DecodeJSONSlice[types.UserPersona](raw)
	if err != nil {
		return nil, m.base.Fail("user_personas", err)
	}
	for i := range personas {
		personas[i].Normalize()
	}
	return personas, nil
}

// DefineFeatures defines product features from requirements, market context and personas.
func (m *Manager) DefineFeatures(ctx context.Context, requirements string, market *types.MarketContext, personas []types.UserPersona) ([]types.FeatureSpecification, error) {
	marketJSON, err := agent.MarshalForPrompt(market)
	if err != nil {
		return nil, m.base.Fail("define_features", err)
	}
	personasJSON, err := agent.MarshalForPrompt(personas)
	if err != nil {
		return nil, m.base.Fail("define_features", err)
	}

	prompt, err := prompts.Render(promptFile, "define-features", map[string]string{
		"Requirements":  requirements,
		"MarketContext": marketJSON,
		"Personas":      personasJSON,
	})
	if err != nil {
		return nil, m.base.Fail("define_features", err)
	}

	raw, err := m.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierAdvanced)
	if err != nil {
		return nil, m.base.Fail("define_features", err)
	}

	features, err := agent.DecodeJSONSlice[types.FeatureSpecification](raw)
	if err != nil {
		return nil, m.base.Fail("define_features", err)
	}
	return features, nil
}

// specDraft is the shape the product-spec prompt requests. The structured
// sub-artifacts (market context, personas, features) come from the earlier
// operations, not from this completion, so they are absent here; the
// assembled specification is validated in full after they are attached.
type specDraft struct {
	Title                 string              `json:"title" validate:"required"`
	Description           string              `json:"description" validate:"required"`
	Version               string              `json:"version"`
	Scope                 types.Scope         `json:"scope"`
	SuccessMetrics        map[string][]string `json:"success_metrics"`
	TechnicalRequirements []string            `json:"technical_requirements"`
	Constraints           []string            `json:"constraints"`
	Timeline              map[string]string   `json:"timeline"`
	Dependencies          map[string][]string `json:"dependencies"`
	RisksAndMitigations   map[string][]string `json:"risks_and_mitigations"`
	Assumptions           []string            `json:"assumptions"`
}

// CreateProductSpecs runs the full product manager flow: market analysis,
// personas, features, then the assembled specification, cross-validated with
// stakeholder roles when an approval system is configured.
func (m *Manager) CreateProductSpecs(ctx context.Context, requirements string) (*types.ProductSpecification, error) {
	market, err := m.AnalyzeMarketContext(ctx, requirements)
	if err != nil {
		return nil, err
	}

	personas, err := m.CreateUserPersonas(ctx, market)
	if err != nil {
		return nil, err
	}

	features, err := m.DefineFeatures(ctx, requirements, market, personas)
	if err != nil {
		return nil, err
	}

	marketJSON, err := agent.MarshalForPrompt(market)
	if err != nil {
		return nil, m.base.Fail("product_spec", err)
	}
	personasJSON, err := agent.MarshalForPrompt(personas)
	if err != nil {
		return nil, m.base.Fail("product_spec", err)
	}
	featuresJSON, err := agent.MarshalForPrompt(features)
	if err != nil {
		return nil, m.base.Fail("product_spec", err)
	}

	prompt, err := prompts.Render(promptFile, "product-spec", map[string]string{
		"Requirements":  requirements,
		"MarketContext": marketJSON,
		"Personas":      personasJSON,
		"Features":      featuresJSON,
	})
	if err != nil {
		return nil, m.base.Fail("product_spec", err)
	}

	raw, err := m.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierAdvanced)
	if err != nil {
		return nil, m.base.Fail("product_spec", err)
	}

	draft, err := agent.DecodeJSON[specDraft](raw)
	if err != nil {
		return nil, m.base.Fail("product_spec", err)
	}

	// The assembled spec carries the structured sub-artifacts verbatim; the
	// final completion only contributes the fields the prompt asks for.
	spec := &types.ProductSpecification{
		Title:                 draft.Title,
		Description:           draft.Description,
		Version:               draft.Version,
		Scope:                 draft.Scope,
		SuccessMetrics:        draft.SuccessMetrics,
		TechnicalRequirements: draft.TechnicalRequirements,
		Constraints:           draft.Constraints,
		Timeline:              draft.Timeline,
		Dependencies:          draft.Dependencies,
		RisksAndMitigations:   draft.RisksAndMitigations,
		Assumptions:           draft.Assumptions,
		MarketContext:         *market,
		Audience:              personas,
		Features:              features,
	}
	if spec.Version == "" {
		spec.Version = time.Now().Format("2006.01.02")
	}
	spec.SessionID = time.Now().Format("20060102_150405")

	if err := agent.ValidateStruct(spec); err != nil {
		return nil, m.base.Fail("product_spec", err)
	}

	if m.checkpoints != nil {
		if err := m.validateWithStakeholders(ctx, spec); err != nil {
			return nil, err
		}
	}

	return spec, nil
}

// validateWithStakeholders cross-validates the specification with each
// stakeholder role through the approval system. A rejected checkpoint fails
// the stage; the specification is never emitted in a partially approved state.
func (m *Manager) validateWithStakeholders(ctx context.Context, spec *types.ProductSpecification) error {
	for i, role := range stakeholderRoles {
		checkpointID := "spec_validation_" + role + "_" + spec.SessionID + "_" + strconv.Itoa(i)
		m.checkpoints.Create(checkpointID, approval.StageProductSpecs)
		status, err := m.checkpoints.Validate(ctx, checkpointID, spec, []string{role}, nil)
		if err != nil {
			return m.base.Fail("stakeholder_validation", err)
		}
		if status.Status == types.CheckpointRejected {
			return m.base.Fail("stakeholder_validation", &agent.ValidationError{
				Field:   role,
				Message: "specification rejected: " + strings.Join(status.BlockingIssues, "; "),
			})
		}
	}
	return nil
}
