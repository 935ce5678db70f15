package pipeline

import (
	"context"
	"strings"

	"github.com/jonathan/devteam-agent/internal/approval"
	"github.com/jonathan/devteam-agent/internal/architecture"
	"github.com/jonathan/devteam-agent/internal/brainstorm"
	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/docs"
	"github.com/jonathan/devteam-agent/internal/engineering"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/planning"
	"github.com/jonathan/devteam-agent/internal/product"
	"github.com/jonathan/devteam-agent/internal/qa"
	"github.com/jonathan/devteam-agent/internal/rendering"
	"github.com/jonathan/devteam-agent/internal/reporting"
	"github.com/jonathan/devteam-agent/internal/review"
	"github.com/jonathan/devteam-agent/internal/types"
)

// Agents bundles every role agent participating in the development flow.
type Agents struct {
	Product    *product.Manager
	Brainstorm *brainstorm.Facilitator
	Architect  *architecture.Architect
	Planner    *planning.Planner
	Engineer   *engineering.Engineer
	Reviewer   *review.Reviewer
	QA         *qa.Engineer
	Reporter   *reporting.Manager
	Documenter *docs.Documenter
}

// NewAgents wires every role agent around one shared client. checkpoints may
// be nil to skip cross-role spec validation; runner may be nil to skip UI
// scenario execution.
func NewAgents(client llm.Client, checkpoints *approval.CheckpointSystem, runner qa.ScenarioRunner) *Agents {
	return &Agents{
		Product:    product.NewManager(client, checkpoints),
		Brainstorm: brainstorm.NewFacilitator(client),
		Architect:  architecture.NewArchitect(client),
		Planner:    planning.NewPlanner(client),
		Engineer:   engineering.NewEngineer(client),
		Reviewer:   review.NewReviewer(client),
		QA:         qa.NewEngineer(client, runner),
		Reporter:   reporting.NewManager(client),
		Documenter: docs.NewDocumenter(client),
	}
}

// Stages builds the full development stage graph for one run.
func (a *Agents) Stages() []StageDefinition {
	return []StageDefinition{
		{
			Name:     db.StageProductSpecs,
			Category: db.CategoryProduct,
			Run:      a.runProductSpecs,
		},
		{
			Name:         db.StageBrainstorm,
			Category:     db.CategoryDesign,
			Dependencies: []string{db.StageProductSpecs},
			Run:          a.runBrainstorm,
		},
		{
			Name:         db.StageArchitecture,
			Category:     db.CategoryDesign,
			Dependencies: []string{db.StageBrainstorm},
			Run:          a.runArchitecture,
		},
		{
			Name:         db.StagePlan,
			Category:     db.CategoryDesign,
			Dependencies: []string{db.StageArchitecture},
			Run:          a.runPlan,
		},
		{
			Name:         db.StageCode,
			Category:     db.CategoryEngineering,
			Dependencies: []string{db.StagePlan},
			Run:          a.runCode,
		},
		{
			Name:         db.StageReview,
			Category:     db.CategoryQuality,
			Dependencies: []string{db.StageCode},
			Run:          a.runReview,
		},
		{
			Name:         db.StageDocumentation,
			Category:     db.CategoryReporting,
			Dependencies: []string{db.StageArchitecture, db.StageCode},
			Run:          a.runDocumentation,
		},
		{
			Name:         db.StageTestReport,
			Category:     db.CategoryQuality,
			Dependencies: []string{db.StageCode, db.StageReview},
			Run:          a.runQA,
		},
		{
			Name:         db.StageStatus,
			Category:     db.CategoryReporting,
			Dependencies: []string{db.StageReview, db.StageTestReport},
			Run:          a.runStatus,
		},
	}
}

func (a *Agents) runProductSpecs(ctx context.Context, run *Run) error {
	spec, err := a.Product.CreateProductSpecs(ctx, run.Options.Requirements)
	if err != nil {
		return err
	}
	if err := run.SaveJSON(ctx, db.StageProductSpecs, db.CategoryProduct, spec); err != nil {
		return err
	}

	md, err := rendering.ProductSpecMarkdown(spec)
	if err != nil {
		return err
	}
	return run.SaveMarkdown(ctx, db.StageSpecMarkdown, db.CategoryProduct, md)
}

func (a *Agents) runBrainstorm(ctx context.Context, run *Run) error {
	specArtifact, ok := run.Artifact(db.StageProductSpecs)
	if !ok {
		return errMissingUpstream(db.StageProductSpecs)
	}

	outcome, err := a.Brainstorm.Facilitate(ctx, specArtifact.Content, run.Options.NumIdeas)
	if err != nil {
		return err
	}
	return run.SaveJSON(ctx, db.StageBrainstorm, db.CategoryDesign, outcome)
}

func (a *Agents) runArchitecture(ctx context.Context, run *Run) error {
	outcomeArtifact, ok := run.Artifact(db.StageBrainstorm)
	if !ok {
		return errMissingUpstream(db.StageBrainstorm)
	}

	doc, err := a.Architect.Design(ctx, outcomeArtifact.Content)
	if err != nil {
		return err
	}
	if err := run.SaveJSON(ctx, db.StageArchitecture, db.CategoryDesign, doc); err != nil {
		return err
	}
	return run.SaveMarkdown(ctx, db.StageArchMarkdown, db.CategoryDesign, doc.Document)
}

func (a *Agents) runPlan(ctx context.Context, run *Run) error {
	var arch types.ArchitectureDocument
	if err := run.DecodeArtifact(db.StageArchitecture, &arch); err != nil {
		return err
	}

	plan, err := a.Planner.Plan(ctx, arch.Document)
	if err != nil {
		return err
	}
	return run.SaveJSON(ctx, db.StagePlan, db.CategoryDesign, plan)
}

func (a *Agents) runCode(ctx context.Context, run *Run) error {
	var plan types.DevelopmentPlan
	if err := run.DecodeArtifact(db.StagePlan, &plan); err != nil {
		return err
	}

	bundle, err := a.Engineer.Implement(ctx, &plan, run.Options.CodeDir)
	if err != nil {
		return err
	}
	return run.SaveJSON(ctx, db.StageCode, db.CategoryEngineering, bundle)
}

func (a *Agents) runReview(ctx context.Context, run *Run) error {
	var bundle types.CodeBundle
	if err := run.DecodeArtifact(db.StageCode, &bundle); err != nil {
		return err
	}

	planArtifact, _ := run.Artifact(db.StagePlan)
	reviewContext := ""
	if planArtifact != nil {
		reviewContext = planArtifact.Content
	}

	report, err := a.Reviewer.Review(ctx, &bundle, reviewContext)
	if err != nil {
		return err
	}
	return run.SaveJSON(ctx, db.StageReview, db.CategoryQuality, report)
}

func (a *Agents) runQA(ctx context.Context, run *Run) error {
	var bundle types.CodeBundle
	if err := run.DecodeArtifact(db.StageCode, &bundle); err != nil {
		return err
	}
	reviewArtifact, ok := run.Artifact(db.StageReview)
	if !ok {
		return errMissingUpstream(db.StageReview)
	}

	report, err := a.QA.Test(ctx, bundleCode(&bundle), reviewArtifact.Content, run.Options.BaseURL)
	if err != nil {
		return err
	}
	return run.SaveJSON(ctx, db.StageTestReport, db.CategoryQuality, report)
}

func (a *Agents) runDocumentation(ctx context.Context, run *Run) error {
	var arch types.ArchitectureDocument
	if err := run.DecodeArtifact(db.StageArchitecture, &arch); err != nil {
		return err
	}
	var bundle types.CodeBundle
	if err := run.DecodeArtifact(db.StageCode, &bundle); err != nil {
		return err
	}

	set, err := a.Documenter.Document(ctx, arch.Document, bundleCode(&bundle), "")
	if err != nil {
		return err
	}
	if err := run.SaveJSON(ctx, db.StageDocumentation, db.CategoryReporting, set); err != nil {
		return err
	}

	md, err := rendering.DocumentationMarkdown(set)
	if err != nil {
		return err
	}
	return run.SaveMarkdown(ctx, db.StageDocsMarkdown, db.CategoryReporting, md)
}

func (a *Agents) runStatus(ctx context.Context, run *Run) error {
	outputs := make(map[string]string)
	statuses := make(map[string]string)
	for _, stage := range []string{
		db.StageProductSpecs, db.StageBrainstorm, db.StageArchitecture,
		db.StagePlan, db.StageCode, db.StageReview, db.StageTestReport,
	} {
		if a, ok := run.Artifact(stage); ok {
			outputs[stage] = a.Content
			statuses[stage] = "done"
		} else {
			statuses[stage] = "pending"
		}
	}

	report, err := a.Reporter.Report(ctx, outputs, statuses, run.Options.Requirements)
	if err != nil {
		return err
	}
	if err := run.SaveJSON(ctx, db.StageStatus, db.CategoryReporting, report); err != nil {
		return err
	}

	md, err := rendering.StatusReportMarkdown(report)
	if err != nil {
		return err
	}
	return run.SaveMarkdown(ctx, db.StageStatusMarkdown, db.CategoryReporting, md)
}

// bundleCode flattens a code bundle into one reviewable text blob.
func bundleCode(bundle *types.CodeBundle) string {
	var sb strings.Builder
	for _, component := range bundle.Components {
		sb.WriteString("// --- " + component.Path + " ---\n")
		sb.WriteString(component.Code)
		sb.WriteString("\n")
	}
	return sb.String()
}

func errMissingUpstream(stage string) error {
	return &DependencyError{Stage: "(runtime)", Missing: stage}
}
