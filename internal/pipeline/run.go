package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/devteam-agent/internal/artifact"
	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/schemas"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage    string `json:"stage"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for a pipeline run
type RunOptions struct {
	ProjectName  string
	Requirements string
	NumIdeas     int
	OutputDir    string
	CodeDir      string
	BaseURL      string
	SchemaDir    string
	DatabaseURL  string
	OnProgress   ProgressCallback
}

// Run is the shared state of one pipeline execution: the in-memory artifact
// set plus the persistence targets. Artifacts are immutable once stored; a
// second save under the same stage name is a programming error.
type Run struct {
	ID       uuid.UUID
	Options  RunOptions
	store    artifact.Store
	database *db.DB

	mu        sync.Mutex
	artifacts map[string]*artifact.Artifact
}

// NewRun creates run state. database may be nil to skip Postgres persistence.
func NewRun(opts RunOptions, database *db.DB) *Run {
	return &Run{
		ID:        uuid.New(),
		Options:   opts,
		store:     artifact.NewFSStore(),
		database:  database,
		artifacts: make(map[string]*artifact.Artifact),
	}
}

// Artifact returns a previously stored artifact by stage name.
func (r *Run) Artifact(stage string) (*artifact.Artifact, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.artifacts[stage]
	return a, ok
}

// DecodeArtifact unmarshals a stored JSON artifact into v.
func (r *Run) DecodeArtifact(stage string, v any) error {
	a, ok := r.Artifact(stage)
	if !ok {
		return fmt.Errorf("artifact %s not produced yet", stage)
	}
	return a.Decode(v)
}

// SaveJSON validates v against the stage's schema when one exists, then
// persists it to the filesystem and, when connected, the database.
func (r *Run) SaveJSON(ctx context.Context, stage, category string, v any) error {
	a, err := artifact.NewJSON(stage+".json", v)
	if err != nil {
		return err
	}

	if err := schemas.ValidateStage(stage, r.Options.SchemaDir, a.Content); err != nil {
		return fmt.Errorf("artifact %s: %w", stage, err)
	}

	if err := r.put(stage, a); err != nil {
		return err
	}
	if r.database != nil {
		if err := r.database.SaveArtifact(ctx, r.ID, stage, category, v); err != nil {
			log.Warn().Err(err).Str("stage", stage).Msg("database artifact save failed")
		}
	}
	return nil
}

// SaveMarkdown persists a rendered markdown artifact.
func (r *Run) SaveMarkdown(ctx context.Context, stage, category, content string) error {
	a := artifact.NewMarkdown(stage+".md", content)
	if err := r.put(stage, a); err != nil {
		return err
	}
	if r.database != nil {
		if err := r.database.SaveTextArtifact(ctx, r.ID, stage, category, content); err != nil {
			log.Warn().Err(err).Str("stage", stage).Msg("database artifact save failed")
		}
	}
	return nil
}

func (r *Run) put(stage string, a *artifact.Artifact) error {
	r.mu.Lock()
	if _, exists := r.artifacts[stage]; exists {
		r.mu.Unlock()
		return fmt.Errorf("artifact %s already stored; artifacts are immutable within a run", stage)
	}
	r.artifacts[stage] = a
	r.mu.Unlock()

	if r.Options.OutputDir == "" {
		return nil
	}
	return r.store.Save(filepath.Join(r.Options.OutputDir, a.Name), a)
}

// Execute runs the stage set to completion. Stages in the same phase run
// concurrently; the first failing stage aborts the run and cancels its
// siblings through the group context.
func Execute(ctx context.Context, defs []StageDefinition, run *Run) error {
	phases, err := Phases(defs)
	if err != nil {
		return err
	}

	byName := make(map[string]*StageDefinition, len(defs))
	for i := range defs {
		byName[defs[i].Name] = &defs[i]
	}

	for _, phase := range phases {
		g, gCtx := errgroup.WithContext(ctx)
		for _, name := range phase {
			def := byName[name]
			g.Go(func() error {
				emit(run, def, "started")
				log.Info().Str("stage", def.Name).Str("category", def.Category).Msg("stage started")
				if err := def.Run(gCtx, run); err != nil {
					log.Error().Err(err).Str("stage", def.Name).Msg("stage failed")
					return fmt.Errorf("stage %s: %w", def.Name, err)
				}
				emit(run, def, "completed")
				log.Info().Str("stage", def.Name).Msg("stage completed")
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

func emit(run *Run, def *StageDefinition, message string) {
	if run.Options.OnProgress != nil {
		run.Options.OnProgress(ProgressEvent{
			Stage:    def.Name,
			Category: def.Category,
			Message:  message,
			RunID:    run.ID.String(),
		})
	}
}
