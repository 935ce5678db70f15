package pipeline

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/devteam-agent/internal/approval"
	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/qa"
)

// RunPipeline executes the full development flow for one set of requirements.
// Database persistence is best effort: a missing or unreachable database
// downgrades to filesystem-only artifacts with a warning.
func RunPipeline(ctx context.Context, client llm.Client, opts RunOptions) error {
	var database *db.DB
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("database unavailable, artifacts will not be persisted to Postgres")
			database = nil
		} else {
			defer database.Close()
		}
	}

	run := NewRun(opts, database)
	if database != nil {
		id, err := database.CreateRun(ctx, opts.ProjectName, opts.Requirements)
		if err != nil {
			log.Warn().Err(err).Msg("could not record run")
		} else {
			run.ID = id
		}
	}

	checkpoints := approval.NewCheckpointSystem(approval.NewSystem(client), opts.OutputDir)
	var runner qa.ScenarioRunner
	if opts.BaseURL != "" {
		runner = qa.NewBrowserRunner()
	}
	agents := NewAgents(client, checkpoints, runner)

	err := Execute(ctx, agents.Stages(), run)
	if database != nil {
		status := db.RunStatusCompleted
		if err != nil {
			status = db.RunStatusFailed
		}
		if dbErr := database.CompleteRun(ctx, run.ID, status); dbErr != nil {
			log.Warn().Err(dbErr).Msg("could not finalize run record")
		}
	}
	return err
}
