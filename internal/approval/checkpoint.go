package approval

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonathan/devteam-agent/internal/artifact"
	"github.com/jonathan/devteam-agent/internal/types"
)

// CheckpointSystem tracks approval gates across a pipeline run. Checkpoints
// live in memory for the duration of the run; validation reports are
// persisted through the artifact store when a report directory is set.
type CheckpointSystem struct {
	system    *System
	reportDir string
	store     artifact.Store

	mu          sync.Mutex
	checkpoints map[string]*types.CheckpointStatus
}

// NewCheckpointSystem creates a checkpoint registry. reportDir may be empty
// to disable report persistence.
func NewCheckpointSystem(system *System, reportDir string) *CheckpointSystem {
	return &CheckpointSystem{
		system:      system,
		reportDir:   reportDir,
		store:       artifact.NewFSStore(),
		checkpoints: make(map[string]*types.CheckpointStatus),
	}
}

// Create registers a new pending checkpoint for a stage.
func (cs *CheckpointSystem) Create(checkpointID string, stage Stage) *types.CheckpointStatus {
	checkpoint := &types.CheckpointStatus{
		CheckpointID: checkpointID,
		Stage:        string(stage),
		Status:       types.CheckpointPending,
		Timestamp:    time.Now(),
	}

	cs.mu.Lock()
	cs.checkpoints[checkpointID] = checkpoint
	cs.mu.Unlock()
	return checkpoint
}

// Status returns the current state of a checkpoint.
func (cs *CheckpointSystem) Status(checkpointID string) (*types.CheckpointStatus, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	checkpoint, ok := cs.checkpoints[checkpointID]
	if !ok {
		return nil, fmt.Errorf("checkpoint %s not found", checkpointID)
	}
	return checkpoint, nil
}

// Validate runs the gate validation plus cross-role review and transitions
// the checkpoint to approved or rejected. Infrastructure failures (failed
// completion, unparseable judgment) propagate as errors; semantic rejection
// is reported through the checkpoint status.
func (cs *CheckpointSystem) Validate(ctx context.Context, checkpointID string, content any, roles []string, roleContext any) (*types.CheckpointStatus, error) {
	cs.mu.Lock()
	checkpoint, ok := cs.checkpoints[checkpointID]
	cs.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("checkpoint %s not found", checkpointID)
	}

	var result *types.ValidationResult
	var err error
	switch Stage(checkpoint.Stage) {
	case StageArchitecture:
		result, err = cs.system.ValidateArchitecture(ctx, content, roleContext)
	default:
		result, err = cs.system.ValidateProductSpecs(ctx, content)
	}
	if err != nil {
		return nil, err
	}

	crossResults := make(map[string]types.RoleFeedback, len(roles))
	var blocking []string
	for _, role := range roles {
		feedback, err := cs.system.CrossValidateWithRole(ctx, content, role, roleContext)
		if err != nil {
			return nil, err
		}
		crossResults[role] = *feedback
		blocking = append(blocking, feedback.Concerns...)
	}

	cs.mu.Lock()
	checkpoint.Validation = result
	checkpoint.CrossValidation = crossResults
	checkpoint.BlockingIssues = blocking
	if result.IsApproved && len(blocking) == 0 {
		checkpoint.Status = types.CheckpointApproved
		checkpoint.ApprovedBy = roles
	} else {
		checkpoint.Status = types.CheckpointRejected
		if !result.IsApproved {
			checkpoint.BlockingIssues = append(result.Issues, blocking...)
		}
	}
	cs.mu.Unlock()

	if err := cs.saveReport(checkpoint); err != nil {
		return nil, err
	}
	return checkpoint, nil
}

// saveReport persists the checkpoint verdict as a JSON artifact.
func (cs *CheckpointSystem) saveReport(checkpoint *types.CheckpointStatus) error {
	if cs.reportDir == "" {
		return nil
	}

	name := fmt.Sprintf("checkpoint_%s_%s.json", checkpoint.CheckpointID, checkpoint.Timestamp.Format("20060102_150405"))
	report, err := artifact.NewJSON(name, checkpoint)
	if err != nil {
		return err
	}
	return cs.store.Save(filepath.Join(cs.reportDir, name), report)
}
