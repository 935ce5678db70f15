// Package pipeline orchestrates the multi-agent development flow: an explicit
// stage registry with dependencies, topologically phased execution with
// concurrent stages inside a phase, and fail-fast error propagation.
package pipeline

import (
	"context"
	"fmt"
)

// StageFunc executes one stage against the shared run state. It must persist
// its own artifacts through the Run before returning nil.
type StageFunc func(ctx context.Context, run *Run) error

// StageDefinition defines metadata and the executable body for one stage
type StageDefinition struct {
	Name         string
	Category     string
	Dependencies []string
	Run          StageFunc
}

// DependencyError reports a stage referencing an unknown dependency
type DependencyError struct {
	Stage   string
	Missing string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("stage %s depends on unknown stage %s", e.Stage, e.Missing)
}

// CycleError reports a dependency cycle in the stage graph
type CycleError struct {
	Stages []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle involving stages %v", e.Stages)
}
