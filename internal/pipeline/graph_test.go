package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devteam-agent/internal/db"
)

func defsFrom(deps map[string][]string) []StageDefinition {
	defs := make([]StageDefinition, 0, len(deps))
	for name, d := range deps {
		defs = append(defs, StageDefinition{Name: name, Dependencies: d})
	}
	return defs
}

func TestPhasesLinearChain(t *testing.T) {
	phases, err := Phases(defsFrom(map[string][]string{
		"a": nil,
		"b": {"a"},
		"c": {"b"},
	}))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}}, phases)
}

func TestPhasesDiamond(t *testing.T) {
	phases, err := Phases(defsFrom(map[string][]string{
		"root":  nil,
		"left":  {"root"},
		"right": {"root"},
		"join":  {"left", "right"},
	}))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"root"}, {"left", "right"}, {"join"}}, phases)
}

func TestPhasesUnknownDependency(t *testing.T) {
	_, err := Phases(defsFrom(map[string][]string{
		"a": {"missing"},
	}))
	require.Error(t, err)

	var depErr *DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, "a", depErr.Stage)
	assert.Equal(t, "missing", depErr.Missing)
}

func TestPhasesCycle(t *testing.T) {
	_, err := Phases(defsFrom(map[string][]string{
		"a": {"c"},
		"b": {"a"},
		"c": {"b"},
	}))
	require.Error(t, err)

	var cycleErr *CycleError
	require.True(t, errors.As(err, &cycleErr))
	assert.Equal(t, []string{"a", "b", "c"}, cycleErr.Stages)
}

func TestPhasesDeterministicOrder(t *testing.T) {
	deps := map[string][]string{
		"root": nil,
		"zeta": {"root"},
		"beta": {"root"},
	}
	first, err := Phases(defsFrom(deps))
	require.NoError(t, err)
	second, err := Phases(defsFrom(deps))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"beta", "zeta"}, first[1])
}

func TestStageGraphIsAcyclic(t *testing.T) {
	agents := &Agents{}
	phases, err := Phases(agents.Stages())
	require.NoError(t, err)
	require.NotEmpty(t, phases)

	assert.Equal(t, []string{db.StageProductSpecs}, phases[0])
	last := phases[len(phases)-1]
	assert.Equal(t, []string{db.StageStatus}, last)
}
