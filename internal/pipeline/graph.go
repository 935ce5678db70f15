package pipeline

import "sort"

// Phases computes the topological phase layering of the stage graph. Stages
// in the same phase have no dependency relationship and may run concurrently;
// every stage appears in a later phase than all of its dependencies. Stage
// names within a phase are sorted so the layering is deterministic.
func Phases(defs []StageDefinition) ([][]string, error) {
	byName := make(map[string]*StageDefinition, len(defs))
	for i := range defs {
		byName[defs[i].Name] = &defs[i]
	}

	indegree := make(map[string]int, len(defs))
	dependents := make(map[string][]string, len(defs))
	for _, def := range defs {
		if _, ok := indegree[def.Name]; !ok {
			indegree[def.Name] = 0
		}
		for _, dep := range def.Dependencies {
			if _, ok := byName[dep]; !ok {
				return nil, &DependencyError{Stage: def.Name, Missing: dep}
			}
			indegree[def.Name]++
			dependents[dep] = append(dependents[dep], def.Name)
		}
	}

	var phases [][]string
	placed := 0
	for placed < len(defs) {
		var phase []string
		for name, degree := range indegree {
			if degree == 0 {
				phase = append(phase, name)
			}
		}
		if len(phase) == 0 {
			var remaining []string
			for name := range indegree {
				remaining = append(remaining, name)
			}
			sort.Strings(remaining)
			return nil, &CycleError{Stages: remaining}
		}

		sort.Strings(phase)
		for _, name := range phase {
			delete(indegree, name)
			for _, dependent := range dependents[name] {
				if _, ok := indegree[dependent]; ok {
					indegree[dependent]--
				}
			}
		}
		phases = append(phases, phase)
		placed += len(phase)
	}

	return phases, nil
}
