// Package planner provides the pure graph operations the evaluator and drivers build on:
// transitive closure from a goal set, stable topological sort, and grouping the sorted
// tasks around their nearest downstream named or requested task.
package planner

import "go.trai.ch/kiln/internal/core/domain"

// Transitive returns the breadth-first transitive closure of goals over task Inputs,
// preserving first-discovery order.
func Transitive(g *domain.Graph, goals []domain.TaskID) []domain.TaskID {
	seen := make(map[domain.TaskID]bool, len(goals))
	order := make([]domain.TaskID, 0, len(goals))
	queue := append([]domain.TaskID(nil), goals...)

	for _, id := range queue {
		seen[id] = true
	}

	for i := 0; i < len(queue); i++ {
		id := queue[i]
		order = append(order, id)
		for _, dep := range g.Task(id).Inputs {
			if !seen[dep] {
				seen[dep] = true
				queue = append(queue, dep)
			}
		}
	}

	return order
}

// TopoSort performs a stable Kahn-style sort of tasks, considering only edges whose both
// endpoints are in the given set (external references are ignored — the caller is
// expected to have already resolved those independently, as the scheduler does via
// interGroupDeps). A cycle among tasks is reported via domain.ErrCycleDetected.
func TopoSort(g *domain.Graph, tasks []domain.TaskID) ([]domain.TaskID, error) {
	inSet := make(map[domain.TaskID]bool, len(tasks))
	for _, id := range tasks {
		inSet[id] = true
	}

	inDegree := make(map[domain.TaskID]int, len(tasks))
	dependents := make(map[domain.TaskID][]domain.TaskID, len(tasks))
	for _, id := range tasks {
		degree := 0
		for _, dep := range g.Task(id).Inputs {
			if inSet[dep] {
				degree++
				dependents[dep] = append(dependents[dep], id)
			}
		}
		inDegree[id] = degree
	}

	var ready []domain.TaskID
	for _, id := range tasks {
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]domain.TaskID, 0, len(tasks))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		for _, dep := range dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}

	if len(order) != len(tasks) {
		return nil, domain.ErrCycleDetected
	}
	return order, nil
}

// ClassificationKind tags how groupAround treats a single task.
type ClassificationKind int

const (
	// ClassAnonymous is an ordinary intermediate task joining its consumer's group.
	ClassAnonymous ClassificationKind = iota
	// ClassRequested is a plain, user-requested task heading its own anonymous group.
	ClassRequested
	// ClassImportant is a named task heading its own labelled group.
	ClassImportant
)

// Classification is groupAround's per-task verdict. Segments is populated only for
// ClassImportant.
type Classification struct {
	Kind     ClassificationKind
	Segments string
}

// Anonymous classifies a task as an ordinary intermediate.
func Anonymous() Classification { return Classification{Kind: ClassAnonymous} }

// Requested classifies a task as a plain user-requested goal.
func Requested() Classification { return Classification{Kind: ClassRequested} }

// Important classifies a task as a named, labelled terminal with the given rendered
// segments (already override-disambiguated by the caller).
func Important(renderedSegments string) Classification {
	return Classification{Kind: ClassImportant, Segments: renderedSegments}
}

// ClassifyFunc resolves a task's classification. The planner never inspects a Task's own
// NamedInfo directly — callers (the config loader, or the evaluator wiring) decide what
// "important" and "requested" mean for their graph.
type ClassifyFunc func(domain.TaskID) Classification

// GroupAround walks sortedTasks (topologically sorted) and returns the ordered MultiBiMap
// from each terminal to its group members, in topological order, terminal last. Every
// anonymous task joins the group of its nearest downstream Important or Requested
// consumer; classify decides which tasks are terminals.
//
// GroupAround derives the dependents of each task itself from g, counting only tasks in
// sortedTasks that name it as an input.
func GroupAround(g *domain.Graph, sortedTasks []domain.TaskID, classify ClassifyFunc) (*domain.MultiBiMap[domain.Terminal, domain.TaskID], error) {
	inSet := make(map[domain.TaskID]bool, len(sortedTasks))
	for _, id := range sortedTasks {
		inSet[id] = true
	}

	dependents := make(map[domain.TaskID][]domain.TaskID, len(sortedTasks))
	for _, id := range sortedTasks {
		for _, dep := range g.Task(id).Inputs {
			if inSet[dep] {
				dependents[dep] = append(dependents[dep], id)
			}
		}
	}

	owner := make(map[domain.TaskID]domain.Terminal, len(sortedTasks))
	for i := len(sortedTasks) - 1; i >= 0; i-- {
		id := sortedTasks[i]
		c := classify(id)
		switch c.Kind {
		case ClassImportant:
			owner[id] = domain.LabelledTerminal(id, c.Segments)
		case ClassRequested:
			owner[id] = domain.AnonymousTerminal(id)
		default:
			var found bool
			for _, dep := range dependents[id] {
				if t, ok := owner[dep]; ok {
					owner[id] = t
					found = true
					break
				}
			}
			if !found {
				return nil, domain.ErrUnownedAnonymousTask
			}
		}
	}

	groups := domain.NewMultiBiMap[domain.Terminal, domain.TaskID]()
	for _, id := range sortedTasks {
		groups.Put(owner[id], id)
	}
	return groups, nil
}

// Groups flattens a GroupAround result into the ordered []domain.Group shape the
// evaluator, driver, and scheduler all consume, preserving the MultiBiMap's
// group-discovery order.
func Groups(mb *domain.MultiBiMap[domain.Terminal, domain.TaskID]) []domain.Group {
	keys := mb.Keys()
	out := make([]domain.Group, len(keys))
	for i, k := range keys {
		out[i] = domain.Group{Terminal: k, Tasks: mb.Get(k)}
	}
	return out
}
