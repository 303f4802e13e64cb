// Package domain contains the core domain models for the task dependency graph: the
// task arena, segments/terminals/groups built around it, and the Result tagged union
// every evaluation produces.
package domain

import (
	"fmt"
	"iter"

	"go.trai.ch/zerr"
)

// Graph is an arena of Tasks addressed by TaskID. Representing tasks by index rather than
// by name or pointer sidesteps cyclic ownership and keeps AddTask O(1); see Design Notes
// §9.
type Graph struct {
	tasks          []Task
	byName         map[string]TaskID
	executionOrder []TaskID
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{byName: make(map[string]TaskID)}
}

// AddTask appends a task to the arena and returns its TaskID. debugName is used only for
// logs and error messages; it need not be unique unless the caller also wants name-based
// lookup via GetTaskByName, in which case a duplicate debugName returns
// ErrTaskAlreadyExists.
func (g *Graph) AddTask(debugName string, inputs []TaskID, sideHash int32, flushDest bool, body Body, named *NamedInfo) (TaskID, error) {
	if debugName != "" {
		if _, exists := g.byName[debugName]; exists {
			return 0, zerr.With(ErrTaskAlreadyExists, "task_name", debugName)
		}
	}

	id := TaskID(len(g.tasks))
	g.tasks = append(g.tasks, Task{
		ID:        id,
		Name:      debugName,
		Inputs:    inputs,
		SideHash:  sideHash,
		FlushDest: flushDest,
		Body:      body,
		Named:     named,
	})
	if debugName != "" {
		g.byName[debugName] = id
	}
	return id, nil
}

// Task returns the task stored at id. Callers must only pass IDs this Graph issued.
func (g *Graph) Task(id TaskID) Task {
	return g.tasks[id]
}

// GetTaskByName looks up a task by the debugName it was added with.
func (g *Graph) GetTaskByName(name string) (TaskID, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// TaskCount returns the number of tasks in the arena.
func (g *Graph) TaskCount() int {
	return len(g.tasks)
}

// Validate performs a DFS-based cycle check over the whole arena and populates the
// execution order Walk iterates. It must be called (and return nil) before Walk, or any
// planner operation.
func (g *Graph) Validate() error {
	g.executionOrder = make([]TaskID, 0, len(g.tasks))
	visited := make([]uint8, len(g.tasks)) // 0 unvisited, 1 visiting, 2 visited
	var path []TaskID

	var visit func(u TaskID) error
	visit = func(u TaskID) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.tasks[u].Inputs {
			if int(dep) < 0 || int(dep) >= len(g.tasks) {
				return zerr.With(ErrMissingDependency, "dependency", fmt.Sprintf("#%d", dep))
			}
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for id := range g.tasks {
		tid := TaskID(id)
		if visited[tid] == 0 {
			if err := visit(tid); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *Graph) buildCycleError(path []TaskID, dep TaskID) error {
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	cycle := ""
	for i := startIdx; i < len(path); i++ {
		cycle += g.label(path[i]) + " -> "
	}
	cycle += g.label(dep)
	return zerr.With(ErrCycleDetected, "cycle", cycle)
}

func (g *Graph) label(id TaskID) string {
	if name := g.tasks[id].Name; name != "" {
		return name
	}
	return fmt.Sprintf("#%d", id)
}

// Walk yields tasks in the topological order Validate computed.
func (g *Graph) Walk() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, id := range g.executionOrder {
			if !yield(g.tasks[id]) {
				return
			}
		}
	}
}

// ExecutionOrder returns the TaskIDs in the topological order Validate computed.
func (g *Graph) ExecutionOrder() []TaskID {
	return g.executionOrder
}
