package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func noopBody(ctx *domain.Context) domain.Result {
	return domain.Success(nil, 0)
}

func TestGraph_AddTask(t *testing.T) {
	g := domain.NewGraph()

	if _, err := g.AddTask("task1", nil, 0, false, noopBody, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := g.AddTask("task1", nil, 0, false, noopBody, nil); err == nil {
		t.Error("expected error when adding duplicate task name, got nil")
	} else {
		zErr, ok := err.(*zerr.Error)
		if !ok {
			t.Fatalf("expected *zerr.Error, got %T", err)
		}
		meta := zErr.Metadata()
		if taskName, ok := meta["task_name"].(string); !ok || taskName != "task1" {
			t.Errorf("expected metadata task_name=task1, got %v", meta["task_name"])
		}
	}
}

func TestGraph_AddTask_AnonymousNamesDoNotCollide(t *testing.T) {
	g := domain.NewGraph()

	if _, err := g.AddTask("", nil, 0, false, noopBody, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.AddTask("", nil, 0, false, noopBody, nil); err != nil {
		t.Fatalf("second anonymous task should not collide: %v", err)
	}
	if g.TaskCount() != 2 {
		t.Fatalf("expected 2 tasks, got %d", g.TaskCount())
	}
}

// TestGraph_Validate_Cycle wires a two-node cycle A -> B -> A by pre-computing IDs: since
// the arena is append-only, a forward reference to a not-yet-added task is expressed by
// predicting its TaskID (the next arena index), exactly as a name-resolving loader would.
func TestGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewGraph()

	idA := domain.TaskID(0)
	idB := domain.TaskID(1)

	if _, err := g.AddTask("A", []domain.TaskID{idB}, 0, false, noopBody, nil); err != nil {
		t.Fatalf("failed to add task A: %v", err)
	}
	if _, err := g.AddTask("B", []domain.TaskID{idA}, 0, false, noopBody, nil); err != nil {
		t.Fatalf("failed to add task B: %v", err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if cycle, ok := meta["cycle"].(string); !ok || cycle == "" {
		t.Errorf("expected metadata cycle to be non-empty string, got %v", meta["cycle"])
	}
}

func TestGraph_Validate_MissingDependency(t *testing.T) {
	g := domain.NewGraph()
	if _, err := g.AddTask("A", []domain.TaskID{42}, 0, false, noopBody, nil); err != nil {
		t.Fatalf("failed to add task A: %v", err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for missing dependency, got nil")
	}
	if !errors.Is(err, domain.ErrMissingDependency) {
		t.Errorf("expected ErrMissingDependency, got %v", err)
	}
}

func TestGraph_Walk(t *testing.T) {
	g := domain.NewGraph()
	// C has no deps, B depends on C, A depends on B.
	// Execution order must place every dependency before its dependent: C, B, A.
	idC, err := g.AddTask("C", nil, 0, false, noopBody, nil)
	if err != nil {
		t.Fatalf("failed to add task C: %v", err)
	}
	idB, err := g.AddTask("B", []domain.TaskID{idC}, 0, false, noopBody, nil)
	if err != nil {
		t.Fatalf("failed to add task B: %v", err)
	}
	if _, err := g.AddTask("A", []domain.TaskID{idB}, 0, false, noopBody, nil); err != nil {
		t.Fatalf("failed to add task A: %v", err)
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	executed := make([]string, 0, 3)
	for task := range g.Walk() {
		executed = append(executed, task.Name)
	}

	if len(executed) != 3 {
		t.Fatalf("expected 3 tasks executed, got %d", len(executed))
	}
	if executed[0] != "C" || executed[1] != "B" || executed[2] != "A" {
		t.Errorf("unexpected execution order: %v", executed)
	}
}

func TestGraph_GetTaskByName(t *testing.T) {
	g := domain.NewGraph()
	id, err := g.AddTask("build", nil, 0, false, noopBody, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := g.GetTaskByName("build")
	if !ok || got != id {
		t.Errorf("expected (%d, true), got (%d, %v)", id, got, ok)
	}

	if _, ok := g.GetTaskByName("missing"); ok {
		t.Error("expected false for unknown name")
	}
}
