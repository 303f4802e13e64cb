package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not found in the graph.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrNoGoalsSpecified is returned when a run is requested with an empty goal set.
	ErrNoGoalsSpecified = zerr.New("no goals specified")

	// ErrDuplicateSegments is returned when two named tasks resolve to identical rendered segments
	// without differing override counts to disambiguate them.
	ErrDuplicateSegments = zerr.New("duplicate terminal segments")

	// ErrDestAlreadyAcquired is returned by Context.Dest when a second task in the same group
	// invocation tries to acquire the group's scratch directory.
	ErrDestAlreadyAcquired = zerr.New("dest already acquired by another task")

	// ErrDestUnavailable is returned by Context.Dest when the terminal has no on-disk paths,
	// which is always true for anonymous (unlabelled) terminals.
	ErrDestUnavailable = zerr.New("dest is unavailable for this terminal")

	// ErrGoalResultMissing is an internal-invariant violation: a requested goal has no recorded
	// result after the driver has run to completion.
	ErrGoalResultMissing = zerr.New("goal result missing after evaluation")

	// ErrUnownedAnonymousTask is an internal-invariant violation: groupAround reached an
	// Anonymous task with no downstream consumer already assigned to a group, which should
	// be unreachable for any task that is actually part of a goal's transitive closure.
	ErrUnownedAnonymousTask = zerr.New("anonymous task has no owning group")
)
