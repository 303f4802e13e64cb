package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/evaluator"
	"go.trai.ch/kiln/internal/engine/planner"
	"go.trai.ch/kiln/internal/engine/scheduler"
	"go.trai.ch/kiln/internal/observability"
	"go.uber.org/mock/gomock"
)

func namedTask(g *domain.Graph, name string, inputs []domain.TaskID, body domain.Body) domain.TaskID {
	id, err := g.AddTask(name, inputs, 0, false, body, &domain.NamedInfo{
		Segments: domain.Segments{domain.Label(name)},
	})
	if err != nil {
		panic(err)
	}
	return id
}

func groupAll(t *testing.T, g *domain.Graph, goals []domain.TaskID) []domain.Group {
	t.Helper()
	require.NoError(t, g.Validate())
	closure := planner.Transitive(g, goals)
	sorted, err := planner.TopoSort(g, closure)
	require.NoError(t, err)
	membership, err := planner.GroupAround(g, sorted, func(id domain.TaskID) planner.Classification {
		return planner.Important(g.Task(id).Named.Segments.Render())
	})
	require.NoError(t, err)
	return planner.Groups(membership)
}

func newDeps(t *testing.T, workers int) evaluator.Deps {
	t.Helper()
	ctrl := gomock.NewController(t)
	metaStore := mocks.NewMockMetaStore(ctrl)
	metaStore.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()
	logger := mocks.NewMockLogger(ctrl)

	return evaluator.Deps{
		MetaStore: metaStore,
		Workers:   evaluator.NewWorkerCache(),
		Logger:    logger,
		Jobs:      workers,
		OutRoot:   t.TempDir(),
	}
}

// TestScheduler_Run_Diamond builds compile <- {lint, vet} <- build and confirms build
// only sees compile's value once both of its own dependencies have completed, and that
// every task's result comes back successful.
func TestScheduler_Run_Diamond(t *testing.T) {
	g := domain.NewGraph()
	compile := namedTask(g, "compile", nil, func(_ *domain.Context) domain.Result {
		return domain.Success("compiled", 0)
	})
	lint := namedTask(g, "lint", []domain.TaskID{compile}, func(ctx *domain.Context) domain.Result {
		assert.Equal(t, "compiled", ctx.In(0))
		return domain.Success("linted", 0)
	})
	vet := namedTask(g, "vet", []domain.TaskID{compile}, func(ctx *domain.Context) domain.Result {
		assert.Equal(t, "compiled", ctx.In(0))
		return domain.Success("vetted", 0)
	})
	build := namedTask(g, "build", []domain.TaskID{lint, vet}, func(ctx *domain.Context) domain.Result {
		assert.Equal(t, "linted", ctx.In(0))
		assert.Equal(t, "vetted", ctx.In(1))
		return domain.Success("built", 0)
	})

	groups := groupAll(t, g, []domain.TaskID{build})
	sched := scheduler.New(g, groups, 4, false, newDeps(t, 4), telemetry.NewNoOpTracer())

	out, err := sched.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, out.SomeTaskFailed)
	assert.True(t, out.Results[build].IsSuccess())
	assert.Equal(t, "built", out.Results[build].Value)
	assert.Len(t, out.Results, 4)
}

func TestScheduler_Run_FailFastAbortsDownstream(t *testing.T) {
	g := domain.NewGraph()
	compile := namedTask(g, "compile", nil, func(_ *domain.Context) domain.Result {
		return domain.Failure("compile error")
	})
	build := namedTask(g, "build", []domain.TaskID{compile}, func(_ *domain.Context) domain.Result {
		t.Fatal("build must not run once compile fails under fail-fast")
		return domain.Result{}
	})

	groups := groupAll(t, g, []domain.TaskID{build})
	sched := scheduler.New(g, groups, 2, true, newDeps(t, 2), telemetry.NewNoOpTracer())

	out, err := sched.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, out.SomeTaskFailed)
	assert.True(t, out.Results[compile].IsFailing())
	assert.Equal(t, domain.ResultAborted, out.Results[build].Kind)
}

func TestScheduler_Run_IndependentGoalsBothComplete(t *testing.T) {
	g := domain.NewGraph()
	alpha := namedTask(g, "alpha", nil, func(_ *domain.Context) domain.Result {
		return domain.Success("a", 0)
	})
	beta := namedTask(g, "beta", nil, func(_ *domain.Context) domain.Result {
		return domain.Success("b", 0)
	})

	groups := groupAll(t, g, []domain.TaskID{alpha, beta})
	sched := scheduler.New(g, groups, 2, false, newDeps(t, 2), telemetry.NewNoOpTracer())

	out, err := sched.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, out.SomeTaskFailed)
	assert.True(t, out.Results[alpha].IsSuccess())
	assert.True(t, out.Results[beta].IsSuccess())
}

// TestScheduler_Run_TraceEventsCarryStartTimestamps confirms every emitted trace event's
// TS is relative to the run's own start rather than left at its zero value, so a real
// parallel run's profile can place concurrent groups on a flame chart.
func TestScheduler_Run_TraceEventsCarryStartTimestamps(t *testing.T) {
	g := domain.NewGraph()
	first := namedTask(g, "first", nil, func(_ *domain.Context) domain.Result {
		time.Sleep(5 * time.Millisecond)
		return domain.Success("first", 0)
	})
	second := namedTask(g, "second", []domain.TaskID{first}, func(_ *domain.Context) domain.Result {
		return domain.Success("second", 0)
	})

	groups := groupAll(t, g, []domain.TaskID{second})
	sched := scheduler.New(g, groups, 2, false, newDeps(t, 2), telemetry.NewNoOpTracer())

	out, err := sched.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Trace, 2)

	byName := make(map[string]observability.TraceEvent, len(out.Trace))
	for _, ev := range out.Trace {
		byName[ev.Name] = ev
	}
	assert.GreaterOrEqual(t, byName["first"].TS, int64(0))
	assert.GreaterOrEqual(t, byName["second"].TS, byName["first"].TS+byName["first"].Dur,
		"second depends on first, so it must start no earlier than first's completion")
}

// TestScheduler_Run_NoCollisionAcrossDuplicateSegments builds two independent groups that
// render to the identical segment string (bypassing the app-level collision resolver this
// test exercises the scheduler's own defense-in-depth for) and asserts they are never
// resident in inProgress together: both tasks record a start timestamp, and the later one
// never starts before the earlier one's trace event ends.
func TestScheduler_Run_NoCollisionAcrossDuplicateSegments(t *testing.T) {
	g := domain.NewGraph()
	segments := domain.Segments{domain.Label("build")}

	addDup := func(name string) domain.TaskID {
		id, err := g.AddTask(name, nil, 0, false, func(_ *domain.Context) domain.Result {
			time.Sleep(5 * time.Millisecond)
			return domain.Success(name, 0)
		}, &domain.NamedInfo{Segments: segments})
		require.NoError(t, err)
		return id
	}
	one := addDup("one")
	two := addDup("two")

	require.NoError(t, g.Validate())
	closure := planner.Transitive(g, []domain.TaskID{one, two})
	sorted, err := planner.TopoSort(g, closure)
	require.NoError(t, err)
	membership, err := planner.GroupAround(g, sorted, func(id domain.TaskID) planner.Classification {
		return planner.Important(g.Task(id).Named.Segments.Render())
	})
	require.NoError(t, err)
	groups := planner.Groups(membership)
	require.Len(t, groups, 2, "two same-segment tasks must still occupy distinct groups")

	sched := scheduler.New(g, groups, 4, false, newDeps(t, 4), telemetry.NewNoOpTracer())
	out, err := sched.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Trace, 2)

	first, second := out.Trace[0], out.Trace[1]
	if second.TS < first.TS {
		first, second = second, first
	}
	assert.GreaterOrEqual(t, second.TS, first.TS+first.Dur, "colliding groups must not overlap")
}
