// Package app wires the core engine's collaborators together and drives one run end to
// end: load the build declaration, resolve the requested goals, plan and group the
// transitive closure, dispatch to the sequential driver or the parallel scheduler, and
// persist the assembled results.
package app

import (
	"context"
	"runtime"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/hashing"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/driver"
	"go.trai.ch/kiln/internal/engine/evaluator"
	"go.trai.ch/kiln/internal/engine/planner"
	"go.trai.ch/kiln/internal/engine/results"
	"go.trai.ch/kiln/internal/engine/scheduler"
	"go.trai.ch/kiln/internal/observability"
	"go.trai.ch/zerr"
)

// App bundles every adapter a run needs, constructed once at process startup and reused
// across every invocation of Run.
type App struct {
	configLoader   ports.ConfigLoader
	metaStore      ports.MetaStore
	outputVerifier ports.OutputVerifier
	workers        *evaluator.WorkerCache
	logger         domain.Logger
	tracer         ports.Tracer

	home            string
	env             map[string]string
	outRoot         string
	externalOutRoot string
}

// New constructs an App from its adapters. outRoot and externalOutRoot are the on-disk
// roots EvaluateGroupCached resolves every labelled terminal's meta.json and scratch
// directory beneath, per internal/core/hashing.ResolvePaths.
func New(
	loader ports.ConfigLoader,
	metaStore ports.MetaStore,
	outputVerifier ports.OutputVerifier,
	logger domain.Logger,
	tracer ports.Tracer,
	home string,
	env map[string]string,
	outRoot, externalOutRoot string,
) *App {
	return &App{
		configLoader:    loader,
		metaStore:       metaStore,
		outputVerifier:  outputVerifier,
		workers:         evaluator.NewWorkerCache(),
		logger:          logger,
		tracer:          tracer,
		home:            home,
		env:             env,
		outRoot:         outRoot,
		externalOutRoot: externalOutRoot,
	}
}

// SetTracer swaps the tracer Run uses to trace group evaluation, letting the CLI select a
// backend once flags are parsed, after the App itself was already constructed.
func (a *App) SetTracer(tracer ports.Tracer) {
	a.tracer = tracer
}

// Run loads the configured graph, resolves targetNames to goal tasks, and evaluates
// their transitive closure. workerCount selects the single-goroutine driver (1) or the
// parallel scheduler (>1); failFast stops scheduling new groups once any task fails.
func (a *App) Run(ctx context.Context, targetNames []string, workerCount int, failFast bool) error {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	graph, goals, groups, err := a.plan(targetNames)
	if err != nil {
		return err
	}

	deps := evaluator.Deps{
		MetaStore:       a.metaStore,
		OutputVerifier:  a.outputVerifier,
		Workers:         a.workers,
		Logger:          a.logger,
		Home:            a.home,
		Env:             a.env,
		Jobs:            workerCount,
		OutRoot:         a.outRoot,
		ExternalOutRoot: a.externalOutRoot,
		ClassLoaderSig:  hashing.ClassLoaderSig,
	}

	a.tracer.EmitPlan(ctx, groupTerminalNames(groups))

	runID := results.NewRunID()

	var (
		resultsByTask  map[domain.TaskID]domain.Result
		evaluated      []domain.TaskID
		timings        []results.Timing
		someTaskFailed bool
		trace          []observability.TraceEvent
	)

	if workerCount == 1 {
		r, e, t, failed := driver.Run(ctx, graph, groups, deps, failFast, a.tracer)
		resultsByTask, evaluated, someTaskFailed = r, e, failed
		timings = make([]results.Timing, len(t))
		for i, timing := range t {
			timings[i] = results.Timing{Terminal: timing.Terminal, Millis: timing.Millis, Cached: timing.Cached}
		}
	} else {
		sched := scheduler.New(graph, groups, workerCount, failFast, deps, a.tracer)
		out, runErr := sched.Run(ctx)
		if runErr != nil {
			return zerr.Wrap(runErr, "parallel scheduler failed")
		}
		resultsByTask, evaluated, someTaskFailed, trace = out.Results, out.Evaluated, out.SomeTaskFailed, out.Trace
		timings = make([]results.Timing, len(out.Timings))
		for i, timing := range out.Timings {
			timings[i] = results.Timing{Terminal: timing.Terminal, Millis: timing.Millis, Cached: timing.Cached}
		}
	}

	assembled, err := results.Assemble(goals, resultsByTask, groups, evaluated, timings)
	if err != nil {
		return zerr.Wrap(err, "failed to assemble run results")
	}

	if err := results.WriteProfile(a.outRoot, runID, timings); err != nil {
		return zerr.Wrap(err, "failed to write run profile")
	}
	if len(trace) > 0 {
		if err := results.WriteParallelProfile(a.outRoot, runID, trace); err != nil {
			return zerr.Wrap(err, "failed to write parallel run profile")
		}
	}

	if someTaskFailed {
		return summarizeFailures(assembled)
	}

	for _, goal := range goals {
		a.logger.Info(graph.Task(goal).Name)
	}
	return nil
}

// Plan reports every terminal the requested targets would evaluate, in the same
// group-discovery order Run would dispatch them in, without running a single task body.
func (a *App) Plan(targetNames []string) ([]string, error) {
	_, _, groups, err := a.plan(targetNames)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(groups))
	for i, group := range groups {
		if group.Terminal.Labelled {
			names[i] = group.Terminal.Segments.String()
			continue
		}
		names[i] = "<anonymous>"
	}
	return names, nil
}

// plan loads the configured graph and resolves targetNames into the ordered groups Run
// and Plan both dispatch from.
func (a *App) plan(targetNames []string) (*domain.Graph, []domain.TaskID, []domain.Group, error) {
	if len(targetNames) == 0 {
		return nil, nil, nil, domain.ErrNoGoalsSpecified
	}

	graph, err := a.configLoader.Load(".")
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	if err := graph.Validate(); err != nil {
		return nil, nil, nil, zerr.Wrap(err, "build declaration has a dependency cycle")
	}

	goals, err := resolveGoals(graph, targetNames)
	if err != nil {
		return nil, nil, nil, err
	}
	goalSet := make(map[domain.TaskID]bool, len(goals))
	for _, id := range goals {
		goalSet[id] = true
	}

	closure := planner.Transitive(graph, goals)
	sorted, err := planner.TopoSort(graph, closure)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to order the requested goals' transitive closure")
	}

	disambiguated, err := resolveSegmentCollisions(graph)
	if err != nil {
		return nil, nil, nil, err
	}

	membership, err := planner.GroupAround(graph, sorted, classify(graph, goalSet, disambiguated))
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to group tasks around their terminals")
	}
	return graph, goals, planner.Groups(membership), nil
}

// resolveSegmentCollisions finds every pair of named tasks whose rendered Segments
// collide and, per spec, resolves the collision if their Overrides counts differ by
// appending the "overriden" suffix (NamedInfo.EnclosingDeclaration, resolved by the
// config loader through ports.ModuleDiscovery at load time) to each colliding task's
// segments; a collision between tasks with identical Overrides has no basis for
// disambiguation and is reported as domain.ErrDuplicateSegments.
func resolveSegmentCollisions(g *domain.Graph) (map[domain.TaskID]domain.Segments, error) {
	buckets := make(map[string][]domain.TaskID)
	for id := domain.TaskID(0); int(id) < g.TaskCount(); id++ {
		task := g.Task(id)
		if task.Named == nil {
			continue
		}
		rendered := task.Named.Segments.Render()
		buckets[rendered] = append(buckets[rendered], id)
	}

	disambiguated := make(map[domain.TaskID]domain.Segments)
	for rendered, ids := range buckets {
		if len(ids) < 2 {
			continue
		}

		first := g.Task(ids[0]).Named.Overrides
		allSame := true
		for _, id := range ids[1:] {
			if g.Task(id).Named.Overrides != first {
				allSame = false
				break
			}
		}
		if allSame {
			return nil, zerr.With(domain.ErrDuplicateSegments, "segments", rendered)
		}

		for _, id := range ids {
			named := g.Task(id).Named
			disambiguated[id] = named.Segments.WithOverride(named.EnclosingDeclaration)
		}
	}
	return disambiguated, nil
}

// resolveGoals resolves targetNames to task IDs, expanding the reserved name "all" to
// every named task in the graph rather than looking it up, since the config loader
// refuses to let any declared task use that name.
func resolveGoals(g *domain.Graph, targetNames []string) ([]domain.TaskID, error) {
	goals := make([]domain.TaskID, 0, len(targetNames))
	for _, name := range targetNames {
		if name == "all" {
			for id := domain.TaskID(0); int(id) < g.TaskCount(); id++ {
				if g.Task(id).Named != nil {
					goals = append(goals, id)
				}
			}
			continue
		}
		id, ok := g.GetTaskByName(name)
		if !ok {
			return nil, zerr.With(domain.ErrTaskNotFound, "target", name)
		}
		goals = append(goals, id)
	}
	return goals, nil
}

// classify tells the planner which tasks head their own group: named tasks are always
// important, and a directly requested anonymous task heads a plain group of its own
// rather than joining whichever other goal happens to consume it. disambiguated supplies
// the override-suffixed Segments for any named task resolveSegmentCollisions had to
// disambiguate; a task absent from it renders its own NamedInfo.Segments unchanged.
func classify(g *domain.Graph, goalSet map[domain.TaskID]bool, disambiguated map[domain.TaskID]domain.Segments) planner.ClassifyFunc {
	return func(id domain.TaskID) planner.Classification {
		task := g.Task(id)
		if task.Named != nil {
			segments := task.Named.Segments
			if override, ok := disambiguated[id]; ok {
				segments = override
			}
			return planner.Important(segments.Render())
		}
		if goalSet[id] {
			return planner.Requested()
		}
		return planner.Anonymous()
	}
}

func groupTerminalNames(groups []domain.Group) []string {
	names := make([]string, len(groups))
	for i, group := range groups {
		if group.Terminal.Labelled {
			names[i] = group.Terminal.Segments.String()
		}
	}
	return names
}

// summarizeFailures reports every failing task per failing terminal, so a build failure
// points at concrete tasks rather than just "something failed".
func summarizeFailures(r results.Results) error {
	err := zerr.New("one or more tasks failed")
	for terminal, entries := range r.Failing {
		label := terminal.Segments.String()
		if !terminal.Labelled {
			label = "<anonymous>"
		}
		for _, entry := range entries {
			err = zerr.With(err, label, describeFailure(entry.Result))
		}
	}
	return err
}

func describeFailure(r domain.Result) string {
	switch r.Kind {
	case domain.ResultFailure:
		return r.Msg
	case domain.ResultException:
		return r.Err.Error()
	default:
		return string(r.Kind)
	}
}
