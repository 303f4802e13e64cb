// Package scheduler runs a planned set of groups across a fixed-size worker pool,
// respecting inter-group dependencies and refusing to run two same-segment groups
// concurrently. See internal/engine/driver for the single-worker sequential alternative.
package scheduler

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/evaluator"
	"go.trai.ch/kiln/internal/observability"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Timing mirrors driver.Timing; kept as a distinct type so the scheduler package has no
// import-time dependency on driver.
type Timing struct {
	Terminal domain.Terminal
	Millis   int64
	Cached   bool
}

// Result is the aggregated state returned once the scheduling loop drains.
type Result struct {
	Results        map[domain.TaskID]domain.Result
	Evaluated      []domain.TaskID
	Timings        []Timing
	SomeTaskFailed bool
	Trace          []observability.TraceEvent
}

type jobOutcome struct {
	group    domain.Group
	newRes   map[domain.TaskID]domain.Result
	newEval  []domain.TaskID
	cached   bool
	elapsed  time.Duration
	tsMicros int64
	tid      int
}

// Scheduler holds the mutable state described in Component Design §4.5. pending,
// inProgress, doneMap are touched only from Run's goroutine; results and evaluated are
// safe for concurrent append from worker goroutines via their own mutexes.
type Scheduler struct {
	graph       *domain.Graph
	groups      []domain.Group
	workerCount int
	failFast    bool
	deps        evaluator.Deps
	tracer      ports.Tracer

	interGroupDeps map[domain.Terminal][]domain.Terminal
	taskSegments   map[domain.Terminal]string

	pending    []domain.Group
	inProgress map[domain.Terminal]bool
	doneMap    map[domain.Terminal]bool

	resultsMu sync.Mutex
	results   map[domain.TaskID]domain.Result

	evaluatedMu sync.Mutex
	evaluated   []domain.TaskID

	timings []Timing
	trace   []observability.TraceEvent

	runStart       time.Time
	someTaskFailed atomic.Bool
	nextCounter    atomic.Int64
	tidCounter     atomic.Int64
}

// New builds a Scheduler for groups, dispatched across workerCount goroutines.
func New(g *domain.Graph, groups []domain.Group, workerCount int, failFast bool, deps evaluator.Deps, tracer ports.Tracer) *Scheduler {
	return &Scheduler{
		graph:       g,
		groups:      groups,
		workerCount: workerCount,
		failFast:    failFast,
		deps:        deps,
		tracer:      tracer,
		pending:     append([]domain.Group(nil), groups...),
		inProgress:  make(map[domain.Terminal]bool),
		doneMap:     make(map[domain.Terminal]bool),
		results:     make(map[domain.TaskID]domain.Result),
	}
}

// Run precomputes inter-group dependencies and drives the scheduling loop of §4.5 to
// completion.
func (s *Scheduler) Run(ctx context.Context) (Result, error) {
	if err := s.precomputeDeps(ctx); err != nil {
		return Result{}, err
	}

	s.runStart = time.Now()

	sem := semaphore.NewWeighted(int64(s.workerCount))
	outcomes := make(chan jobOutcome)
	var wg sync.WaitGroup
	inFlight := 0

	dispatch := func(ready []domain.Group) {
		for _, group := range ready {
			s.inProgress[group.Terminal] = true
			inFlight++
			wg.Add(1)
			go func(g domain.Group) {
				defer wg.Done()
				_ = sem.Acquire(ctx, 1)
				defer sem.Release(1)
				outcomes <- s.runJob(ctx, g)
			}(group)
		}
	}

	dispatch(s.scheduleWork())

	for inFlight > 0 && !(s.failFast && s.someTaskFailed.Load()) {
		out := <-outcomes
		inFlight--

		s.doneMap[out.group.Terminal] = true
		delete(s.inProgress, out.group.Terminal)

		s.resultsMu.Lock()
		for id, r := range out.newRes {
			s.results[id] = r
			if r.IsFailing() {
				s.someTaskFailed.Store(true)
			}
		}
		s.resultsMu.Unlock()

		s.evaluatedMu.Lock()
		s.evaluated = append(s.evaluated, out.newEval...)
		s.evaluatedMu.Unlock()

		s.timings = append(s.timings, Timing{Terminal: out.group.Terminal, Millis: out.elapsed.Milliseconds(), Cached: out.cached})
		s.trace = append(s.trace, observability.TraceEvent{
			Name: out.group.Terminal.Segments.String(),
			Ph:   "X",
			TS:   out.tsMicros,
			Dur:  out.elapsed.Microseconds(),
			PID:  1,
			TID:  out.tid,
			Args: map[string]string{"cached": cachedArg(out.cached)},
		})

		if s.failFast && s.someTaskFailed.Load() {
			s.abortUnstarted()
			break
		}

		dispatch(s.scheduleWork())
	}

	// Drain any jobs still in flight after a fail-fast break so their goroutines don't
	// leak, without letting their results overwrite the Aborted markers just written.
	go func() {
		wg.Wait()
		close(outcomes)
	}()
	for out := range outcomes {
		s.resultsMu.Lock()
		for id, r := range out.newRes {
			if _, already := s.results[id]; !already {
				s.results[id] = r
			}
		}
		s.resultsMu.Unlock()
	}

	return Result{
		Results:        s.results,
		Evaluated:      s.evaluated,
		Timings:        s.timings,
		SomeTaskFailed: s.someTaskFailed.Load(),
		Trace:          s.trace,
	}, nil
}

func cachedArg(cached bool) string {
	if cached {
		return "cached"
	}
	return ""
}

// abortUnstarted marks every task in a not-yet-dispatched group Aborted, per §7's
// fail-fast policy: goals that never started are reported as Aborted rather than left
// absent from Results.
func (s *Scheduler) abortUnstarted() {
	s.resultsMu.Lock()
	defer s.resultsMu.Unlock()
	for _, group := range s.pending {
		for _, id := range group.Tasks {
			if _, ok := s.results[id]; !ok {
				s.results[id] = domain.Aborted()
			}
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, group domain.Group) jobOutcome {
	tid := int(s.tidCounter.Add(1)-1) % s.workerCount
	start := time.Now()
	tsMicros := start.Sub(s.runStart).Microseconds()

	if s.failFast && s.someTaskFailed.Load() {
		aborted := make(map[domain.TaskID]domain.Result, len(group.Tasks))
		for _, id := range group.Tasks {
			aborted[id] = domain.Aborted()
		}
		return jobOutcome{group: group, newRes: aborted, tid: tid, tsMicros: tsMicros}
	}

	counterMsg := strconv.FormatInt(s.nextCounter.Add(1), 10) + "/" + strconv.Itoa(len(s.groups))

	s.resultsMu.Lock()
	upstream := make(map[domain.TaskID]domain.Result, len(s.results))
	for k, v := range s.results {
		upstream[k] = v
	}
	s.resultsMu.Unlock()

	_, span := s.tracer.Start(ctx, spanName(group.Terminal))
	out, err := evaluator.EvaluateGroupCached(s.graph, group.Terminal, group, upstream, counterMsg, s.deps)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.End()
		return jobOutcome{
			group:    group,
			newRes:   map[domain.TaskID]domain.Result{group.Head(): domain.Exception(err, "")},
			elapsed:  elapsed,
			tsMicros: tsMicros,
			tid:      tid,
		}
	}

	span.SetAttribute("cached", out.Cached)
	span.End()

	return jobOutcome{
		group:    group,
		newRes:   out.NewResults,
		newEval:  out.NewEvaluated,
		cached:   out.Cached,
		elapsed:  elapsed,
		tsMicros: tsMicros,
		tid:      tid,
	}
}

// spanName derives a human-readable span identity for a group: the rendered segment path
// for a labelled terminal, or "anonymous" for an anonymous one.
func spanName(terminal domain.Terminal) string {
	if terminal.Labelled {
		return terminal.Segments.String()
	}
	return "anonymous"
}

// precomputeDeps builds interGroupDeps and taskSegments per §4.5, fanning the per-group
// computation out across an errgroup since each group's dependency set is derived purely
// from its own member tasks' inputs.
func (s *Scheduler) precomputeDeps(ctx context.Context) error {
	s.interGroupDeps = make(map[domain.Terminal][]domain.Terminal, len(s.groups))
	s.taskSegments = make(map[domain.Terminal]string, len(s.groups))

	owner := make(map[domain.TaskID]domain.Terminal, s.graph.TaskCount())
	for _, group := range s.groups {
		for _, id := range group.Tasks {
			owner[id] = group.Terminal
		}
		if group.Terminal.Labelled {
			s.taskSegments[group.Terminal] = group.Terminal.Segments.String()
		}
	}

	var depsMu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, group := range s.groups {
		group := group
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			inGroup := make(map[domain.TaskID]bool, len(group.Tasks))
			for _, id := range group.Tasks {
				inGroup[id] = true
			}
			seen := make(map[domain.Terminal]bool)
			var deps []domain.Terminal
			for _, id := range group.Tasks {
				for _, input := range s.graph.Task(id).Inputs {
					if inGroup[input] {
						continue
					}
					dep := owner[input]
					if dep == group.Terminal || seen[dep] {
						continue
					}
					seen[dep] = true
					deps = append(deps, dep)
				}
			}
			depsMu.Lock()
			s.interGroupDeps[group.Terminal] = deps
			depsMu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// scheduleWork implements §4.5's selection algorithm: scan pending in order, taking
// groups whose prerequisites are all done and whose segments don't collide with anything
// already running or already selected this round, stopping early once a collision is
// observed or the overscan cap is reached.
func (s *Scheduler) scheduleWork() []domain.Group {
	if len(s.pending) == 0 || len(s.inProgress) > s.workerCount {
		return nil
	}

	oldSeen := make(map[string]bool, len(s.inProgress))
	for t := range s.inProgress {
		if seg, ok := s.taskSegments[t]; ok {
			oldSeen[seg] = true
		}
	}

	newSeen := make(map[string]bool)
	var taken []domain.Group
	var remaining []domain.Group
	collisionsFree := true

	for i, group := range s.pending {
		if len(taken) >= 1 && (!collisionsFree || len(taken) >= 2*s.workerCount) {
			remaining = append(remaining, s.pending[i:]...)
			break
		}

		ready := true
		for _, dep := range s.interGroupDeps[group.Terminal] {
			if !s.doneMap[dep] {
				ready = false
				break
			}
		}
		if !ready {
			remaining = append(remaining, group)
			continue
		}

		if seg, ok := s.taskSegments[group.Terminal]; ok {
			if oldSeen[seg] || newSeen[seg] {
				collisionsFree = false
				remaining = append(remaining, group)
				continue
			}
			newSeen[seg] = true
		}

		taken = append(taken, group)
	}

	s.pending = remaining
	return taken
}
