// Package driver runs a planned sequence of groups on a single goroutine, in the order
// the planner produced them. It is selected whenever the configured worker count is 1;
// see internal/engine/scheduler for the parallel alternative.
package driver

import (
	"context"
	"strconv"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/evaluator"
)

// Timing records one group's wall-clock cost, in group-completion order.
type Timing struct {
	Terminal domain.Terminal
	Millis   int64
	Cached   bool
}

// Run evaluates every group in sortedGroups, in order. On a fail-fast trip it marks every
// remaining group's tasks Aborted without invoking their bodies, matching the parallel
// scheduler's fail-fast semantics so a single-worker and multi-worker run agree on
// end-state.
func Run(
	ctx context.Context,
	g *domain.Graph,
	groups []domain.Group,
	deps evaluator.Deps,
	failFast bool,
	tracer ports.Tracer,
) (results map[domain.TaskID]domain.Result, evaluated []domain.TaskID, timings []Timing, someTaskFailed bool) {
	results = make(map[domain.TaskID]domain.Result)
	evaluated = make([]domain.TaskID, 0)
	timings = make([]Timing, 0, len(groups))

	total := len(groups)
	for i, group := range groups {
		if failFast && someTaskFailed {
			for _, id := range group.Tasks {
				results[id] = domain.Aborted()
			}
			timings = append(timings, Timing{Terminal: group.Terminal, Millis: 0, Cached: false})
			continue
		}

		counterMsg := formatCounter(i+1, total)
		_, span := tracer.Start(ctx, spanName(group.Terminal))
		start := time.Now()
		out, err := evaluator.EvaluateGroupCached(g, group.Terminal, group, results, counterMsg, deps)
		elapsed := time.Since(start)

		if err != nil {
			span.RecordError(err)
			span.End()
			results[group.Head()] = domain.Exception(err, "")
			someTaskFailed = true
			timings = append(timings, Timing{Terminal: group.Terminal, Millis: elapsed.Milliseconds(), Cached: false})
			continue
		}

		for id, r := range out.NewResults {
			results[id] = r
			if r.IsFailing() {
				someTaskFailed = true
			}
		}
		span.SetAttribute("cached", out.Cached)
		span.End()
		evaluated = append(evaluated, out.NewEvaluated...)
		timings = append(timings, Timing{Terminal: group.Terminal, Millis: elapsed.Milliseconds(), Cached: out.Cached})
	}

	return results, evaluated, timings, someTaskFailed
}

func formatCounter(k, n int) string {
	return strconv.Itoa(k) + "/" + strconv.Itoa(n)
}

// spanName derives a human-readable span identity for a group: the rendered segment path
// for a labelled terminal, or "anonymous" for an anonymous one.
func spanName(terminal domain.Terminal) string {
	if terminal.Labelled {
		return terminal.Segments.String()
	}
	return "anonymous"
}
