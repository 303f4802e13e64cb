// Package results assembles and persists the final state of a run: the requested goals'
// values, the multimap of failing tasks per terminal, and the timing/trace profiles.
package results

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/observability"
	"go.trai.ch/zerr"
)

// Timing is the common shape driver.Timing and scheduler.Timing both reduce to before
// persistence, so Assemble doesn't need to import either engine package.
type Timing struct {
	Terminal domain.Terminal
	Millis   int64
	Cached   bool
}

// FailingEntry pairs a failed task with its Result, for Results.Failing. A plain
// map-of-slices rather than domain.MultiBiMap: MultiBiMap enforces that each value
// belongs to exactly one key, which fits Group membership but not failures, since two
// unrelated tasks can easily produce byte-for-byte identical Result values (e.g. two
// Skipped{}).
type FailingEntry struct {
	Task   domain.TaskID
	Result domain.Result
}

// Results is the assembled outcome of a run, per §4.6.
type Results struct {
	RawValues []any
	Failing   map[domain.Terminal][]FailingEntry
	Evaluated []domain.TaskID
	Timings   []Timing
}

// Assemble builds Results from the terminal run state. goals and their owning terminals
// must be given in request order; a missing goal result is an internal-invariant
// violation (ErrGoalResultMissing), not a user-facing error.
func Assemble(
	goals []domain.TaskID,
	resultsByTask map[domain.TaskID]domain.Result,
	groups []domain.Group,
	evaluated []domain.TaskID,
	timings []Timing,
) (Results, error) {
	rawValues := make([]any, len(goals))
	for i, goal := range goals {
		r, ok := resultsByTask[goal]
		if !ok {
			return Results{}, zerr.With(domain.ErrGoalResultMissing, "goal_task", int32(goal))
		}
		if r.IsSuccess() {
			rawValues[i] = r.Value
		}
	}

	failing := make(map[domain.Terminal][]FailingEntry)
	for _, group := range groups {
		for _, id := range group.Tasks {
			r, ok := resultsByTask[id]
			if !ok || r.IsSuccess() {
				continue
			}
			failing[group.Terminal] = append(failing[group.Terminal], FailingEntry{Task: id, Result: r})
		}
	}

	return Results{
		RawValues: rawValues,
		Failing:   failing,
		Evaluated: evaluated,
		Timings:   timings,
	}, nil
}

type profileEntry struct {
	Label  *string `json:"label"`
	Millis int64   `json:"millis"`
	Cached bool    `json:"cached"`
}

// NewRunID generates a fresh run identifier for stamping this invocation's profile
// filenames, so two concurrent kiln invocations against the same outRoot never clobber
// each other's profile output.
func NewRunID() string {
	return uuid.New().String()
}

// WriteProfile persists timings to "<outRoot>/mill-profile-<runID>.json", §6's format: a
// pretty-printed array with label = terminal.segments.render(), or null for an anonymous
// terminal.
func WriteProfile(outRoot, runID string, timings []Timing) error {
	entries := make([]profileEntry, len(timings))
	for i, t := range timings {
		var label *string
		if t.Terminal.Labelled {
			s := t.Terminal.Segments.String()
			label = &s
		}
		entries[i] = profileEntry{Label: label, Millis: t.Millis, Cached: t.Cached}
	}

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal mill-profile.json")
	}
	if err := os.MkdirAll(outRoot, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create run output directory")
	}
	if err := os.WriteFile(filepath.Join(outRoot, profileFilename(runID)), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write mill-profile.json")
	}
	return nil
}

// WriteParallelProfile persists the Chrome Trace Event Format array to
// "<outRoot>/mill-par-profile-<runID>.json", the parallel-scheduler-only companion to
// mill-profile.json.
func WriteParallelProfile(outRoot, runID string, events []observability.TraceEvent) error {
	if err := os.MkdirAll(outRoot, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create run output directory")
	}
	f, err := os.Create(filepath.Join(outRoot, parallelProfileFilename(runID)))
	if err != nil {
		return zerr.Wrap(err, "failed to create mill-par-profile.json")
	}
	defer f.Close()
	return observability.WriteTraceEvents(f, events)
}

func profileFilename(runID string) string {
	if runID == "" {
		return "mill-profile.json"
	}
	return "mill-profile-" + runID + ".json"
}

func parallelProfileFilename(runID string) string {
	if runID == "" {
		return "mill-par-profile.json"
	}
	return "mill-par-profile-" + runID + ".json"
}
