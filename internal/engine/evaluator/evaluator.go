// Package evaluator computes the value of a single group: the terminal task that heads it
// plus every anonymous task strung between it and its nearest upstream named consumer.
// EvaluateGroupCached adds the disk- and worker-cache probes around the pure evaluation
// evaluateGroup performs.
package evaluator

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime/debug"

	"go.trai.ch/kiln/internal/adapters/cas" //nolint:depguard // wired in engine wiring
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/hashing"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/observability"
	"go.trai.ch/zerr"
)

// Deps bundles the evaluator's external collaborators. All fields are required except
// OutputVerifier, which is nil when no task in the run declares Outputs.
type Deps struct {
	MetaStore      ports.MetaStore
	OutputVerifier ports.OutputVerifier
	Workers        *WorkerCache
	Logger         domain.Logger
	Home           string
	Env            map[string]string
	Problems       domain.ProblemReporter
	Tests          domain.TestReporter
	Jobs           int

	OutRoot         string
	ExternalOutRoot string
	ClassLoaderSig  int32
}

// Evaluated is the result of evaluating one group: the results contributed for each of
// its member tasks, the subset that were actually executed (as opposed to short-circuited
// by a cache hit), and whether the whole group was served from cache.
type Evaluated struct {
	NewResults   map[domain.TaskID]domain.Result
	NewEvaluated []domain.TaskID
	Cached       bool
}

// destGuard enforces invariant I5: at most one task per group invocation may acquire the
// scratch directory. A repeat call from the owning task gets the same path back; a call
// from any other task fails with an error naming the owner and its acquisition stack.
type destGuard struct {
	path       string
	owner      domain.TaskID
	ownerStack string
	acquired   bool
}

func (d *destGuard) acquire(caller domain.TaskID, mkdir func(string) error) (string, error) {
	if !d.acquired {
		if d.path == "" {
			return "", domain.ErrDestUnavailable
		}
		if err := mkdir(d.path); err != nil {
			return "", zerr.Wrap(err, "failed to create scratch directory")
		}
		d.acquired = true
		d.owner = caller
		d.ownerStack = string(debug.Stack())
		return d.path, nil
	}
	if d.owner == caller {
		return d.path, nil
	}
	return "", zerr.With(zerr.With(zerr.With(domain.ErrDestAlreadyAcquired,
		"owner_task", int32(d.owner)),
		"owner_stack", d.ownerStack),
		"caller_task", int32(caller),
	)
}

// EvaluateGroupCached is the cached entry point described in Component Design §4.3: it
// resolves inputsHash, and for a labelled terminal probes the worker cache and then the
// on-disk meta.json before falling through to a real evaluation.
func EvaluateGroupCached(
	g *domain.Graph,
	terminal domain.Terminal,
	group domain.Group,
	upstream map[domain.TaskID]domain.Result,
	counterMsg string,
	deps Deps,
) (Evaluated, error) {
	inputsHash := computeInputsHash(g, group, upstream, deps.ClassLoaderSig)

	if !terminal.Labelled {
		newResults, newEvaluated := evaluateGroup(g, group, upstream, inputsHash, nil, counterMsg, "", deps)
		return Evaluated{NewResults: newResults, NewEvaluated: newEvaluated}, nil
	}

	task := g.Task(terminal.Task)
	named := task.Named
	label := named.Segments.Display()

	root := deps.OutRoot
	if named.External {
		root = deps.ExternalOutRoot
	}
	paths := hashing.ResolvePaths(root, named.ForeignPrefix, named.Segments.Render())
	if err := os.MkdirAll(paths.Out, 0o755); err != nil {
		return Evaluated{}, zerr.Wrap(err, "failed to create terminal output directory")
	}

	if named.Worker {
		if v, ok := deps.Workers.Get(terminal.Segments.String(), inputsHash); ok {
			return Evaluated{
				NewResults:   map[domain.TaskID]domain.Result{terminal.Task: domain.Success(v, inputsHash)},
				NewEvaluated: nil,
				Cached:       true,
			}, nil
		}
	}

	if named.Format != nil {
		if rec, ok, err := deps.MetaStore.Get(paths.Meta); err == nil && ok && rec.InputsHash == inputsHash {
			if v, parseErr := named.Format.Read(rec.Value); parseErr == nil {
				if outputsStillValid(deps, paths.Out, named) {
					return Evaluated{
						NewResults:   map[domain.TaskID]domain.Result{terminal.Task: domain.Success(v, rec.ValueHash)},
						NewEvaluated: nil,
						Cached:       true,
					}, nil
				}
			}
		}
	}

	if task.FlushDest {
		if err := os.RemoveAll(paths.Dest); err != nil {
			return Evaluated{}, zerr.Wrap(err, "failed to flush scratch directory")
		}
	}

	newResults, newEvaluated := evaluateGroup(g, group, upstream, inputsHash, &paths, counterMsg, label, deps)

	result := newResults[terminal.Task]
	if v, hash, ok := result.Partial(); ok && (result.IsSuccess() || result.Kind == domain.ResultFailure) {
		if named.Format == nil {
			_ = deps.MetaStore.Delete(paths.Meta)
		} else if data, err := named.Format.Write(v); err == nil {
			_ = deps.MetaStore.Put(paths.Meta, domain.CachedRecord{
				Value:      json.RawMessage(data),
				ValueHash:  hash,
				InputsHash: inputsHash,
			})
			writeOutputRecord(deps, paths.Out, named)
		} else {
			_ = deps.MetaStore.Delete(paths.Meta)
		}
	} else {
		_ = deps.MetaStore.Delete(paths.Meta)
	}

	if named.Worker && result.IsSuccess() {
		deps.Workers.Put(terminal.Segments.String(), inputsHash, result.Value)
	}

	return Evaluated{NewResults: newResults, NewEvaluated: newEvaluated}, nil
}

// outputsStillValid additionally hashes a labelled terminal's declared outputs on a
// cache hit and compares against the hash recorded alongside meta.json, so an output
// deleted or modified out-of-band forces a miss even though InputsHash still matches.
func outputsStillValid(deps Deps, outRoot string, named *domain.NamedInfo) bool {
	if len(named.Outputs) == 0 || deps.OutputVerifier == nil {
		return true
	}
	ok, err := deps.OutputVerifier.VerifyOutputs(outRoot, named.Outputs)
	if err != nil || !ok {
		return false
	}
	recorded, found, err := cas.ReadOutputRecord(outRoot)
	if err != nil || !found {
		return false
	}
	hash, err := deps.OutputVerifier.HashOutputs(outRoot, named.Outputs)
	if err != nil {
		return false
	}
	return hash == recorded.OutputHash
}

func writeOutputRecord(deps Deps, outRoot string, named *domain.NamedInfo) {
	if len(named.Outputs) == 0 || deps.OutputVerifier == nil {
		return
	}
	hash, err := deps.OutputVerifier.HashOutputs(outRoot, named.Outputs)
	if err != nil {
		return
	}
	_ = cas.WriteOutputRecord(outRoot, domain.OutputRecord{Outputs: named.Outputs, OutputHash: hash})
}

// computeInputsHash implements §4.2's formula: the hash of upstream value-hashes for
// inputs outside the group, plus the hash of every member task's own SideHash, plus the
// run-wide class-loader signature.
func computeInputsHash(g *domain.Graph, group domain.Group, upstream map[domain.TaskID]domain.Result, classLoaderSig int32) int32 {
	inGroup := make(map[domain.TaskID]bool, len(group.Tasks))
	for _, id := range group.Tasks {
		inGroup[id] = true
	}

	var externalHashes []int32
	var sideHashes []int32
	seenExternal := make(map[domain.TaskID]bool)
	for _, id := range group.Tasks {
		task := g.Task(id)
		sideHashes = append(sideHashes, task.SideHash)
		for _, input := range task.Inputs {
			if inGroup[input] || seenExternal[input] {
				continue
			}
			seenExternal[input] = true
			externalHashes = append(externalHashes, upstream[input].Hash)
		}
	}

	return hashing.InputsHash(externalHashes, sideHashes, classLoaderSig)
}

// evaluateGroup runs every member task in group-topological order, threading results
// forward through newResults and falling back to upstream for inputs owned by other
// groups. It never touches the disk or worker cache; EvaluateGroupCached is responsible
// for that.
func evaluateGroup(
	g *domain.Graph,
	group domain.Group,
	upstream map[domain.TaskID]domain.Result,
	inputsHash int32,
	paths *hashing.Paths,
	counterMsg string,
	label string,
	deps Deps,
) (map[domain.TaskID]domain.Result, []domain.TaskID) {
	newResults := make(map[domain.TaskID]domain.Result, len(group.Tasks))
	newEvaluated := make([]domain.TaskID, 0, len(group.Tasks))

	guard := &destGuard{}
	if paths != nil {
		guard.path = paths.Dest
	}

	lookup := func(id domain.TaskID) (domain.Result, bool) {
		if r, ok := newResults[id]; ok {
			return r, true
		}
		if r, ok := upstream[id]; ok {
			return r, true
		}
		return domain.Result{}, false
	}

	for _, id := range group.Tasks {
		task := g.Task(id)

		inputs := make([]any, 0, len(task.Inputs))
		skip := false
		for _, dep := range task.Inputs {
			res, ok := lookup(dep)
			if !ok || !res.IsSuccess() {
				skip = true
				break
			}
			inputs = append(inputs, res.Value)
		}

		if skip {
			newResults[id] = domain.Skipped()
			newEvaluated = append(newEvaluated, id)
			continue
		}

		newResults[id] = evaluateTask(task, inputs, inputsHash, guard, counterMsg, label, deps)
		newEvaluated = append(newEvaluated, id)
	}

	return newResults, newEvaluated
}

func evaluateTask(
	task domain.Task,
	inputs []any,
	inputsHash int32,
	guard *destGuard,
	counterMsg string,
	label string,
	deps Deps,
) (result domain.Result) {
	taskID := task.ID
	destFn := func() (string, error) {
		return guard.acquire(taskID, func(p string) error { return os.MkdirAll(p, 0o755) })
	}

	scoped := observability.NewScopedLogger(deps.Logger, counterMsg, label)
	ctx := domain.NewContext(inputs, destFn, scoped, deps.Home, deps.Env, deps.Problems, deps.Tests, deps.Jobs)

	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			result = domain.Exception(err, string(debug.Stack()))
		}
	}()

	result = task.Body(ctx)

	if _, _, hasValue := result.Partial(); hasValue {
		hash := inputsHash
		if !task.IsWorker() {
			if h, err := hashing.StructuralHash(result.Value); err == nil {
				hash = h
			}
		}
		result.Hash = hash
	}

	return result
}
