// Package config loads a kiln.yaml build declaration into a domain.Graph: one labelled
// task per declared entry, its command wired into a domain.Body that shells out through
// ports.Executor, its scratch environment built through ports.EnvironmentFactory, its
// SideHash derived from its declared input globs through ports.FileHasher, and its
// override count resolved through a ports.ModuleDiscovery built from the file's own
// Classes table.
package config

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/kiln/internal/adapters/discovery"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the build declaration file Loader looks for when none is configured.
const DefaultFilename = "kiln.yaml"

// Kilnfile is the top-level shape of a kiln.yaml build declaration.
type Kilnfile struct {
	Version string             `yaml:"version"`
	Tasks   map[string]TaskDTO `yaml:"tasks"`
	// Classes registers, per command class, how many overrides of that class's default
	// entry point exist. A task's Class field is looked up here to resolve its
	// NamedInfo.Overrides before any segment collision check runs.
	Classes map[string]discovery.Entry `yaml:"classes"`
}

// TaskDTO is a single task's declaration within a Kilnfile.
type TaskDTO struct {
	// Input lists glob patterns (resolved under the loader's cwd) that feed this task's
	// SideHash: any change to a matched file's path set or content forces a cache miss.
	Input []string `yaml:"input"`
	// Cmd is the argv this task's body executes on a cache miss.
	Cmd []string `yaml:"cmd"`
	// Target declares the filesystem outputs this task's command produces, relative to its
	// working directory; also becomes the task's success Value.
	Target []string `yaml:"target"`
	// DependsOn names sibling tasks this one consumes as upstream inputs.
	DependsOn []string `yaml:"dependsOn"`
	// Environment is layered on top of the run's ambient environment for this task alone.
	Environment map[string]string `yaml:"environment"`
	// Worker marks the task as a long-lived in-memory singleton (domain.NamedInfo.Worker).
	Worker bool `yaml:"worker"`
	// FlushDest wipes the task's scratch directory before every cache-miss invocation.
	FlushDest bool `yaml:"flushDest"`
	// External routes this task's on-disk outputs to the external-module workspace.
	External bool `yaml:"external"`
	// Class names this task's entry in the Kilnfile's Classes table, used to resolve its
	// NamedInfo.Overrides via ModuleDiscovery. Empty means no class, override count 0.
	Class string `yaml:"class"`
	// Platforms declares the cross-axis values (e.g. a Scala/JVM-platform matrix cell)
	// this task is built for. When non-empty, they become a domain.Cross segment appended
	// to the task's Segments, flattened as a path sibling alongside its Label.
	Platforms []string `yaml:"platforms"`
}

// Loader implements ports.ConfigLoader against a kiln.yaml file, wiring each declared
// task's command through Executor, its environment through EnvFactory, and its
// input-file fingerprint through Hasher.
type Loader struct {
	Filename   string
	Executor   ports.Executor
	EnvFactory ports.EnvironmentFactory
	Hasher     ports.FileHasher
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader constructs a Loader with the default kiln.yaml filename.
func NewLoader(executor ports.Executor, envFactory ports.EnvironmentFactory, hasher ports.FileHasher) *Loader {
	return &Loader{
		Filename:   DefaultFilename,
		Executor:   executor,
		EnvFactory: envFactory,
		Hasher:     hasher,
	}
}

// Load reads the build declaration under cwd and returns its domain.Graph.
func (l *Loader) Load(cwd string) (*domain.Graph, error) {
	filename := l.Filename
	if filename == "" {
		filename = DefaultFilename
	}
	path := filepath.Join(cwd, filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is a resolved project-relative config path, not user input
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Kilnfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	order, err := topoSortNames(file.Tasks)
	if err != nil {
		return nil, err
	}

	moduleDiscovery := discovery.NewRegistry(file.Classes)

	g := domain.NewGraph()
	ids := make(map[string]domain.TaskID, len(order))

	for _, name := range order {
		dto := file.Tasks[name]

		inputs := make([]domain.TaskID, 0, len(dto.DependsOn))
		for _, dep := range dto.DependsOn {
			inputs = append(inputs, ids[dep])
		}

		sideHash, err := l.sideHash(cwd, dto.Input)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to hash task inputs"), "task_name", name)
		}

		overrideCount, entryPoint, _ := moduleDiscovery.Discover(dto.Class)

		segments := domain.Segments{domain.Label(name)}
		if len(dto.Platforms) > 0 {
			segments = append(segments, domain.Cross(dto.Platforms...))
		}

		named := &domain.NamedInfo{
			Segments:             segments,
			Overrides:            overrideCount,
			EnclosingDeclaration: entryPoint,
			External:             dto.External,
			Worker:               dto.Worker,
			Format:               outputsFormat{},
			Outputs:               dto.Target,
		}

		body := l.taskBody(cwd, dto)

		id, err := g.AddTask(name, inputs, sideHash, dto.FlushDest, body, named)
		if err != nil {
			return nil, err
		}
		ids[name] = id
	}

	return g, nil
}

// taskBody closes over dto and returns the domain.Body the task's group evaluation
// invokes on a cache miss.
func (l *Loader) taskBody(cwd string, dto TaskDTO) domain.Body {
	return func(ctx *domain.Context) domain.Result {
		env, err := l.EnvFactory.BuildEnv(dto.Environment)
		if err != nil {
			return domain.Failure(err.Error())
		}

		workDir := cwd
		if dest, destErr := ctx.Dest(); destErr == nil && dest != "" {
			workDir = dest
		}

		if err := l.Executor.Execute(context.Background(), dto.Cmd, workDir, env, ctx.Logger.OutStream(), ctx.Logger.ErrStream()); err != nil {
			return domain.Failure(err.Error())
		}

		return domain.Success(dto.Target, 0)
	}
}

func (l *Loader) sideHash(cwd string, patterns []string) (int32, error) {
	if len(patterns) == 0 {
		return 0, nil
	}
	return l.Hasher.HashFiles(cwd, patterns)
}

// topoSortNames orders tasks so every dependency precedes its dependents, validating that
// every declared dependency exists, that "all" is not used as a task name (it is reserved
// for the CLI's implicit goal aggregating every named task), and that no dependency cycle
// exists.
func topoSortNames(tasks map[string]TaskDTO) ([]string, error) {
	for name := range tasks {
		if name == "all" {
			return nil, zerr.With(zerr.New("task name 'all' is reserved"), "task_name", name)
		}
	}
	for name, dto := range tasks {
		for _, dep := range dto.DependsOn {
			if _, ok := tasks[dep]; !ok {
				return nil, zerr.With(zerr.With(zerr.New("missing dependency"), "task_name", name), "missing_dependency", dep)
			}
		}
	}

	inDegree := make(map[string]int, len(tasks))
	dependents := make(map[string][]string, len(tasks))
	for name, dto := range tasks {
		inDegree[name] = len(dto.DependsOn)
		for _, dep := range dto.DependsOn {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for name := range tasks {
		if inDegree[name] == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(tasks))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)

		freed := dependents[name]
		sort.Strings(freed)
		for _, dependent := range freed {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = insertSorted(ready, dependent)
			}
		}
	}

	if len(order) != len(tasks) {
		return nil, domain.ErrCycleDetected
	}
	return order, nil
}

// insertSorted inserts name into a sorted slice, keeping it sorted.
func insertSorted(sorted []string, name string) []string {
	i := 0
	for i < len(sorted) && sorted[i] < name {
		i++
	}
	sorted = append(sorted, "")
	copy(sorted[i+1:], sorted[i:])
	sorted[i] = name
	return sorted
}
