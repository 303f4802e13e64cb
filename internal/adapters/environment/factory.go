// Package environment implements ports.EnvironmentFactory by layering a task's declared
// overrides on top of the ambient process environment, the same role the teacher's Nix
// adapter played for hermetic toolchains, generalized here to plain process environment
// inheritance since no package-resolution surface is in scope.
package environment

import (
	"os"
	"sort"
	"strings"

	"go.trai.ch/kiln/internal/core/ports"
)

var _ ports.EnvironmentFactory = (*Factory)(nil)

// Factory builds a task's process environment from the ambient environment plus a set of
// base overrides common to every task (e.g. a project-wide PATH prefix), with per-task
// overrides applied last.
type Factory struct {
	base map[string]string
}

// NewFactory creates a Factory whose every BuildEnv call starts from os.Environ() with base
// layered on top. base is typically project-wide settings from the build declaration's top
// level (cache directories, shared tool paths).
func NewFactory(base map[string]string) *Factory {
	return &Factory{base: base}
}

// BuildEnv returns "KEY=VALUE" entries for the ambient environment with f.base and then
// taskEnv layered on top, in that precedence order, sorted for deterministic process
// environments across identical calls.
func (f *Factory) BuildEnv(taskEnv map[string]string) ([]string, error) {
	merged := make(map[string]string)

	for _, entry := range os.Environ() {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			merged[k] = v
		}
	}
	for k, v := range f.base {
		merged[k] = v
	}
	for k, v := range taskEnv {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+merged[k])
	}
	return env, nil
}
