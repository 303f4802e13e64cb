package domain

// TaskID is a stable arena index identifying a Task within a Graph. IDs are assigned in
// insertion order and never reused, which sidesteps cyclic ownership between tasks that
// would otherwise require pointers or interned names for graph edges.
type TaskID int32

// Body is the user-supplied unit of work a Task wraps. It receives an evaluation Context
// and returns a Result; the task-definition surface that produces bodies (how a user
// declares a target, its command, its worker nature) lives outside the core — see
// SPEC_FULL.md AMBIENT STACK.
type Body func(ctx *Context) Result

// NamedInfo is present on a Task when it is "important": a named task around which a
// Group is formed and which carries persistent on-disk cache paths. Anonymous tasks have
// no NamedInfo.
type NamedInfo struct {
	// Segments identifies the task in the hierarchical namespace before any override
	// disambiguation. Two named tasks may render identical Segments; the composition root
	// resolves that collision before classification, consulting Overrides and
	// EnclosingDeclaration to decide whether Segments.WithOverride applies or the
	// collision is a genuine error.
	Segments Segments

	// Overrides is the number of command overrides resolved for this task's declaration,
	// via ports.ModuleDiscovery. Two named tasks whose rendered Segments collide are
	// disambiguated only if their Overrides differ; identical Overrides on a collision is
	// ErrDuplicateSegments.
	Overrides int

	// EnclosingDeclaration is the entry-point path ports.ModuleDiscovery resolved for this
	// task's declaring class, appended via Segments.WithOverride when a segment collision
	// needs disambiguating. Empty when the task declares no class.
	EnclosingDeclaration string

	// External routes this task's on-disk outputs to a separate external-module workspace
	// rather than the run's own `out` tree.
	External bool

	// ForeignPrefix is prepended to Segments when resolving on-disk paths, for a terminal
	// that lives under a cross-module reference rather than the current module's own
	// namespace. Empty for an ordinary same-module terminal.
	ForeignPrefix string

	// Worker marks this task as a long-lived in-memory singleton: its result is cached in
	// the process-wide worker cache keyed by Segments rather than persisted to disk.
	Worker bool

	// Format (de)serializes this terminal's value for meta.json persistence. A nil Format
	// forces every disk-cache probe to miss, since evaluateGroupCached has nothing to
	// deserialize the stored value with.
	Format ValueFormat

	// Outputs declares filesystem paths (relative to the terminal's out directory) the
	// task body is expected to have produced. When non-empty, the evaluator additionally
	// hashes these on every cache hit and treats a mismatch as a miss, independent of
	// InputsHash — see OutputRecord.
	Outputs []string
}

// Task is an immutable node in the build graph. Two properties are load-bearing for
// caching: SideHash contributes to the group's input fingerprint independently of any
// upstream value, and FlushDest controls whether the scratch directory is wiped before
// each cache-miss invocation.
type Task struct {
	ID       TaskID
	Name     string // debug-only label; not an identity, unlike a NamedInfo.Segments path
	Inputs   []TaskID
	SideHash int32

	FlushDest bool
	Body      Body

	// Named is nil for anonymous tasks.
	Named *NamedInfo
}

// IsNamed reports whether this task is an "important" node with a NamedInfo.
func (t Task) IsNamed() bool {
	return t.Named != nil
}

// IsWorker reports whether this task is a long-lived in-memory singleton.
func (t Task) IsWorker() bool {
	return t.Named != nil && t.Named.Worker
}
