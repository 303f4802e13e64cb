package ports

// FileHasher computes a deterministic 32-bit hash over a set of file-glob patterns
// resolved under root. internal/core/hashing's OrderedHash/StructuralHash cover the
// pure group-fingerprint math; FileHasher is the filesystem-facing collaborator a task
// body or the config loader uses to turn "these source files" into the side-hash integer
// domain.Task.SideHash carries.
//
//go:generate go run go.uber.org/mock/mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type FileHasher interface {
	// HashFiles resolves patterns under root (globs and directories both allowed) and
	// returns a hash stable under file-order but sensitive to content and path.
	HashFiles(root string, patterns []string) (int32, error)
}
