package ports

import "go.trai.ch/kiln/internal/core/domain"

// MetaStore reads and writes the meta.json a labelled terminal's CachedRecord persists
// to, addressed by its full resolved path (internal/core/hashing.Paths.Meta) rather than
// by task name — the one-file-per-flat-store of the teacher's original BuildInfoStore
// becomes one-file-per-terminal, per spec §3/§6.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type MetaStore interface {
	// Get reads and parses the CachedRecord at path. A missing or corrupt file returns
	// (nil, false, nil): per Design Notes open question 2, a bad meta file must never
	// crash the build, only force a miss.
	Get(path string) (*domain.CachedRecord, bool, error)

	// Put atomically writes rec to path, pretty-printed with 4-space indent, creating
	// parent directories as needed.
	Put(path string, rec domain.CachedRecord) error

	// Delete removes the file at path. Deleting an already-absent file is not an error
	// (invariant I4 calls this unconditionally on any non-Success group outcome).
	Delete(path string) error
}
