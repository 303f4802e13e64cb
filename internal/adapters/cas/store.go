// Package cas implements the on-disk meta.json store: one small JSON file per labelled
// terminal, addressed by its full resolved path rather than by task name.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.MetaStore against the local filesystem.
type Store struct{}

// NewStore creates a Store. It carries no state of its own: every operation is addressed
// by the caller's fully-resolved meta.json path.
func NewStore() *Store {
	return &Store{}
}

// Get reads and parses the CachedRecord at path. A missing or corrupt file is reported as
// a miss, not an error — per Design Notes open question 2, a damaged cache file must
// never crash the build.
func (s *Store) Get(path string) (*domain.CachedRecord, bool, error) {
	//nolint:gosec // path is a resolved terminal meta.json path, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, nil
	}

	var rec domain.CachedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, nil
	}

	return &rec, true, nil
}

// Put atomically writes rec to path, pretty-printed with 4-space indent, creating parent
// directories as needed. It writes to a sibling temp file and renames it into place so a
// reader never observes a partially-written meta.json.
func (s *Store) Put(path string, rec domain.CachedRecord) error {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cached record")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create meta.json parent directory")
	}

	tmp, err := os.CreateTemp(dir, ".meta-*.json")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file for meta.json")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to write meta.json temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to close meta.json temp file")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to rename meta.json into place")
	}

	return nil
}

// Delete removes the file at path. Deleting an already-absent file is not an error:
// invariant I4 calls Delete unconditionally on any non-Success group outcome.
func (s *Store) Delete(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to delete meta.json")
	}
	return nil
}
