package fs

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileHasher = (*Hasher)(nil)

// Hasher implements ports.FileHasher by resolving each pattern with filepath.Glob and
// folding every matched file's path and content into a single xxhash digest, in
// lexicographically sorted match order so the result is stable regardless of the caller's
// pattern order.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a Hasher backed by walker for recursing into matched directories.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// HashFiles resolves patterns under root (globs and bare directories both allowed) and
// returns a hash sensitive to every matched file's path and content, but stable under
// which order the caller lists patterns in.
func (h *Hasher) HashFiles(root string, patterns []string) (int32, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		full := filepath.Join(root, pattern)

		matches, err := filepath.Glob(full)
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, "failed to glob input pattern"), "pattern", pattern)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(full); statErr != nil {
				return 0, zerr.With(zerr.New("input not found"), "pattern", pattern)
			}
			matches = []string{full}
		}

		for _, match := range matches {
			expanded, err := h.expand(match)
			if err != nil {
				return 0, err
			}
			for _, p := range expanded {
				if !seen[p] {
					seen[p] = true
					paths = append(paths, p)
				}
			}
		}
	}

	sort.Strings(paths)

	digest := xxhash.New()
	for _, p := range paths {
		if _, err := digest.WriteString(p); err != nil {
			return 0, zerr.Wrap(err, "failed to hash file path")
		}
		if _, err := digest.Write([]byte{0}); err != nil {
			return 0, zerr.Wrap(err, "failed to hash file path separator")
		}
		if err := h.hashFileContent(p, digest); err != nil {
			return 0, err
		}
	}

	return int32(digest.Sum64()), nil
}

// expand resolves path to its leaf file set: itself if it is a file, or every file beneath
// it (skipping .git and .jj) if it is a directory.
func (h *Hasher) expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat matched path"), "path", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	for filePath := range h.walker.WalkFiles(path, nil) {
		files = append(files, filePath)
	}
	return files, nil
}

func (h *Hasher) hashFileContent(path string, digest io.Writer) error {
	//nolint:gosec // path is resolved from a caller-declared glob pattern, not user input
	f, err := os.Open(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open input file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best-effort close after a successful read

	if _, err := io.Copy(digest, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash input file content"), "path", path)
	}
	return nil
}
