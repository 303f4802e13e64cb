package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputVerifier = (*Verifier)(nil)

// Verifier implements ports.OutputVerifier against the local filesystem.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs checks if all output files exist in the given root directory.
// It returns true if all outputs exist, false otherwise.
func (v *Verifier) VerifyOutputs(root string, outputs []string) (bool, error) {
	for _, output := range outputs {
		path := filepath.Join(root, output)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
		}
	}
	return true, nil
}

// HashOutputs folds each declared output's content hash into a single digest, sorted by
// name first so the result does not depend on the caller's slice order.
func (v *Verifier) HashOutputs(root string, outputs []string) (string, error) {
	sorted := make([]string, len(outputs))
	copy(sorted, outputs)
	sort.Strings(sorted)

	digest := xxhash.New()
	for _, output := range sorted {
		path := filepath.Join(root, output)

		fileHash, err := v.hashFile(path)
		if err != nil {
			return "", err
		}
		if err := binary.Write(digest, binary.LittleEndian, fileHash); err != nil {
			return "", zerr.Wrap(err, "failed to write output file hash to digest")
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (v *Verifier) hashFile(path string) (uint64, error) {
	//nolint:gosec // path is resolved from a caller-declared output name, not user input
	f, err := os.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open output file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best-effort close after a successful read

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash output file content"), "path", path)
	}
	return digest.Sum64(), nil
}
