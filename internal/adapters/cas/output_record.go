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

// outputRecordFile is deliberately not meta.json: keeping the output-hash supplement in
// its own file preserves meta.json's literal {value, valueHash, inputsHash} schema for
// any caller (or test scenario) that parses it directly.
const outputRecordFile = "outputs.json"

// WriteOutputRecord persists rec next to meta.json under outDir.
func WriteOutputRecord(outDir string, rec domain.OutputRecord) error {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal output record")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create terminal output directory")
	}
	if err := os.WriteFile(filepath.Join(outDir, outputRecordFile), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write output record")
	}
	return nil
}

// ReadOutputRecord reads the output-hash supplement written by WriteOutputRecord, if any.
func ReadOutputRecord(outDir string) (*domain.OutputRecord, bool, error) {
	data, err := os.ReadFile(filepath.Join(outDir, outputRecordFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, nil
	}
	var rec domain.OutputRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, nil
	}
	return &rec, true, nil
}
