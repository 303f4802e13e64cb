package domain

import "encoding/json"

// CachedRecord is the persisted shape written to a labelled terminal's meta.json. It is
// the on-disk half of invariant I2: a cache hit requires InputsHash to equal the freshly
// recomputed fingerprint AND Value to deserialize successfully via the task's ValueFormat.
type CachedRecord struct {
	Value      json.RawMessage `json:"value"`
	ValueHash  int32           `json:"valueHash"`
	InputsHash int32           `json:"inputsHash"`
}

// OutputRecord is a supplementary, non-authoritative sanity check folded in from the
// teacher's output-hash verification: when a task declares filesystem outputs, their
// content hash is recorded alongside the CachedRecord so a cache hit can additionally
// notice outputs that were deleted or modified out-of-band. A mismatch here forces a miss
// even though InputsHash still matches; see internal/engine/evaluator.
type OutputRecord struct {
	Outputs    []string `json:"outputs,omitempty"`
	OutputHash string   `json:"outputHash,omitempty"`
}
