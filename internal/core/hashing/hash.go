// Package hashing computes the group input fingerprint and the on-disk cache paths for a
// labelled terminal. The fingerprint reuses the xxhash incremental-digest technique the
// rest of the module uses for file content hashing, applied instead to an ordered
// sequence of already-computed int32 hashes; the paths are plain filepath joins.
package hashing

import (
	"encoding/binary"
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// ClassLoaderSig is a run-wide constant standing in for the build logic's own version: any
// release that changes how tasks are interpreted should bump classLoaderSigSeed so that
// stale caches from a prior binary version miss rather than silently deserializing against
// a format the new code no longer produces.
var ClassLoaderSig = OrderedHash([]int32{classLoaderSigSeed})

const classLoaderSigSeed int32 = 1

// OrderedHash is a stable 32-bit function of a sequence's contents AND order: permuting the
// slice changes the result. It must agree across processes for the same input, which
// xxhash's pure-function digest guarantees without any process-local seeding.
func OrderedHash(values []int32) int32 {
	d := xxhash.New()
	var buf [4]byte
	for _, v := range values {
		binary.LittleEndian.PutUint32(buf[:], uint32(v))
		_, _ = d.Write(buf[:])
	}
	return int32(d.Sum64())
}

// InputsHash combines a group's external input value-hashes, its own side-hashes, and the
// run-wide class-loader signature into the group's fingerprint, per invariant I1.
func InputsHash(externalValueHashes []int32, sideHashes []int32, classLoaderSig int32) int32 {
	return OrderedHash(externalValueHashes) + OrderedHash(sideHashes) + classLoaderSig
}

// StructuralHash hashes the JSON encoding of v. It is the value-hash of any non-worker
// task's result per invariant I3; workers use their inputsHash instead (see
// internal/engine/evaluator).
func StructuralHash(v any) (int32, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to marshal value for structural hash")
	}
	d := xxhash.New()
	_, _ = d.Write(data)
	return int32(d.Sum64()), nil
}
