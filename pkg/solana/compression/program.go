// Package compression covers the parts of spl-account-compression needed to
// create and size concurrent merkle tree accounts.
package compression

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("cmtDvXumGCrqC1Age74AVPhSRVXJMd8PJS91L8KbNCK")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)

	NOOP_PROGRAM_ADDRESS = mustBase58Decode("noopb9bkMVfRPU8AsbpTUg8AQkHtKwMYZiFUjNRtMmV")
	NOOP_PROGRAM_ID      = ed25519.PublicKey(NOOP_PROGRAM_ADDRESS)
)

const (
	// MaxTreeDepth is the hard runtime ceiling on concurrent merkle tree
	// depth. Requests above it are clamped rather than rejected.
	MaxTreeDepth = 30

	// MaxTreeBufferSize is the hard runtime ceiling on the concurrency
	// buffer size.
	MaxTreeBufferSize = 2048

	// concurrentMerkleTreeHeaderSizeV1 is the fixed v1 header size of a
	// concurrent merkle tree account.
	concurrentMerkleTreeHeaderSizeV1 = 56

	hashSize = 32
)

// ClampTreeDepth bounds a requested depth to the runtime ceiling.
func ClampTreeDepth(maxDepth uint32) uint32 {
	if maxDepth > MaxTreeDepth {
		return MaxTreeDepth
	}
	return maxDepth
}

// ClampTreeBufferSize bounds a requested buffer size to the runtime ceiling.
func ClampTreeBufferSize(maxBufferSize uint32) uint32 {
	if maxBufferSize > MaxTreeBufferSize {
		return MaxTreeBufferSize
	}
	return maxBufferSize
}

// ConcurrentMerkleTreeAccountSize returns the exact account size the runtime
// allocator expects for a tree of the given shape. Out-of-range inputs are
// clamped to the runtime ceilings, and the canopy can never be deeper than
// the tree itself.
//
// The account holds the fixed header, one change log entry per buffer slot
// (a 32-byte node per level plus an 8-byte index), and one 32-byte hash per
// cached canopy node.
func ConcurrentMerkleTreeAccountSize(maxDepth, maxBufferSize, canopyDepth uint32) uint64 {
	maxDepth = ClampTreeDepth(maxDepth)
	maxBufferSize = ClampTreeBufferSize(maxBufferSize)
	if canopyDepth > maxDepth {
		canopyDepth = maxDepth
	}

	size := uint64(concurrentMerkleTreeHeaderSizeV1)
	size += uint64(maxBufferSize) * uint64(maxDepth*hashSize+8)

	for i := uint32(0); i < canopyDepth; i++ {
		size += (uint64(1) << i) * hashSize
	}

	return size
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
