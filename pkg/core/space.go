package core

import (
	"github.com/benodiwal/bubblegum-nifs/pkg/solana/compression"
)

// TreeAccountSize returns the exact byte size of a compression tree account
// for the given shape, matching the runtime allocator's arithmetic.
// Out-of-range inputs are clamped to the runtime ceilings.
func TreeAccountSize(maxDepth, maxBufferSize, canopyDepth uint32) uint64 {
	return compression.ConcurrentMerkleTreeAccountSize(maxDepth, maxBufferSize, canopyDepth)
}
