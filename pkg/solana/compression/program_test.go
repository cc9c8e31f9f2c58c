package compression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampTreeDepth(t *testing.T) {
	assert.EqualValues(t, 0, ClampTreeDepth(0))
	assert.EqualValues(t, 14, ClampTreeDepth(14))
	assert.EqualValues(t, 30, ClampTreeDepth(30))
	assert.EqualValues(t, 30, ClampTreeDepth(31))
	assert.EqualValues(t, 30, ClampTreeDepth(999))
}

func TestClampTreeBufferSize(t *testing.T) {
	assert.EqualValues(t, 0, ClampTreeBufferSize(0))
	assert.EqualValues(t, 64, ClampTreeBufferSize(64))
	assert.EqualValues(t, 2048, ClampTreeBufferSize(2048))
	assert.EqualValues(t, 2048, ClampTreeBufferSize(2049))
	assert.EqualValues(t, 2048, ClampTreeBufferSize(99999))
}

func TestConcurrentMerkleTreeAccountSize(t *testing.T) {
	// No canopy: header plus one change log entry per buffer slot.
	assert.EqualValues(t, 56+64*(14*32+8), ConcurrentMerkleTreeAccountSize(14, 64, 0))

	// A 5-deep canopy caches 2^0 + ... + 2^4 = 31 nodes of 32 bytes.
	assert.EqualValues(t,
		uint64(56)+2048*(30*32+8)+31*32,
		ConcurrentMerkleTreeAccountSize(30, 2048, 5),
	)
}

func TestConcurrentMerkleTreeAccountSize_Clamped(t *testing.T) {
	assert.Equal(t,
		ConcurrentMerkleTreeAccountSize(30, 64, 0),
		ConcurrentMerkleTreeAccountSize(999, 64, 0),
	)
	assert.Equal(t,
		ConcurrentMerkleTreeAccountSize(14, 2048, 0),
		ConcurrentMerkleTreeAccountSize(14, 99999, 0),
	)

	// The canopy can never be deeper than the (clamped) tree.
	assert.Equal(t,
		ConcurrentMerkleTreeAccountSize(14, 64, 14),
		ConcurrentMerkleTreeAccountSize(14, 64, 20),
	)
	assert.Equal(t,
		ConcurrentMerkleTreeAccountSize(30, 64, 30),
		ConcurrentMerkleTreeAccountSize(999, 64, 999),
	)
}

func TestConcurrentMerkleTreeAccountSize_Monotonic(t *testing.T) {
	for depth := uint32(1); depth <= 30; depth++ {
		assert.Less(t,
			ConcurrentMerkleTreeAccountSize(depth-1, 64, 0),
			ConcurrentMerkleTreeAccountSize(depth, 64, 0),
		)
	}

	for canopy := uint32(1); canopy <= 14; canopy++ {
		assert.Less(t,
			ConcurrentMerkleTreeAccountSize(14, 64, canopy-1),
			ConcurrentMerkleTreeAccountSize(14, 64, canopy),
		)
	}
}
