package bubblegum

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana"
)

func TestGetTreeAuthorityAddress(t *testing.T) {
	merkleTree := make([]byte, 32)
	for i := range merkleTree {
		merkleTree[i] = byte(i + 1)
	}

	address, bump, err := GetTreeAuthorityAddress(&GetTreeAuthorityAddressArgs{
		MerkleTree: merkleTree,
	})
	require.NoError(t, err)
	assert.Equal(t, "DyibBFHTpAeBhqT6JWVMU9kdzP9yTFdntKHEDPhDMc4i", base58.Encode(address))

	// The returned bump reproduces the address.
	recreated, err := solana.CreateProgramAddress(PROGRAM_ID, merkleTree, []byte{bump})
	require.NoError(t, err)
	assert.EqualValues(t, address, recreated)
}

func TestGetBubblegumSignerAddress(t *testing.T) {
	// This PDA has no caller input, so it is a protocol constant.
	address, _, err := GetBubblegumSignerAddress()
	require.NoError(t, err)
	assert.Equal(t, "4ewWZC5gT6TGpm5LZNDs9wVonfUT2q5PP5sc9kVbwMAK", base58.Encode(address))
}
