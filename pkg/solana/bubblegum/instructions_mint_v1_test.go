package bubblegum

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintV1Instruction(t *testing.T) {
	keys := generateKeys(t, 6)

	metadata := MetadataArgs{
		Name:                 "Compressed",
		Symbol:               "CMP",
		Uri:                  "https://example.com/1.json",
		SellerFeeBasisPoints: 250,
		IsMutable:            true,
		Creators: []Creator{
			{Address: keys[4], Share: 100},
		},
	}

	instruction := NewMintV1Instruction(
		&MintV1InstructionAccounts{
			TreeAuthority:         keys[0],
			LeafOwner:             keys[1],
			LeafDelegate:          keys[2],
			MerkleTree:            keys[3],
			Payer:                 keys[4],
			TreeCreatorOrDelegate: keys[5],
		},
		&MintV1InstructionArgs{
			Metadata: metadata,
		},
	)

	assert.EqualValues(t, PROGRAM_ADDRESS, []byte(instruction.Program))
	require.Len(t, instruction.Data, 8+metadata.Size())
	assert.Equal(t, mintV1InstructionDiscriminator, instruction.Data[:8])

	require.Len(t, instruction.Accounts, 9)

	assert.EqualValues(t, keys[0], instruction.Accounts[0].PublicKey)
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.False(t, instruction.Accounts[0].IsSigner)

	assert.EqualValues(t, keys[1], instruction.Accounts[1].PublicKey)
	assert.EqualValues(t, keys[2], instruction.Accounts[2].PublicKey)
	for _, account := range instruction.Accounts[1:3] {
		assert.False(t, account.IsWritable)
		assert.False(t, account.IsSigner)
	}

	assert.EqualValues(t, keys[3], instruction.Accounts[3].PublicKey)
	assert.True(t, instruction.Accounts[3].IsWritable)
	assert.False(t, instruction.Accounts[3].IsSigner)

	assert.EqualValues(t, keys[4], instruction.Accounts[4].PublicKey)
	assert.False(t, instruction.Accounts[4].IsWritable)
	assert.True(t, instruction.Accounts[4].IsSigner)

	assert.EqualValues(t, keys[5], instruction.Accounts[5].PublicKey)
	assert.False(t, instruction.Accounts[5].IsWritable)
	assert.True(t, instruction.Accounts[5].IsSigner)

	assert.EqualValues(t, SPL_NOOP_PROGRAM_ID, instruction.Accounts[6].PublicKey)
	assert.EqualValues(t, SPL_ACCOUNT_COMPRESSION_PROGRAM_ID, instruction.Accounts[7].PublicKey)
	assert.EqualValues(t, SYSTEM_PROGRAM_ID, instruction.Accounts[8].PublicKey)

	decompiled, err := MintV1InstructionFromBinary(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, metadata.Name, decompiled.Metadata.Name)
	assert.Equal(t, metadata.Symbol, decompiled.Metadata.Symbol)
	assert.Equal(t, metadata.Uri, decompiled.Metadata.Uri)
	assert.Equal(t, metadata.SellerFeeBasisPoints, decompiled.Metadata.SellerFeeBasisPoints)
	require.Len(t, decompiled.Metadata.Creators, 1)
	assert.EqualValues(t, keys[4], decompiled.Metadata.Creators[0].Address)
}

func TestMintV1Instruction_Discriminator(t *testing.T) {
	expected := sha256.Sum256([]byte("global:mint_v1"))
	assert.Equal(t, expected[:8], mintV1InstructionDiscriminator)
}

func TestMintV1InstructionFromBinary_Invalid(t *testing.T) {
	_, err := MintV1InstructionFromBinary(nil)
	assert.Equal(t, ErrInvalidInstructionData, err)

	_, err = MintV1InstructionFromBinary(make([]byte, 8))
	assert.Equal(t, ErrInvalidInstructionData, err)

	_, err = MintV1InstructionFromBinary(make([]byte, 8+26))
	assert.Equal(t, ErrInvalidInstructionData, err)

	// A name length claiming far more bytes than the payload holds.
	overlong := make([]byte, 8+26)
	copy(overlong, mintV1InstructionDiscriminator)
	binary.LittleEndian.PutUint32(overlong[8:], math.MaxUint32)
	_, err = MintV1InstructionFromBinary(overlong)
	assert.Equal(t, ErrInvalidInstructionData, err)

	// A creator count that would dwarf the actual payload.
	var offset int
	data := make([]byte, 8+(&MetadataArgs{}).Size())
	copy(data, mintV1InstructionDiscriminator)
	offset = 8
	putMetadataArgs(data, &MetadataArgs{}, &offset)
	binary.LittleEndian.PutUint32(data[len(data)-4:], math.MaxUint32)
	_, err = MintV1InstructionFromBinary(data)
	assert.Equal(t, ErrInvalidInstructionData, err)
}
