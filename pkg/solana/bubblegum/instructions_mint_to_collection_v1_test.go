package bubblegum

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintToCollectionV1Instruction(t *testing.T) {
	keys := generateKeys(t, 12)

	metadata := MetadataArgs{
		Name:   "Collected",
		Symbol: "COL",
		Uri:    "https://example.com/2.json",
		Collection: &Collection{
			Key: keys[8],
		},
	}

	accounts := &MintToCollectionV1InstructionAccounts{
		TreeAuthority:                keys[0],
		LeafOwner:                    keys[1],
		LeafDelegate:                 keys[2],
		MerkleTree:                   keys[3],
		Payer:                        keys[4],
		TreeCreatorOrDelegate:        keys[5],
		CollectionAuthority:          keys[6],
		CollectionAuthorityRecordPda: keys[7],
		CollectionMint:               keys[8],
		CollectionMetadata:           keys[9],
		CollectionEdition:            keys[10],
		BubblegumSigner:              keys[11],
	}

	instruction := NewMintToCollectionV1Instruction(accounts, &MintToCollectionV1InstructionArgs{
		Metadata: metadata,
	})

	assert.EqualValues(t, PROGRAM_ADDRESS, []byte(instruction.Program))
	require.Len(t, instruction.Data, 8+metadata.Size())
	assert.Equal(t, mintToCollectionV1InstructionDiscriminator, instruction.Data[:8])

	require.Len(t, instruction.Accounts, 16)

	expectedOrder := [][]byte{
		keys[0], keys[1], keys[2], keys[3], keys[4], keys[5],
		keys[6], keys[7], keys[8], keys[9], keys[10], keys[11],
		SPL_NOOP_PROGRAM_ID, SPL_ACCOUNT_COMPRESSION_PROGRAM_ID,
		TOKEN_METADATA_PROGRAM_ID, SYSTEM_PROGRAM_ID,
	}
	for i, expected := range expectedOrder {
		assert.EqualValues(t, expected, instruction.Accounts[i].PublicKey, i)
	}

	// Writable: tree authority, merkle tree, collection metadata.
	for i, account := range instruction.Accounts {
		expected := i == 0 || i == 3 || i == 9
		assert.Equal(t, expected, account.IsWritable, i)
	}

	// Signers: payer, tree delegate, collection authority.
	for i, account := range instruction.Accounts {
		expected := i == 4 || i == 5 || i == 6
		assert.Equal(t, expected, account.IsSigner, i)
	}

	decompiled, err := MintToCollectionV1InstructionFromBinary(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, metadata.Name, decompiled.Metadata.Name)
	require.NotNil(t, decompiled.Metadata.Collection)
	assert.EqualValues(t, keys[8], decompiled.Metadata.Collection.Key)
}

func TestMintToCollectionV1Instruction_Discriminator(t *testing.T) {
	expected := sha256.Sum256([]byte("global:mint_to_collection_v1"))
	assert.Equal(t, expected[:8], mintToCollectionV1InstructionDiscriminator)
}

func TestMintToCollectionV1Instruction_NoAuthorityRecord(t *testing.T) {
	keys := generateKeys(t, 11)

	instruction := NewMintToCollectionV1Instruction(
		&MintToCollectionV1InstructionAccounts{
			TreeAuthority:         keys[0],
			LeafOwner:             keys[1],
			LeafDelegate:          keys[2],
			MerkleTree:            keys[3],
			Payer:                 keys[4],
			TreeCreatorOrDelegate: keys[5],
			CollectionAuthority:   keys[6],
			CollectionMint:        keys[7],
			CollectionMetadata:    keys[8],
			CollectionEdition:     keys[9],
			BubblegumSigner:       keys[10],
		},
		&MintToCollectionV1InstructionArgs{},
	)

	// An absent authority record is encoded as the program id itself.
	assert.EqualValues(t, PROGRAM_ID, instruction.Accounts[7].PublicKey)
}

func TestMintToCollectionV1InstructionFromBinary_Invalid(t *testing.T) {
	_, err := MintToCollectionV1InstructionFromBinary(nil)
	assert.Equal(t, ErrInvalidInstructionData, err)

	_, err = MintToCollectionV1InstructionFromBinary(make([]byte, 8+26))
	assert.Equal(t, ErrInvalidInstructionData, err)

	// A name length claiming far more bytes than the payload holds.
	overlong := make([]byte, 8+26)
	copy(overlong, mintToCollectionV1InstructionDiscriminator)
	binary.LittleEndian.PutUint32(overlong[8:], math.MaxUint32)
	_, err = MintToCollectionV1InstructionFromBinary(overlong)
	assert.Equal(t, ErrInvalidInstructionData, err)

	// A creator count that would dwarf the actual payload.
	var offset int
	data := make([]byte, 8+(&MetadataArgs{}).Size())
	copy(data, mintToCollectionV1InstructionDiscriminator)
	offset = 8
	putMetadataArgs(data, &MetadataArgs{}, &offset)
	binary.LittleEndian.PutUint32(data[len(data)-4:], math.MaxUint32)
	_, err = MintToCollectionV1InstructionFromBinary(data)
	assert.Equal(t, ErrInvalidInstructionData, err)
}
