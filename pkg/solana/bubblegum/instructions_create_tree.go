package bubblegum

import (
	"bytes"
	"crypto/ed25519"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana"
	"github.com/benodiwal/bubblegum-nifs/pkg/solana/compression"
)

// sha256("global:create_tree")[..8]
var createTreeInstructionDiscriminator = []byte{
	165, 83, 136, 142, 89, 202, 47, 220,
}

const (
	CreateTreeInstructionArgsSize = (4 + // max_depth
		4 + // max_buffer_size
		1 + 1) // public option

	CreateTreeInstructionSize = (8 + // discriminator
		CreateTreeInstructionArgsSize)
)

type CreateTreeInstructionArgs struct {
	MaxDepth      uint32
	MaxBufferSize uint32
	Public        bool
}

type CreateTreeInstructionAccounts struct {
	TreeAuthority ed25519.PublicKey
	MerkleTree    ed25519.PublicKey
	Payer         ed25519.PublicKey
	TreeCreator   ed25519.PublicKey
}

// NewCreateTreeInstruction builds the create_tree instruction. The requested
// depth and buffer size are clamped to the runtime ceilings rather than
// rejected, since those are hard protocol limits with an unambiguous closest
// legal value.
func NewCreateTreeInstruction(
	accounts *CreateTreeInstructionAccounts,
	args *CreateTreeInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, CreateTreeInstructionSize)

	putDiscriminator(data, createTreeInstructionDiscriminator, &offset)
	putUint32(data, compression.ClampTreeDepth(args.MaxDepth), &offset)
	putUint32(data, compression.ClampTreeBufferSize(args.MaxBufferSize), &offset)
	putUint8(data, 1, &offset) // public is always set
	putBool(data, args.Public, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.TreeAuthority,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.MerkleTree,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Payer,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.TreeCreator,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  SPL_NOOP_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_ACCOUNT_COMPRESSION_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func CreateTreeInstructionFromBinary(data []byte) (*CreateTreeInstructionArgs, error) {
	var offset int
	var discriminator []byte

	if len(data) < CreateTreeInstructionSize {
		return nil, ErrInvalidInstructionData
	}

	getDiscriminator(data, &discriminator, &offset)

	if !bytes.Equal(discriminator, createTreeInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args CreateTreeInstructionArgs
	var publicTag uint8

	getUint32(data, &args.MaxDepth, &offset)
	getUint32(data, &args.MaxBufferSize, &offset)
	getUint8(data, &publicTag, &offset)
	if publicTag == 1 {
		getBool(data, &args.Public, &offset)
	}

	return &args, nil
}
