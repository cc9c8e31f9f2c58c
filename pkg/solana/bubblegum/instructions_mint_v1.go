package bubblegum

import (
	"bytes"
	"crypto/ed25519"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana"
)

// sha256("global:mint_v1")[..8]
var mintV1InstructionDiscriminator = []byte{
	145, 98, 192, 118, 184, 147, 118, 104,
}

type MintV1InstructionArgs struct {
	Metadata MetadataArgs
}

type MintV1InstructionAccounts struct {
	TreeAuthority         ed25519.PublicKey
	LeafOwner             ed25519.PublicKey
	LeafDelegate          ed25519.PublicKey
	MerkleTree            ed25519.PublicKey
	Payer                 ed25519.PublicKey
	TreeCreatorOrDelegate ed25519.PublicKey
}

// NewMintV1Instruction builds the mint_v1 instruction, appending a new leaf
// to the tree without any collection verification.
func NewMintV1Instruction(
	accounts *MintV1InstructionAccounts,
	args *MintV1InstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 8+args.Metadata.Size())

	putDiscriminator(data, mintV1InstructionDiscriminator, &offset)
	putMetadataArgs(data, &args.Metadata, &offset)

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
				PublicKey:  accounts.LeafOwner,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.LeafDelegate,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.MerkleTree,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Payer,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.TreeCreatorOrDelegate,
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

func MintV1InstructionFromBinary(data []byte) (*MintV1InstructionArgs, error) {
	var offset int
	var discriminator []byte

	// discriminator plus the minimum encoded metadata payload
	if len(data) < 8+26 {
		return nil, ErrInvalidInstructionData
	}

	getDiscriminator(data, &discriminator, &offset)

	if !bytes.Equal(discriminator, mintV1InstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args MintV1InstructionArgs
	if err := getMetadataArgs(data, &args.Metadata, &offset); err != nil {
		return nil, err
	}

	return &args, nil
}
