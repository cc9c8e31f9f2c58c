package bubblegum

import (
	"bytes"
	"crypto/ed25519"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana"
)

// sha256("global:transfer")[..8]
var transferInstructionDiscriminator = []byte{
	163, 52, 200, 231, 140, 3, 69, 186,
}

const (
	TransferInstructionArgsSize = (HashSize + // root
		HashSize + // data_hash
		HashSize + // creator_hash
		8 + // nonce
		4) // index

	TransferInstructionSize = (8 + // discriminator
		TransferInstructionArgsSize)
)

type TransferInstructionArgs struct {
	Root        Hash
	DataHash    Hash
	CreatorHash Hash
	Nonce       uint64
	Index       uint32
}

type TransferInstructionAccounts struct {
	TreeAuthority ed25519.PublicKey
	LeafOwner     ed25519.PublicKey
	LeafDelegate  ed25519.PublicKey
	NewLeafOwner  ed25519.PublicKey
	MerkleTree    ed25519.PublicKey

	// Proof holds the merkle proof path, appended to the account list
	// read-only in the exact order supplied. The on-chain verifier replays
	// the path in this order, so reordering breaks verification.
	Proof []ed25519.PublicKey
}

// NewTransferInstruction builds the transfer instruction, reassigning a leaf
// to a new owner. Both the current owner and delegate are marked as required
// signers.
func NewTransferInstruction(
	accounts *TransferInstructionAccounts,
	args *TransferInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, TransferInstructionSize)

	putDiscriminator(data, transferInstructionDiscriminator, &offset)
	putHash(data, args.Root, &offset)
	putHash(data, args.DataHash, &offset)
	putHash(data, args.CreatorHash, &offset)
	putUint64(data, args.Nonce, &offset)
	putUint32(data, args.Index, &offset)

	metas := []solana.AccountMeta{
		{
			PublicKey:  accounts.TreeAuthority,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.LeafOwner,
			IsWritable: false,
			IsSigner:   true,
		},
		{
			PublicKey:  accounts.LeafDelegate,
			IsWritable: false,
			IsSigner:   true,
		},
		{
			PublicKey:  accounts.NewLeafOwner,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.MerkleTree,
			IsWritable: true,
			IsSigner:   false,
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
	}

	for _, proofNode := range accounts.Proof {
		metas = append(metas, solana.AccountMeta{
			PublicKey:  proofNode,
			IsWritable: false,
			IsSigner:   false,
		})
	}

	return solana.Instruction{
		Program:  PROGRAM_ADDRESS,
		Data:     data,
		Accounts: metas,
	}
}

func TransferInstructionFromBinary(data []byte) (*TransferInstructionArgs, error) {
	var offset int
	var discriminator []byte

	if len(data) < TransferInstructionSize {
		return nil, ErrInvalidInstructionData
	}

	getDiscriminator(data, &discriminator, &offset)

	if !bytes.Equal(discriminator, transferInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args TransferInstructionArgs

	getHash(data, &args.Root, &offset)
	getHash(data, &args.DataHash, &offset)
	getHash(data, &args.CreatorHash, &offset)
	getUint64(data, &args.Nonce, &offset)
	getUint32(data, &args.Index, &offset)

	return &args, nil
}
