package bubblegum

import (
	"bytes"
	"crypto/ed25519"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana"
)

// sha256("global:mint_to_collection_v1")[..8]
var mintToCollectionV1InstructionDiscriminator = []byte{
	153, 18, 178, 47, 197, 158, 86, 15,
}

type MintToCollectionV1InstructionArgs struct {
	Metadata MetadataArgs
}

type MintToCollectionV1InstructionAccounts struct {
	TreeAuthority         ed25519.PublicKey
	LeafOwner             ed25519.PublicKey
	LeafDelegate          ed25519.PublicKey
	MerkleTree            ed25519.PublicKey
	Payer                 ed25519.PublicKey
	TreeCreatorOrDelegate ed25519.PublicKey
	CollectionAuthority   ed25519.PublicKey

	// CollectionAuthorityRecordPda is optional. When nil, the bubblegum
	// program id fills the slot, which is how the program encodes absence.
	CollectionAuthorityRecordPda ed25519.PublicKey

	CollectionMint     ed25519.PublicKey
	CollectionMetadata ed25519.PublicKey
	CollectionEdition  ed25519.PublicKey

	// BubblegumSigner is the protocol-mandated "collection_cpi" PDA used
	// for cross-program collection verification.
	BubblegumSigner ed25519.PublicKey
}

// NewMintToCollectionV1Instruction builds the mint_to_collection_v1
// instruction, appending a new leaf that is verified into a collection in
// the same transaction.
func NewMintToCollectionV1Instruction(
	accounts *MintToCollectionV1InstructionAccounts,
	args *MintToCollectionV1InstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 8+args.Metadata.Size())

	putDiscriminator(data, mintToCollectionV1InstructionDiscriminator, &offset)
	putMetadataArgs(data, &args.Metadata, &offset)

	collectionAuthorityRecordPda := accounts.CollectionAuthorityRecordPda
	if len(collectionAuthorityRecordPda) == 0 {
		collectionAuthorityRecordPda = PROGRAM_ID
	}

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
				PublicKey:  accounts.CollectionAuthority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  collectionAuthorityRecordPda,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.CollectionMint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.CollectionMetadata,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.CollectionEdition,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.BubblegumSigner,
				IsWritable: false,
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
				PublicKey:  TOKEN_METADATA_PROGRAM_ID,
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

func MintToCollectionV1InstructionFromBinary(data []byte) (*MintToCollectionV1InstructionArgs, error) {
	var offset int
	var discriminator []byte

	if len(data) < 8+26 {
		return nil, ErrInvalidInstructionData
	}

	getDiscriminator(data, &discriminator, &offset)

	if !bytes.Equal(discriminator, mintToCollectionV1InstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args MintToCollectionV1InstructionArgs
	if err := getMetadataArgs(data, &args.Metadata, &offset); err != nil {
		return nil, err
	}

	return &args, nil
}
