// Package metaplex derives the mpl-token-metadata program addresses
// referenced by collection mints.
package metaplex

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana"
)

var (
	TOKEN_METADATA_PROGRAM_ADDRESS = mustBase58Decode("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	TOKEN_METADATA_PROGRAM_ID      = ed25519.PublicKey(TOKEN_METADATA_PROGRAM_ADDRESS)
)

var (
	metadataPrefix = []byte("metadata")
	editionPrefix  = []byte("edition")
)

type GetMetadataAddressArgs struct {
	Mint ed25519.PublicKey
}

// GetMetadataAddress derives the metadata account for a mint:
// ["metadata", token_metadata_program, mint].
func GetMetadataAddress(args *GetMetadataAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		TOKEN_METADATA_PROGRAM_ID,
		metadataPrefix,
		TOKEN_METADATA_PROGRAM_ADDRESS,
		args.Mint,
	)
}

type GetMasterEditionAddressArgs struct {
	Mint ed25519.PublicKey
}

// GetMasterEditionAddress derives the master edition account for a mint:
// ["metadata", token_metadata_program, mint, "edition"].
func GetMasterEditionAddress(args *GetMasterEditionAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		TOKEN_METADATA_PROGRAM_ID,
		metadataPrefix,
		TOKEN_METADATA_PROGRAM_ADDRESS,
		args.Mint,
		editionPrefix,
	)
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
