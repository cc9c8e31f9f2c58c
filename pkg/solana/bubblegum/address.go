package bubblegum

import (
	"crypto/ed25519"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana"
)

var collectionCpiPrefix = []byte("collection_cpi")

type GetTreeAuthorityAddressArgs struct {
	MerkleTree ed25519.PublicKey
}

// GetTreeAuthorityAddress derives the tree config account seeded by the
// merkle tree address under the bubblegum program.
func GetTreeAuthorityAddress(args *GetTreeAuthorityAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		args.MerkleTree,
	)
}

// GetBubblegumSignerAddress derives the fixed "collection_cpi" signer the
// program uses when verifying collection membership through the token
// metadata program. It takes no caller input.
func GetBubblegumSignerAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		collectionCpiPrefix,
	)
}
