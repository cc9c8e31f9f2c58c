package core

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana"
	"github.com/benodiwal/bubblegum-nifs/pkg/solana/bubblegum"
)

// parseAddress decodes a base58 address and requires it to be exactly 32
// bytes. The field name is carried into the error so the host can identify
// the offending input.
func parseAddress(field, value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s", field)
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s", field)
	}
	return decoded, nil
}

// parseHash requires a raw 32-byte merkle node hash.
func parseHash(field string, value []byte) (bubblegum.Hash, error) {
	var hash bubblegum.Hash
	if len(value) != bubblegum.HashSize {
		return hash, errors.Wrapf(ErrInvalidHashLength, "%s", field)
	}
	copy(hash[:], value)
	return hash, nil
}

// parseBlockhash decodes a base58 recent blockhash.
func parseBlockhash(value string) (solana.Blockhash, error) {
	var bh solana.Blockhash
	decoded, err := base58.Decode(value)
	if err != nil {
		return bh, errors.Wrap(ErrInvalidBlockhash, "recent_blockhash")
	}
	if len(decoded) != len(bh) {
		return bh, errors.Wrap(ErrInvalidBlockhash, "recent_blockhash")
	}
	copy(bh[:], decoded)
	return bh, nil
}

// GetTreeAuthorityAddress derives the tree authority PDA for a merkle tree
// and returns its textual form.
func GetTreeAuthorityAddress(merkleTree string) (string, error) {
	merkleTreeKey, err := parseAddress("merkle_tree", merkleTree)
	if err != nil {
		return "", err
	}

	treeAuthority, _, err := bubblegum.GetTreeAuthorityAddress(&bubblegum.GetTreeAuthorityAddressArgs{
		MerkleTree: merkleTreeKey,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to derive tree authority")
	}

	return base58.Encode(treeAuthority), nil
}
