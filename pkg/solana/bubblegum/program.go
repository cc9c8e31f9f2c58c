// Package bubblegum builds instructions for the mpl-bubblegum compressed
// NFT program. The account ordering and argument encoding of every
// instruction are fixed by the on-chain program's published contract and
// must be reproduced exactly.
package bubblegum

import (
	"crypto/ed25519"
	"errors"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana/compression"
	"github.com/benodiwal/bubblegum-nifs/pkg/solana/metaplex"
)

var (
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrInvalidUseMethod       = errors.New("unexpected use method")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))

	SPL_NOOP_PROGRAM_ID                = compression.NOOP_PROGRAM_ID
	SPL_ACCOUNT_COMPRESSION_PROGRAM_ID = compression.PROGRAM_ID
	TOKEN_METADATA_PROGRAM_ID          = metaplex.TOKEN_METADATA_PROGRAM_ID
)
