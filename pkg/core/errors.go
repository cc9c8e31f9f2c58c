package core

import "github.com/pkg/errors"

// Every fallible operation fails with one of these sentinels, wrapped with
// the name of the offending field. Callers can match with errors.Is; the
// message alone identifies what to fix.
var (
	ErrInvalidAddress       = errors.New("invalid address format")
	ErrInvalidHashLength    = errors.New("hash must be exactly 32 bytes")
	ErrInvalidKeyPair       = errors.New("invalid keypair")
	ErrInvalidUseMethod     = errors.New("invalid use method")
	ErrInvalidBlockhash     = errors.New("invalid blockhash")
	ErrSerializationFailure = errors.New("serialization failure")
)
