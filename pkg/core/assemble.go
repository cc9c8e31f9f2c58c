package core

import (
	"crypto/ed25519"
	"fmt"

	"github.com/pkg/errors"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana"
)

// SignedTransaction is the serialized result handed back to the host: the
// compiled message bytes plus one 64-byte signature per required signer, in
// the order the message defines them.
type SignedTransaction struct {
	Message    []byte
	Signatures [][]byte
}

// AssembleTransaction combines pre-built serialized instructions into a
// single signed transaction. The first supplied signer is the fee payer, so
// callers must order signers with the payer first. Signature order in the
// output follows the deduplicated signer order the compiled message
// establishes, which is not necessarily the caller's input order.
func AssembleTransaction(recentBlockhash string, instructions [][]byte, signers []KeyPair) (*SignedTransaction, error) {
	blockhash, err := parseBlockhash(recentBlockhash)
	if err != nil {
		return nil, err
	}

	if len(instructions) == 0 {
		return nil, errors.New("no instructions provided")
	}
	if len(signers) == 0 {
		return nil, errors.New("no signers provided")
	}

	decoded := make([]solana.Instruction, 0, len(instructions))
	for i, raw := range instructions {
		instruction, err := solana.UnmarshalInstruction(raw)
		if err != nil {
			return nil, errors.Wrapf(ErrSerializationFailure, "instruction %d", i)
		}
		decoded = append(decoded, instruction)
	}

	privateKeys := make([]ed25519.PrivateKey, 0, len(signers))
	for i, signer := range signers {
		privateKey, err := keypairFromSecret(fmt.Sprintf("signer %d", i), signer)
		if err != nil {
			return nil, err
		}
		privateKeys = append(privateKeys, privateKey)
	}

	payer := privateKeys[0].Public().(ed25519.PublicKey)
	txn := solana.NewTransaction(payer, decoded...)
	txn.SetBlockhash(blockhash)

	if err := txn.Sign(privateKeys...); err != nil {
		return nil, errors.Wrap(ErrInvalidKeyPair, err.Error())
	}

	signatures := make([][]byte, len(txn.Signatures))
	for i := range txn.Signatures {
		signature := make([]byte, len(txn.Signatures[i]))
		copy(signature, txn.Signatures[i][:])
		signatures[i] = signature
	}

	return &SignedTransaction{
		Message:    txn.Message.Marshal(),
		Signatures: signatures,
	}, nil
}
