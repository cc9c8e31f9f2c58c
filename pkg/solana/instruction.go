package solana

import (
	"bytes"
	"crypto/ed25519"
	"io"

	"github.com/pkg/errors"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana/shortvec"
)

// AccountMeta represents the account information required
// for building transactions.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
	isPayer    bool
	isProgram  bool
}

// NewAccountMeta creates a new AccountMeta representing a writable
// account.
func NewAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: true,
	}
}

// NewReadonlyAccountMeta creates a new AccountMeta representing a readonly
// account.
func NewReadonlyAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: false,
	}
}

// SortableAccountMeta is a sortable []AccountMeta based on the solana
// transaction account sorting rules.
//
// Reference: https://docs.solana.com/transaction#account-addresses-format
type SortableAccountMeta []AccountMeta

// Len is the number of elements in the collection.
func (s SortableAccountMeta) Len() int {
	return len(s)
}

// Less reports whether the element with
// index i should sort before the element with index j.
func (s SortableAccountMeta) Less(i int, j int) bool {
	if s[i].isPayer != s[j].isPayer {
		return s[i].isPayer
	}
	if s[i].isProgram != s[j].isProgram {
		return !s[i].isProgram
	}

	if s[i].IsSigner != s[j].IsSigner {
		return s[i].IsSigner
	}
	if s[i].IsWritable != s[j].IsWritable {
		return s[i].IsWritable
	}

	return bytes.Compare(s[i].PublicKey, s[j].PublicKey) < 0
}

// Swap swaps the elements with indexes i and j.
func (s SortableAccountMeta) Swap(i int, j int) {
	s[i], s[j] = s[j], s[i]
}

// Instruction represents a transaction instruction.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}

// NewInstruction creates a new instruction.
func NewInstruction(program ed25519.PublicKey, data []byte, accounts ...AccountMeta) Instruction {
	return Instruction{
		Program:  program,
		Data:     data,
		Accounts: accounts,
	}
}

const (
	accountFlagSigner   byte = 1 << 0
	accountFlagWritable byte = 1 << 1
)

// Marshal serializes the instruction into a standalone wire form so that
// it can be handed across the host boundary and later recombined into a
// transaction: program key, shortvec account list (32-byte key followed by
// a flags byte), shortvec data.
func (i Instruction) Marshal() []byte {
	b := bytes.NewBuffer(nil)

	_, _ = b.Write(i.Program)

	_, _ = shortvec.EncodeLen(b, len(i.Accounts))
	for _, a := range i.Accounts {
		_, _ = b.Write(a.PublicKey)

		var flags byte
		if a.IsSigner {
			flags |= accountFlagSigner
		}
		if a.IsWritable {
			flags |= accountFlagWritable
		}
		_ = b.WriteByte(flags)
	}

	_, _ = shortvec.EncodeLen(b, len(i.Data))
	_, _ = b.Write(i.Data)

	return b.Bytes()
}

// UnmarshalInstruction decodes an instruction previously serialized with
// Instruction.Marshal.
func UnmarshalInstruction(b []byte) (Instruction, error) {
	var i Instruction

	buf := bytes.NewBuffer(b)

	i.Program = make([]byte, ed25519.PublicKeySize)
	if _, err := io.ReadFull(buf, i.Program); err != nil {
		return i, errors.Wrap(err, "failed to read program key")
	}

	accountLen, err := shortvec.DecodeLen(buf)
	if err != nil {
		return i, errors.Wrap(err, "failed to read account len")
	}
	i.Accounts = make([]AccountMeta, accountLen)
	for n := 0; n < accountLen; n++ {
		i.Accounts[n].PublicKey = make([]byte, ed25519.PublicKeySize)
		if _, err := io.ReadFull(buf, i.Accounts[n].PublicKey); err != nil {
			return i, errors.Wrapf(err, "failed to read account at index %d", n)
		}

		flags, err := buf.ReadByte()
		if err != nil {
			return i, errors.Wrapf(err, "failed to read account flags at index %d", n)
		}
		i.Accounts[n].IsSigner = flags&accountFlagSigner != 0
		i.Accounts[n].IsWritable = flags&accountFlagWritable != 0
	}

	dataLen, err := shortvec.DecodeLen(buf)
	if err != nil {
		return i, errors.Wrap(err, "failed to read data len")
	}
	i.Data = make([]byte, dataLen)
	if _, err := io.ReadFull(buf, i.Data); err != nil {
		return i, errors.Wrap(err, "failed to read data")
	}

	if buf.Len() != 0 {
		return i, errors.Errorf("unexpected trailing bytes: %d", buf.Len())
	}

	return i, nil
}
