package core

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana"
	"github.com/benodiwal/bubblegum-nifs/pkg/solana/bubblegum"
	"github.com/benodiwal/bubblegum-nifs/pkg/solana/compression"
	"github.com/benodiwal/bubblegum-nifs/pkg/solana/system"
)

// The functions in this file are single-operation conveniences: each builds
// one instruction (plus any prerequisite instructions), wraps it in a
// transaction paid and signed by the supplied key pairs, and returns it
// fully signed. Hosts composing multiple operations should build
// instructions individually and use AssembleTransaction instead.

// CreateTreeConfigTransaction creates the merkle tree account and
// initializes its tree config in one signed transaction. The payer funds
// the account with the given lamports and accountSize (see
// TreeAccountSize); both the payer and the tree key pair sign.
func CreateTreeConfigTransaction(
	payer, merkleTree KeyPair,
	maxDepth, maxBufferSize uint32,
	recentBlockhash string,
	public bool,
	lamports, accountSize uint64,
) (*SignedTransaction, error) {
	payerKey, err := keypairFromSecret("payer", payer)
	if err != nil {
		return nil, err
	}

	merkleTreeKey, err := keypairFromSecret("merkle_tree", merkleTree)
	if err != nil {
		return nil, err
	}

	blockhash, err := parseBlockhash(recentBlockhash)
	if err != nil {
		return nil, err
	}

	payerPub := payerKey.Public().(ed25519.PublicKey)
	merkleTreePub := merkleTreeKey.Public().(ed25519.PublicKey)

	treeAuthority, _, err := bubblegum.GetTreeAuthorityAddress(&bubblegum.GetTreeAuthorityAddressArgs{
		MerkleTree: merkleTreePub,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive tree authority")
	}

	createAccount := system.CreateAccount(
		payerPub,
		merkleTreePub,
		compression.PROGRAM_ID,
		lamports,
		accountSize,
	)

	createTree := bubblegum.NewCreateTreeInstruction(
		&bubblegum.CreateTreeInstructionAccounts{
			TreeAuthority: treeAuthority,
			MerkleTree:    merkleTreePub,
			Payer:         payerPub,
			TreeCreator:   payerPub,
		},
		&bubblegum.CreateTreeInstructionArgs{
			MaxDepth:      maxDepth,
			MaxBufferSize: maxBufferSize,
			Public:        public,
		},
	)

	txn := solana.NewTransaction(payerPub, createAccount, createTree)
	txn.SetBlockhash(blockhash)

	if err := txn.Sign(payerKey, merkleTreeKey); err != nil {
		return nil, errors.Wrap(ErrInvalidKeyPair, err.Error())
	}

	return signedTransaction(txn), nil
}

// MintV1Transaction builds and signs a single-instruction mint_v1
// transaction paid by the supplied payer key pair.
func MintV1Transaction(
	treeAuthority, leafOwner, leafDelegate, merkleTree string,
	payer KeyPair,
	metadata *Metadata,
	recentBlockhash string,
) (*SignedTransaction, error) {
	payerKey, err := keypairFromSecret("payer", payer)
	if err != nil {
		return nil, err
	}

	raw, err := MintV1Instruction(treeAuthority, leafOwner, leafDelegate, merkleTree, payer.PublicKey, metadata)
	if err != nil {
		return nil, err
	}

	return signSingle(raw, payerKey, recentBlockhash)
}

// MintToCollectionV1Transaction builds and signs a single-instruction
// mint_to_collection_v1 transaction paid by the supplied payer key pair.
// The payer is assumed to also hold collection authority when the host
// supplies the payer's own address for it.
func MintToCollectionV1Transaction(
	treeAuthority, leafOwner, leafDelegate, merkleTree string,
	payer KeyPair,
	collectionAuthority, collectionMint, collectionMetadata, collectionMasterEdition string,
	metadata *Metadata,
	recentBlockhash string,
) (*SignedTransaction, error) {
	payerKey, err := keypairFromSecret("payer", payer)
	if err != nil {
		return nil, err
	}

	raw, err := MintToCollectionV1Instruction(
		treeAuthority, leafOwner, leafDelegate, merkleTree, payer.PublicKey,
		collectionAuthority, collectionMint, collectionMetadata, collectionMasterEdition,
		metadata,
	)
	if err != nil {
		return nil, err
	}

	return signSingle(raw, payerKey, recentBlockhash)
}

// TransferTransaction builds and signs a single-instruction transfer
// transaction. The payer key pair must correspond to the current leaf owner
// and delegate for the resulting transaction to carry every required
// signature.
func TransferTransaction(
	treeAuthority, leafOwner, leafDelegate, newLeafOwner, merkleTree string,
	rootHash, creatorHash, dataHash []byte,
	nonce uint64, index uint32,
	proofAddresses []string,
	recentBlockhash string,
	payer KeyPair,
) (*SignedTransaction, error) {
	payerKey, err := keypairFromSecret("payer", payer)
	if err != nil {
		return nil, err
	}

	raw, err := TransferInstruction(
		treeAuthority, leafOwner, leafDelegate, newLeafOwner, merkleTree,
		rootHash, creatorHash, dataHash,
		nonce, index,
		proofAddresses,
	)
	if err != nil {
		return nil, err
	}

	return signSingle(raw, payerKey, recentBlockhash)
}

func signSingle(rawInstruction []byte, payer ed25519.PrivateKey, recentBlockhash string) (*SignedTransaction, error) {
	blockhash, err := parseBlockhash(recentBlockhash)
	if err != nil {
		return nil, err
	}

	instruction, err := solana.UnmarshalInstruction(rawInstruction)
	if err != nil {
		return nil, errors.Wrap(ErrSerializationFailure, err.Error())
	}

	txn := solana.NewTransaction(payer.Public().(ed25519.PublicKey), instruction)
	txn.SetBlockhash(blockhash)

	if err := txn.Sign(payer); err != nil {
		return nil, errors.Wrap(ErrInvalidKeyPair, err.Error())
	}

	return signedTransaction(txn), nil
}

func signedTransaction(txn solana.Transaction) *SignedTransaction {
	signatures := make([][]byte, len(txn.Signatures))
	for i := range txn.Signatures {
		signature := make([]byte, len(txn.Signatures[i]))
		copy(signature, txn.Signatures[i][:])
		signatures[i] = signature
	}

	return &SignedTransaction{
		Message:    txn.Message.Marshal(),
		Signatures: signatures,
	}
}
