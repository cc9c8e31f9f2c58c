// Package core is the host boundary of the engine. Every function is a
// pure, single-call computation: textual addresses, raw hashes, and key
// pairs in; serialized instruction or transaction bytes out. Nothing is
// cached or retained across calls.
package core

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/benodiwal/bubblegum-nifs/pkg/solana/bubblegum"
	"github.com/benodiwal/bubblegum-nifs/pkg/solana/metaplex"
)

// CreateTreeConfigInstruction builds the create_tree instruction for a new
// compression tree. The tree authority is derived from the tree address;
// the payer acts as both fee payer and tree creator, and the tree is always
// created with public minting enabled. Depth and buffer size are clamped to
// the runtime ceilings.
func CreateTreeConfigInstruction(payer, merkleTree string, maxDepth, maxBufferSize uint32) ([]byte, error) {
	payerKey, err := parseAddress("payer", payer)
	if err != nil {
		return nil, err
	}

	merkleTreeKey, err := parseAddress("merkle_tree", merkleTree)
	if err != nil {
		return nil, err
	}

	treeAuthority, _, err := bubblegum.GetTreeAuthorityAddress(&bubblegum.GetTreeAuthorityAddressArgs{
		MerkleTree: merkleTreeKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive tree authority")
	}

	instruction := bubblegum.NewCreateTreeInstruction(
		&bubblegum.CreateTreeInstructionAccounts{
			TreeAuthority: treeAuthority,
			MerkleTree:    merkleTreeKey,
			Payer:         payerKey,
			TreeCreator:   payerKey,
		},
		&bubblegum.CreateTreeInstructionArgs{
			MaxDepth:      maxDepth,
			MaxBufferSize: maxBufferSize,
			Public:        true,
		},
	)

	return instruction.Marshal(), nil
}

// MintV1Instruction builds the mint_v1 instruction. The payer acts as both
// fee payer and tree creator or delegate.
func MintV1Instruction(treeAuthority, leafOwner, leafDelegate, merkleTree, payer string, metadata *Metadata) ([]byte, error) {
	treeAuthorityKey, err := parseAddress("tree_authority", treeAuthority)
	if err != nil {
		return nil, err
	}

	leafOwnerKey, err := parseAddress("leaf_owner", leafOwner)
	if err != nil {
		return nil, err
	}

	leafDelegateKey, err := parseAddress("leaf_delegate", leafDelegate)
	if err != nil {
		return nil, err
	}

	merkleTreeKey, err := parseAddress("merkle_tree", merkleTree)
	if err != nil {
		return nil, err
	}

	payerKey, err := parseAddress("payer", payer)
	if err != nil {
		return nil, err
	}

	metadataArgs, err := metadata.toWire()
	if err != nil {
		return nil, err
	}

	instruction := bubblegum.NewMintV1Instruction(
		&bubblegum.MintV1InstructionAccounts{
			TreeAuthority:         treeAuthorityKey,
			LeafOwner:             leafOwnerKey,
			LeafDelegate:          leafDelegateKey,
			MerkleTree:            merkleTreeKey,
			Payer:                 payerKey,
			TreeCreatorOrDelegate: payerKey,
		},
		&bubblegum.MintV1InstructionArgs{
			Metadata: *metadataArgs,
		},
	)

	return instruction.Marshal(), nil
}

// MintToCollectionV1Instruction builds the mint_to_collection_v1
// instruction. When collectionMetadata or collectionMasterEdition are empty
// strings they are derived from the collection mint using the token
// metadata program's derivation, so callers that only know the mint can
// omit them.
func MintToCollectionV1Instruction(
	treeAuthority, leafOwner, leafDelegate, merkleTree, payer string,
	collectionAuthority, collectionMint, collectionMetadata, collectionMasterEdition string,
	metadata *Metadata,
) ([]byte, error) {
	treeAuthorityKey, err := parseAddress("tree_authority", treeAuthority)
	if err != nil {
		return nil, err
	}

	leafOwnerKey, err := parseAddress("leaf_owner", leafOwner)
	if err != nil {
		return nil, err
	}

	leafDelegateKey, err := parseAddress("leaf_delegate", leafDelegate)
	if err != nil {
		return nil, err
	}

	merkleTreeKey, err := parseAddress("merkle_tree", merkleTree)
	if err != nil {
		return nil, err
	}

	payerKey, err := parseAddress("payer", payer)
	if err != nil {
		return nil, err
	}

	collectionAuthorityKey, err := parseAddress("collection_authority", collectionAuthority)
	if err != nil {
		return nil, err
	}

	collectionMintKey, err := parseAddress("collection_mint", collectionMint)
	if err != nil {
		return nil, err
	}

	var collectionMetadataKey ed25519.PublicKey
	if collectionMetadata == "" {
		collectionMetadataKey, _, err = metaplex.GetMetadataAddress(&metaplex.GetMetadataAddressArgs{
			Mint: collectionMintKey,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to derive collection metadata")
		}
	} else {
		collectionMetadataKey, err = parseAddress("collection_metadata", collectionMetadata)
		if err != nil {
			return nil, err
		}
	}

	var collectionEditionKey ed25519.PublicKey
	if collectionMasterEdition == "" {
		collectionEditionKey, _, err = metaplex.GetMasterEditionAddress(&metaplex.GetMasterEditionAddressArgs{
			Mint: collectionMintKey,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to derive collection master edition")
		}
	} else {
		collectionEditionKey, err = parseAddress("collection_master_edition", collectionMasterEdition)
		if err != nil {
			return nil, err
		}
	}

	bubblegumSigner, _, err := bubblegum.GetBubblegumSignerAddress()
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive bubblegum signer")
	}

	metadataArgs, err := metadata.toWire()
	if err != nil {
		return nil, err
	}

	instruction := bubblegum.NewMintToCollectionV1Instruction(
		&bubblegum.MintToCollectionV1InstructionAccounts{
			TreeAuthority:         treeAuthorityKey,
			LeafOwner:             leafOwnerKey,
			LeafDelegate:          leafDelegateKey,
			MerkleTree:            merkleTreeKey,
			Payer:                 payerKey,
			TreeCreatorOrDelegate: payerKey,
			CollectionAuthority:   collectionAuthorityKey,
			CollectionMint:        collectionMintKey,
			CollectionMetadata:    collectionMetadataKey,
			CollectionEdition:     collectionEditionKey,
			BubblegumSigner:       bubblegumSigner,
		},
		&bubblegum.MintToCollectionV1InstructionArgs{
			Metadata: *metadataArgs,
		},
	)

	return instruction.Marshal(), nil
}

// TransferInstruction builds the transfer instruction. The current leaf
// owner and delegate are marked as required signers. Proof addresses are
// appended to the account list read-only, in the exact order supplied;
// their order is the merkle path order the on-chain verifier replays.
func TransferInstruction(
	treeAuthority, leafOwner, leafDelegate, newLeafOwner, merkleTree string,
	rootHash, creatorHash, dataHash []byte,
	nonce uint64, index uint32,
	proofAddresses []string,
) ([]byte, error) {
	treeAuthorityKey, err := parseAddress("tree_authority", treeAuthority)
	if err != nil {
		return nil, err
	}

	leafOwnerKey, err := parseAddress("leaf_owner", leafOwner)
	if err != nil {
		return nil, err
	}

	leafDelegateKey, err := parseAddress("leaf_delegate", leafDelegate)
	if err != nil {
		return nil, err
	}

	newLeafOwnerKey, err := parseAddress("new_leaf_owner", newLeafOwner)
	if err != nil {
		return nil, err
	}

	merkleTreeKey, err := parseAddress("merkle_tree", merkleTree)
	if err != nil {
		return nil, err
	}

	root, err := parseHash("root_hash", rootHash)
	if err != nil {
		return nil, err
	}

	creator, err := parseHash("creator_hash", creatorHash)
	if err != nil {
		return nil, err
	}

	data, err := parseHash("data_hash", dataHash)
	if err != nil {
		return nil, err
	}

	proof := make([]ed25519.PublicKey, 0, len(proofAddresses))
	for _, proofAddress := range proofAddresses {
		proofKey, err := parseAddress("proof", proofAddress)
		if err != nil {
			return nil, err
		}
		proof = append(proof, proofKey)
	}

	instruction := bubblegum.NewTransferInstruction(
		&bubblegum.TransferInstructionAccounts{
			TreeAuthority: treeAuthorityKey,
			LeafOwner:     leafOwnerKey,
			LeafDelegate:  leafDelegateKey,
			NewLeafOwner:  newLeafOwnerKey,
			MerkleTree:    merkleTreeKey,
			Proof:         proof,
		},
		&bubblegum.TransferInstructionArgs{
			Root:        root,
			DataHash:    data,
			CreatorHash: creator,
			Nonce:       nonce,
			Index:       index,
		},
	)

	return instruction.Marshal(), nil
}
