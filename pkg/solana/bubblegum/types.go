package bubblegum

import (
	"crypto/ed25519"
)

const HashSize = 32

// Hash is a 32-byte merkle tree node (root, data hash, or creator hash).
type Hash [HashSize]byte

// TokenStandard mirrors mpl_bubblegum::types::TokenStandard.
type TokenStandard uint8

const (
	TokenStandardNonFungible TokenStandard = iota
	TokenStandardFungibleAsset
	TokenStandardFungible
	TokenStandardNonFungibleEdition
)

// TokenProgramVersion mirrors mpl_bubblegum::types::TokenProgramVersion.
type TokenProgramVersion uint8

const (
	TokenProgramVersionOriginal TokenProgramVersion = iota
	TokenProgramVersionToken2022
)

// UseMethod mirrors mpl_bubblegum::types::UseMethod.
type UseMethod uint8

const (
	UseMethodBurn UseMethod = iota
	UseMethodMultiple
	UseMethodSingle
)

// NewUseMethod maps the numeric use-method code crossing the host boundary
// onto the known enum values.
func NewUseMethod(code uint8) (UseMethod, error) {
	switch UseMethod(code) {
	case UseMethodBurn, UseMethodMultiple, UseMethodSingle:
		return UseMethod(code), nil
	default:
		return 0, ErrInvalidUseMethod
	}
}

// Creator is one royalty beneficiary of a leaf. Share is a percentage in
// [0, 100]; the share sum across a creator list is enforced on chain, not
// here.
type Creator struct {
	Address  ed25519.PublicKey
	Verified bool
	Share    uint8
}

// Collection is an optional link from a leaf to its parent collection NFT.
type Collection struct {
	Verified bool
	Key      ed25519.PublicKey
}

// Uses is the optional usage-limit descriptor of a leaf.
type Uses struct {
	UseMethod UseMethod
	Remaining uint64
	Total     uint64
}

// MetadataArgs is the full on-chain metadata payload of a minted leaf,
// borsh-encoded in exactly the field order mpl-bubblegum declares.
type MetadataArgs struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	PrimarySaleHappened  bool
	IsMutable            bool
	EditionNonce         *uint8
	TokenStandard        TokenStandard
	Collection           *Collection
	Uses                 *Uses
	TokenProgramVersion  TokenProgramVersion
	Creators             []Creator
}

// Size returns the borsh-encoded size of the metadata payload.
func (m *MetadataArgs) Size() int {
	size := (4 + len(m.Name) +
		4 + len(m.Symbol) +
		4 + len(m.Uri) +
		2 + // seller_fee_basis_points
		1 + // primary_sale_happened
		1 + // is_mutable
		1 + // edition_nonce option tag
		2 + // token_standard (always Some)
		1 + // collection option tag
		1 + // uses option tag
		1 + // token_program_version
		4 + len(m.Creators)*(32+1+1))

	if m.EditionNonce != nil {
		size += 1
	}
	if m.Collection != nil {
		size += 1 + 32
	}
	if m.Uses != nil {
		size += 1 + 8 + 8
	}

	return size
}

func putMetadataArgs(dst []byte, m *MetadataArgs, offset *int) {
	putString(dst, m.Name, offset)
	putString(dst, m.Symbol, offset)
	putString(dst, m.Uri, offset)
	putUint16(dst, m.SellerFeeBasisPoints, offset)
	putBool(dst, m.PrimarySaleHappened, offset)
	putBool(dst, m.IsMutable, offset)

	if m.EditionNonce != nil {
		putUint8(dst, 1, offset)
		putUint8(dst, *m.EditionNonce, offset)
	} else {
		putUint8(dst, 0, offset)
	}

	// token_standard is always present in compressed NFT metadata
	putUint8(dst, 1, offset)
	putUint8(dst, uint8(m.TokenStandard), offset)

	if m.Collection != nil {
		putUint8(dst, 1, offset)
		putBool(dst, m.Collection.Verified, offset)
		putKey(dst, m.Collection.Key, offset)
	} else {
		putUint8(dst, 0, offset)
	}

	if m.Uses != nil {
		putUint8(dst, 1, offset)
		putUint8(dst, uint8(m.Uses.UseMethod), offset)
		putUint64(dst, m.Uses.Remaining, offset)
		putUint64(dst, m.Uses.Total, offset)
	} else {
		putUint8(dst, 0, offset)
	}

	putUint8(dst, uint8(m.TokenProgramVersion), offset)

	putUint32(dst, uint32(len(m.Creators)), offset)
	for _, creator := range m.Creators {
		putKey(dst, creator.Address, offset)
		putBool(dst, creator.Verified, offset)
		putUint8(dst, creator.Share, offset)
	}
}

// getMetadataArgs decodes untrusted metadata bytes, so every read is checked
// against the remaining buffer and truncated input is rejected instead of
// panicking.
func getMetadataArgs(src []byte, m *MetadataArgs, offset *int) error {
	if err := getString(src, &m.Name, offset); err != nil {
		return err
	}
	if err := getString(src, &m.Symbol, offset); err != nil {
		return err
	}
	if err := getString(src, &m.Uri, offset); err != nil {
		return err
	}

	// seller_fee_basis_points, primary_sale_happened, is_mutable, and the
	// edition_nonce option tag
	if len(src)-*offset < 2+1+1+1 {
		return ErrInvalidInstructionData
	}
	getUint16(src, &m.SellerFeeBasisPoints, offset)
	getBool(src, &m.PrimarySaleHappened, offset)
	getBool(src, &m.IsMutable, offset)

	var tag uint8

	getUint8(src, &tag, offset)
	if tag == 1 {
		if len(src)-*offset < 1 {
			return ErrInvalidInstructionData
		}
		var nonce uint8
		getUint8(src, &nonce, offset)
		m.EditionNonce = &nonce
	}

	if len(src)-*offset < 1 {
		return ErrInvalidInstructionData
	}
	getUint8(src, &tag, offset)
	if tag == 1 {
		if len(src)-*offset < 1 {
			return ErrInvalidInstructionData
		}
		var standard uint8
		getUint8(src, &standard, offset)
		m.TokenStandard = TokenStandard(standard)
	}

	if len(src)-*offset < 1 {
		return ErrInvalidInstructionData
	}
	getUint8(src, &tag, offset)
	if tag == 1 {
		if len(src)-*offset < 1+ed25519.PublicKeySize {
			return ErrInvalidInstructionData
		}
		var collection Collection
		getBool(src, &collection.Verified, offset)
		getKey(src, &collection.Key, offset)
		m.Collection = &collection
	}

	if len(src)-*offset < 1 {
		return ErrInvalidInstructionData
	}
	getUint8(src, &tag, offset)
	if tag == 1 {
		if len(src)-*offset < 1+8+8 {
			return ErrInvalidInstructionData
		}
		var uses Uses
		var method uint8
		getUint8(src, &method, offset)
		useMethod, err := NewUseMethod(method)
		if err != nil {
			return err
		}
		uses.UseMethod = useMethod
		getUint64(src, &uses.Remaining, offset)
		getUint64(src, &uses.Total, offset)
		m.Uses = &uses
	}

	// token_program_version and the creator count
	if len(src)-*offset < 1+4 {
		return ErrInvalidInstructionData
	}
	var version uint8
	getUint8(src, &version, offset)
	m.TokenProgramVersion = TokenProgramVersion(version)

	var creatorLen uint32
	getUint32(src, &creatorLen, offset)
	if uint64(creatorLen)*(ed25519.PublicKeySize+2) > uint64(len(src)-*offset) {
		return ErrInvalidInstructionData
	}
	m.Creators = make([]Creator, creatorLen)
	for i := range m.Creators {
		getKey(src, &m.Creators[i].Address, offset)
		getBool(src, &m.Creators[i].Verified, offset)
		getUint8(src, &m.Creators[i].Share, offset)
	}

	return nil
}
