package core

import (
	"github.com/pkg/errors"

	"github.com/benodiwal/bubblegum-nifs/pkg/pointer"
	"github.com/benodiwal/bubblegum-nifs/pkg/solana/bubblegum"
)

// Creator is one royalty beneficiary as supplied by the host.
type Creator struct {
	Address  string
	Verified bool
	Share    uint8
}

// Collection optionally links the minted leaf to a parent collection.
type Collection struct {
	Verified bool
	Key      string
}

// Uses optionally limits how the minted leaf may be used. UseMethod must be
// one of 0 (burn), 1 (multiple), or 2 (single).
type Uses struct {
	UseMethod uint8
	Remaining uint64
	Total     uint64
}

// Metadata is the host description of a leaf to mint. The token standard is
// always non-fungible and the token program version is always the original
// one: this engine is single purpose to compressed NFTs, so neither is a
// caller option.
type Metadata struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	PrimarySaleHappened  bool
	IsMutable            bool
	EditionNonce         *uint8
	Creators             []Creator
	Collection           *Collection
	Uses                 *Uses
}

// toWire converts the host metadata into the program's on-wire structure,
// validating every nested field. The first invalid field aborts the
// conversion.
func (m *Metadata) toWire() (*bubblegum.MetadataArgs, error) {
	creators := make([]bubblegum.Creator, 0, len(m.Creators))
	for _, creator := range m.Creators {
		address, err := parseAddress("creator", creator.Address)
		if err != nil {
			return nil, err
		}

		creators = append(creators, bubblegum.Creator{
			Address:  address,
			Verified: creator.Verified,
			Share:    creator.Share,
		})
	}

	var collection *bubblegum.Collection
	if m.Collection != nil {
		key, err := parseAddress("collection", m.Collection.Key)
		if err != nil {
			return nil, err
		}

		collection = &bubblegum.Collection{
			Verified: m.Collection.Verified,
			Key:      key,
		}
	}

	var uses *bubblegum.Uses
	if m.Uses != nil {
		useMethod, err := bubblegum.NewUseMethod(m.Uses.UseMethod)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidUseMethod, "uses")
		}

		uses = &bubblegum.Uses{
			UseMethod: useMethod,
			Remaining: m.Uses.Remaining,
			Total:     m.Uses.Total,
		}
	}

	return &bubblegum.MetadataArgs{
		Name:                 m.Name,
		Symbol:               m.Symbol,
		Uri:                  m.Uri,
		SellerFeeBasisPoints: m.SellerFeeBasisPoints,
		PrimarySaleHappened:  m.PrimarySaleHappened,
		IsMutable:            m.IsMutable,
		EditionNonce:         pointer.Uint8Copy(m.EditionNonce),
		TokenStandard:        bubblegum.TokenStandardNonFungible,
		Collection:           collection,
		Uses:                 uses,
		TokenProgramVersion:  bubblegum.TokenProgramVersionOriginal,
		Creators:             creators,
	}, nil
}
