package core

import (
	"bytes"
	"crypto/ed25519"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// KeyPair is the host representation of a signing identity: the textual
// public key plus the raw 64-byte secret. The secret is only ever held for
// the duration of a single call and must never be logged or retained.
type KeyPair struct {
	PublicKey string
	Secret    []byte
}

// GenerateKeyPair produces a fresh random ed25519 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, errors.Wrap(err, "error generating private key")
	}

	return &KeyPair{
		PublicKey: base58.Encode(pub),
		Secret:    priv,
	}, nil
}

// keypairFromSecret validates the secret material of a host-supplied key
// pair and returns the private key. The public half embedded in the secret
// must match the key derived from the seed, and must be a valid curve
// point.
func keypairFromSecret(field string, kp KeyPair) (ed25519.PrivateKey, error) {
	if len(kp.Secret) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(ErrInvalidKeyPair, "%s", field)
	}

	derived := ed25519.NewKeyFromSeed(kp.Secret[:ed25519.SeedSize])
	if !bytes.Equal(derived, kp.Secret) {
		return nil, errors.Wrapf(ErrInvalidKeyPair, "%s", field)
	}

	pub := derived.Public().(ed25519.PublicKey)
	if !isOnCurve(pub) {
		return nil, errors.Wrapf(ErrInvalidKeyPair, "%s", field)
	}

	return derived, nil
}

func isOnCurve(pubKey ed25519.PublicKey) bool {
	if len(pubKey) != ed25519.PublicKeySize {
		return false
	}

	// Try to parse the public key as a point
	_, err := new(edwards25519.Point).SetBytes(pubKey)
	return err == nil
}
