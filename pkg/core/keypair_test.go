package core

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyPair(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	decoded, err := base58.Decode(kp.PublicKey)
	require.NoError(t, err)
	assert.Len(t, decoded, ed25519.PublicKeySize)
	assert.Len(t, kp.Secret, ed25519.PrivateKeySize)

	// The public half of the secret matches the textual public key.
	assert.EqualValues(t, decoded, kp.Secret[ed25519.SeedSize:])

	other, err := GenerateKeyPair()
	require.NoError(t, err)
	assert.NotEqual(t, kp.PublicKey, other.PublicKey)
}

func TestKeypairFromSecret(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	privateKey, err := keypairFromSecret("payer", *kp)
	require.NoError(t, err)
	assert.EqualValues(t, kp.Secret, privateKey)
}

func TestKeypairFromSecret_Invalid(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	short := *kp
	short.Secret = kp.Secret[:32]
	_, err = keypairFromSecret("payer", short)
	assert.True(t, errors.Is(err, ErrInvalidKeyPair))
	assert.Contains(t, err.Error(), "payer")

	// Corrupt the embedded public key so the secret is inconsistent.
	corrupted := *kp
	corrupted.Secret = append([]byte(nil), kp.Secret...)
	corrupted.Secret[ed25519.SeedSize] ^= 0xff
	_, err = keypairFromSecret("merkle_tree", corrupted)
	assert.True(t, errors.Is(err, ErrInvalidKeyPair))
	assert.Contains(t, err.Error(), "merkle_tree")

	empty := KeyPair{}
	_, err = keypairFromSecret("payer", empty)
	assert.True(t, errors.Is(err, ErrInvalidKeyPair))
}
