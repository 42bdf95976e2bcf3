package identity

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spandan-mozumder/solfund/internal/errno"
)

func TestSignAndVerify(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	payload := []byte(`{"amount":1000000000}`)
	signature, err := Sign(payload, key)
	require.NoError(t, err)

	require.NoError(t, Verify(Address(key), signature, payload))
}

func TestVerifyRejectsWrongSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)

	payload := []byte("payload")
	signature, err := Sign(payload, key)
	require.NoError(t, err)

	assert.ErrorIs(t, Verify(Address(other), signature, payload), errno.ErrUnauthorized)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	signature, err := Sign([]byte("original"), key)
	require.NoError(t, err)

	assert.ErrorIs(t, Verify(Address(key), signature, []byte("tampered")), errno.ErrUnauthorized)
}

func TestVerifyRejectsMalformedSignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	assert.ErrorIs(t, Verify(Address(key), "zz", []byte("payload")), errno.ErrUnauthorized)
	assert.ErrorIs(t, Verify(Address(key), "0xdead", []byte("payload")), errno.ErrUnauthorized)
}

func TestNormalize(t *testing.T) {
	lower := "0x2000000000000000000000000000000000000002"
	assert.Equal(t, Normalize(lower), Normalize("0x2000000000000000000000000000000000000002"))
	assert.True(t, IsValid(lower))
	assert.False(t, IsValid("not-an-address"))
}
