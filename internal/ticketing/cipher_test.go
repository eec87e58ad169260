package ticketing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-admission-platform/internal/models"
)

func TestNewCipher(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		expectErr  bool
	}{
		{
			name:       "valid passphrase",
			passphrase: "city-fair-secret-2026",
		},
		{
			name:       "long passphrase",
			passphrase: strings.Repeat("a", 200),
		},
		{
			name:       "empty passphrase",
			passphrase: "",
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCipher(tt.passphrase)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestCipherRoundTrip(t *testing.T) {
	c, err := NewCipher("test-secret")
	require.NoError(t, err)

	plaintexts := [][]byte{
		[]byte(`{"ticket_id":"abc"}`),
		[]byte(""),
		[]byte("short"),
		[]byte(strings.Repeat("payload ", 100)),
	}

	for _, plaintext := range plaintexts {
		blob, err := c.Encrypt(plaintext)
		require.NoError(t, err)

		decrypted, err := c.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestCipherFreshIVPerEncrypt(t *testing.T) {
	c, err := NewCipher("test-secret")
	require.NoError(t, err)

	plaintext := []byte("identical plaintext")

	blob1, err := c.Encrypt(plaintext)
	require.NoError(t, err)
	blob2, err := c.Encrypt(plaintext)
	require.NoError(t, err)

	// Fresh IVs make ciphertexts for identical plaintexts unlinkable
	assert.NotEqual(t, blob1, blob2)
}

func TestCipherDecryptFailsClosed(t *testing.T) {
	c, err := NewCipher("test-secret")
	require.NoError(t, err)

	tests := []struct {
		name string
		blob string
	}{
		{
			name: "not base64",
			blob: "%%%not-base64%%%",
		},
		{
			name: "empty blob",
			blob: "",
		},
		{
			name: "shorter than IV",
			blob: "c2hvcnQ=", // "short"
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plaintext, err := c.Decrypt(tt.blob)
			assert.Nil(t, plaintext)
			assert.True(t, errors.Is(err, models.ErrInvalidCiphertext))
		})
	}
}

func TestCipherWrongKeyYieldsGarbage(t *testing.T) {
	c1, err := NewCipher("key-one")
	require.NoError(t, err)
	c2, err := NewCipher("key-two")
	require.NoError(t, err)

	plaintext := []byte(`{"ticket_id":"abc","event_id":"e1"}`)
	blob, err := c1.Encrypt(plaintext)
	require.NoError(t, err)

	// CFB has no built-in authentication, so decryption with the wrong key
	// succeeds mechanically but cannot reproduce the plaintext. The codec
	// layered above rejects the result.
	decrypted, err := c2.Decrypt(blob)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, decrypted)
}

func TestCipherKeyDerivationDeterministic(t *testing.T) {
	c1, err := NewCipher("same-passphrase")
	require.NoError(t, err)
	c2, err := NewCipher("same-passphrase")
	require.NoError(t, err)

	// Independent instances derived from the same passphrase must agree,
	// or the issuance and redemption paths could not interoperate
	blob, err := c1.Encrypt([]byte("cross-instance payload"))
	require.NoError(t, err)

	decrypted, err := c2.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("cross-instance payload"), decrypted)
}
