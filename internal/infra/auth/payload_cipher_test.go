package auth

import (
	"encoding/base64"
	"testing"

	"bulletin/config"
	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Small scrypt parameters keep the tests fast.
func newTestCipher(t *testing.T, secret string) *gcmPayloadCipher {
	t.Helper()

	c, err := NewPayloadCipherWithKey(KeyDerivation{Secret: secret, Salt: "SpecialSalt", N: 1024, R: 8, P: 1})
	require.NoError(t, err)

	return c.(*gcmPayloadCipher)
}

func TestPayloadCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t, "enc-secret")

	claim := entity.IdentityClaim{
		UserID:       uuid.New(),
		Email:        "a@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}

	sealed, err := c.Encrypt(claim)
	require.NoError(t, err)
	assert.NotContains(t, sealed, claim.Email)

	var got entity.IdentityClaim
	require.NoError(t, c.Decrypt(sealed, &got))
	assert.Equal(t, claim, got)
}

func TestPayloadCipher_EncryptIsNonDeterministic(t *testing.T) {
	c := newTestCipher(t, "enc-secret")

	first, err := c.Encrypt(map[string]string{"k": "v"})
	require.NoError(t, err)
	second, err := c.Encrypt(map[string]string{"k": "v"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPayloadCipher_DecryptFailures(t *testing.T) {
	c := newTestCipher(t, "enc-secret")

	sealed, err := c.Encrypt(map[string]string{"k": "v"})
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	other := newTestCipher(t, "another-secret")
	foreign, err := other.Encrypt(map[string]string{"k": "v"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{name: "tampered ciphertext", input: tampered},
		{name: "different key", input: foreign},
		{name: "not base64", input: "%%%not-base64%%%"},
		{name: "too short", input: base64.RawURLEncoding.EncodeToString([]byte("short"))},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out map[string]string
			err := c.Decrypt(tt.input, &out)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPayloadDecryption))
		})
	}
}

func TestPayloadCipher_SameSecretSharesKey(t *testing.T) {
	a := newTestCipher(t, "enc-secret")
	b := newTestCipher(t, "enc-secret")

	sealed, err := a.Encrypt(map[string]int{"n": 7})
	require.NoError(t, err)

	var out map[string]int
	require.NoError(t, b.Decrypt(sealed, &out))
	assert.Equal(t, 7, out["n"])
}

func TestNewPayloadCipher_RequiresSecret(t *testing.T) {
	_, err := NewPayloadCipher(&config.Config{Auth: &config.AuthConfig{
		Cipher: config.CipherConfig{Salt: "SpecialSalt", N: 1024, R: 8, P: 1},
	}})
	assert.Error(t, err)
}

func TestNewPayloadCipher_RejectsBadScryptParams(t *testing.T) {
	_, err := NewPayloadCipherWithKey(KeyDerivation{Secret: "s", Salt: "salt", N: 3, R: 8, P: 1})
	assert.Error(t, err)
}
