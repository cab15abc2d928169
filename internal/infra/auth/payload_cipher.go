package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/scrypt"

	"bulletin/config"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/service"
	"bulletin/internal/errors"
)

const (
	payloadKeyLen = 32 // AES-256
	gcmNonceLen   = 12
)

// KeyDerivation describes how the payload key is stretched from the
// configured secret. Salt is fixed for the whole deployment.
type KeyDerivation struct {
	Secret string
	Salt   string
	N      int
	R      int
	P      int
}

// gcmPayloadCipher seals JSON payloads with AES-256-GCM. Output is
// base64url(nonce || ciphertext || tag) so it can sit inside a JWT claim.
type gcmPayloadCipher struct {
	aead cipher.AEAD
}

// NewPayloadCipher builds the cipher from the encryption secret and the auth cipher settings.
func NewPayloadCipher(cfg *config.Config) (service.PayloadCipher, error) {
	kd := KeyDerivation{Secret: cfg.SecretKey.Encryption}
	if cfg.Auth != nil {
		kd.Salt = cfg.Auth.Cipher.Salt
		kd.N = cfg.Auth.Cipher.N
		kd.R = cfg.Auth.Cipher.R
		kd.P = cfg.Auth.Cipher.P
	}

	return NewPayloadCipherWithKey(kd)
}

// NewPayloadCipherWithKey derives the AES key with scrypt and prepares the AEAD.
func NewPayloadCipherWithKey(kd KeyDerivation) (service.PayloadCipher, error) {
	if kd.Secret == "" {
		return nil, errors.New("encryption secret must be provided")
	}

	key, err := scrypt.Key([]byte(kd.Secret), []byte(kd.Salt), kd.N, kd.R, kd.P, payloadKeyLen)
	if err != nil {
		return nil, errors.Wrap(err, "derive payload key")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "new aes cipher")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "new gcm")
	}

	return &gcmPayloadCipher{aead: aead}, nil
}

// Encrypt serializes payload to JSON and seals it under a fresh random nonce.
func (c *gcmPayloadCipher) Encrypt(payload any) (string, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshal payload")
	}

	nonce := make([]byte, gcmNonceLen, gcmNonceLen+len(plaintext)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "read nonce")
	}

	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt opens ciphertext and unmarshals it into out.
func (c *gcmPayloadCipher) Decrypt(ciphertext string, out any) error {
	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPayloadDecryption, "decode: "+err.Error())
	}

	if len(raw) < gcmNonceLen+c.aead.Overhead() {
		return errors.Wrap(domainerrors.ErrPayloadDecryption, "ciphertext too short")
	}

	nonce, sealed := raw[:gcmNonceLen], raw[gcmNonceLen:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPayloadDecryption, "open: "+err.Error())
	}

	if err := json.Unmarshal(plaintext, out); err != nil {
		return errors.Wrap(domainerrors.ErrPayloadDecryption, "unmarshal: "+err.Error())
	}

	return nil
}
