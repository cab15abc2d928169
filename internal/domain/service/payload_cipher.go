package service

// PayloadCipher seals arbitrary structured payloads so they can travel inside
// otherwise readable envelopes.
type PayloadCipher interface {
	// Encrypt serializes payload and returns a self-contained ciphertext.
	Encrypt(payload any) (string, error)

	// Decrypt reverses Encrypt into out. Any failure matches
	// errors.ErrPayloadDecryption.
	Decrypt(ciphertext string, out any) error
}
