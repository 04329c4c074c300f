package burnzip

import (
	"fmt"
	"io"
)

// SecretLength is the required shared secret length, in bytes.
const SecretLength = 10

// secretAlphabet is the alphabet SuggestSecret draws from. Derivation
// accepts arbitrary secret bytes; the alphabet only keeps suggested codes
// easy to read aloud and retype.
const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// SuggestSecret draws a fresh shared secret from r: SecretLength characters
// of the alphanumeric alphabet. Bytes outside the largest multiple of the
// alphabet size are rejected and redrawn, so every character is equally
// likely.
func SuggestSecret(r io.Reader) (string, error) {
	// 248 = 4 * len(secretAlphabet); accepting only bytes below it keeps
	// the modulo unbiased.
	const limit = 248

	secret := make([]byte, 0, SecretLength)
	buf := make([]byte, 1)

	for len(secret) < SecretLength {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("failed to draw secret: %w", err)
		}
		if buf[0] >= limit {
			continue
		}
		secret = append(secret, secretAlphabet[int(buf[0])%len(secretAlphabet)])
	}

	return string(secret), nil
}

// ValidateSecret checks that a secret has the required length. Content is
// not constrained: the protocol fixes the length, not the alphabet.
func ValidateSecret(secret string) error {
	if len(secret) != SecretLength {
		return &ValidationError{Errors: []string{
			fmt.Sprintf("secret must be exactly %d characters, got %d", SecretLength, len(secret)),
		}}
	}
	return nil
}
