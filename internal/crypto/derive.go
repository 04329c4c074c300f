package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey stretches a shared secret into an AES-256 key using
// PBKDF2-HMAC-SHA-256 with the fixed iteration count. The secret is used as
// raw bytes; length policy belongs to the caller. The call is deliberately
// slow: the iteration count is the only brute-force defense a ten-character
// secret has.
func DeriveKey(secret, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaltSize, len(salt), SaltSize)
	}

	return pbkdf2.Key(secret, salt, Iterations, KeySize, sha256.New), nil
}
