package crypto

import (
	"fmt"
	"io"
)

// NewSalt draws a fresh key-derivation salt from r.
func NewSalt(r io.Reader) ([]byte, error) {
	return randomBytes(r, SaltSize, "salt")
}

// NewNonce draws a fresh AES-GCM nonce from r.
func NewNonce(r io.Reader) ([]byte, error) {
	return randomBytes(r, NonceSize, "nonce")
}

func randomBytes(r io.Reader, size int, what string) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read random %s: %w", what, err)
	}
	return buf, nil
}
