package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when decryption fails. A wrong key
	// surfaces exactly like a tampered or truncated blob; the failure
	// cause is never exposed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSaltSize is returned when the key-derivation salt size is invalid.
	ErrInvalidSaltSize = errors.New("invalid salt size")
)
