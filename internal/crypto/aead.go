package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
)

// encryptAESGCM seals plaintext using AES-256-GCM under an explicit nonce.
func encryptAESGCM(key, nonce, plaintext []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// EncryptAES encrypts data using AES-256-GCM with a fresh nonce drawn from r.
// Returns: nonce (12 bytes) || ciphertext || tag (16 bytes).
// A nonce is drawn on every call and never reused.
func EncryptAES(key, plaintext []byte, r io.Reader) ([]byte, error) {
	nonce, err := NewNonce(r)
	if err != nil {
		return nil, err
	}

	return encryptAESGCM(key, nonce, plaintext)
}

// DecryptAES decrypts a blob produced by EncryptAES.
// The blob format is: nonce (12 bytes) || ciphertext || tag (16 bytes).
// Every data-path failure, including a blob too short to carry a nonce and
// tag, reports ErrDecryptionFailed; the error never reveals which part of
// the blob was wrong.
func DecryptAES(key, blob []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(blob) < NonceSize+TagSize {
		return nil, ErrDecryptionFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, blob[:NonceSize], blob[NonceSize:], nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
