package crypto

import (
	"bytes"
	"errors"
	"testing"
)

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestNewSalt(t *testing.T) {
	fixed := bytes.Repeat([]byte{0xab}, SaltSize)

	salt, err := NewSalt(bytes.NewReader(fixed))
	if err != nil {
		t.Fatalf("NewSalt() error = %v", err)
	}

	if len(salt) != SaltSize {
		t.Errorf("salt length = %d, want %d", len(salt), SaltSize)
	}
	if !bytes.Equal(salt, fixed) {
		t.Error("salt bytes don't match the reader content")
	}
}

func TestNewNonce(t *testing.T) {
	fixed := bytes.Repeat([]byte{0xcd}, NonceSize)

	nonce, err := NewNonce(bytes.NewReader(fixed))
	if err != nil {
		t.Fatalf("NewNonce() error = %v", err)
	}

	if len(nonce) != NonceSize {
		t.Errorf("nonce length = %d, want %d", len(nonce), NonceSize)
	}
	if !bytes.Equal(nonce, fixed) {
		t.Error("nonce bytes don't match the reader content")
	}
}

func TestNewSalt_ReaderError(t *testing.T) {
	wantErr := errors.New("entropy pool on fire")

	_, err := NewSalt(failingReader{err: wantErr})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected the reader error to propagate, got %v", err)
	}
}

func TestNewNonce_ShortReader(t *testing.T) {
	_, err := NewNonce(bytes.NewReader([]byte{0x01}))
	if err == nil {
		t.Error("expected error for a reader with too few bytes")
	}
}
