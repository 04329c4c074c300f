package burnzip

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/burnzip/client-go/internal/crypto"
	"github.com/burnzip/client-go/internal/wire"
)

// OpenState is a recipient session's lifecycle position.
type OpenState string

const (
	// OpenStateAwaitingSecret means the package is loaded and the
	// session needs the shared secret.
	OpenStateAwaitingSecret OpenState = "awaiting_secret"
	// OpenStateDecrypting is the transient state while Unlock runs.
	OpenStateDecrypting OpenState = "decrypting"
	// OpenStateReady means the content decrypted and Payload is
	// available.
	OpenStateReady OpenState = "ready"
	// OpenStateFailed means the last Unlock failed; Err holds the
	// cause. Only a failed decrypt may be retried.
	OpenStateFailed OpenState = "failed"
	// OpenStateCleared is terminal; the package and any decrypted
	// content have been wiped.
	OpenStateCleared OpenState = "cleared"
)

// OpenSession walks one received share from secret entry to plaintext.
// A wrong secret is recoverable and Unlock may be tried again; a
// structural failure is not. A session belongs to a single recipient
// flow and shares nothing with its siblings; all methods are safe for
// concurrent use.
type OpenSession struct {
	mu      sync.RWMutex
	state   OpenState
	pkg     []byte
	payload *Payload
	err     error
}

func newOpenSession(pkg []byte) *OpenSession {
	return &OpenSession{
		state: OpenStateAwaitingSecret,
		pkg:   pkg,
	}
}

// State returns the session's current lifecycle position.
func (s *OpenSession) State() OpenState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Unlock attempts decryption with the given secret.
//
// A bad secret length is a validation error and causes no transition. A
// structurally broken package fails the session for good. A failed
// decrypt also moves the session to Failed, but with
// ErrDecryptionFailed, and Unlock may be called again with another
// secret: the package outlives a wrong guess.
func (s *OpenSession) Unlock(ctx context.Context, secret string) (*Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case OpenStateAwaitingSecret:
	case OpenStateFailed:
		if !errors.Is(s.err, ErrDecryptionFailed) {
			return nil, fmt.Errorf("%w: cannot unlock while %s", ErrInvalidState, s.state)
		}
	case OpenStateCleared:
		return nil, ErrSessionCleared
	default:
		return nil, fmt.Errorf("%w: cannot unlock while %s", ErrInvalidState, s.state)
	}

	if err := ValidateSecret(secret); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.state = OpenStateDecrypting
	s.err = nil

	payload, err := s.decrypt(secret)
	if err != nil {
		s.state = OpenStateFailed
		s.err = err
		return nil, err
	}

	s.payload = payload
	s.state = OpenStateReady
	return payload, nil
}

// Payload returns the decrypted content once the session is Ready.
func (s *OpenSession) Payload() (*Payload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.state {
	case OpenStateReady:
		return s.payload, nil
	case OpenStateCleared:
		return nil, ErrSessionCleared
	default:
		return nil, fmt.Errorf("%w: no payload while %s", ErrInvalidState, s.state)
	}
}

// Err returns the most recent Unlock failure, or nil.
func (s *OpenSession) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Clear wipes the package and any decrypted content and retires the
// session. The zeroing is best effort; Go copies slice contents freely
// and earlier copies may survive elsewhere in memory. Cleared is
// terminal: Unlock and Payload report ErrSessionCleared afterwards.
func (s *OpenSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	zeroBytes(s.pkg)
	s.pkg = nil
	if s.payload != nil {
		zeroBytes(s.payload.Data)
		s.payload = nil
	}
	s.err = nil
	s.state = OpenStateCleared
}

func (s *OpenSession) decrypt(secret string) (*Payload, error) {
	// 1. Split the package into salt, filename and blob
	parts, err := wire.Unpack(s.pkg)
	if err != nil {
		return nil, &FormatError{Reason: trimSentinel(err, wire.ErrFormat)}
	}

	// 2. Stretch the secret with the package salt
	key, err := crypto.DeriveKey([]byte(secret), parts.Salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	// 3. Open the blob. Every failure collapses into one error so a
	// caller cannot tell a wrong secret from tampered data.
	data, err := crypto.DecryptAES(key, parts.Blob)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return &Payload{Filename: parts.Filename, Data: data}, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
