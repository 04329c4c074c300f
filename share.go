package burnzip

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/burnzip/client-go/internal/crypto"
	"github.com/burnzip/client-go/internal/wire"
)

// ShareMode says what kind of content a share carries.
type ShareMode string

const (
	// ShareModeMessage carries a short typed message under
	// DefaultMessageFilename.
	ShareModeMessage ShareMode = "message"
	// ShareModeFile carries a file under its own name.
	ShareModeFile ShareMode = "file"
)

// ShareState is a sender session's lifecycle position.
type ShareState string

const (
	// ShareStateIdle is the state of a freshly minted session.
	ShareStateIdle ShareState = "idle"
	// ShareStateComposing accepts the secret and the content.
	ShareStateComposing ShareState = "composing"
	// ShareStatePackaging is the transient state while Seal runs.
	ShareStatePackaging ShareState = "packaging"
	// ShareStateEmbedReady means the package fit in the link fragment
	// and the share link is available.
	ShareStateEmbedReady ShareState = "embed_ready"
	// ShareStateNeedsStore means the package is too large to embed and
	// must be uploaded to a blob store.
	ShareStateNeedsStore ShareState = "needs_store"
	// ShareStateFailed is terminal; Err holds the cause.
	ShareStateFailed ShareState = "failed"
)

// ShareSession walks one share from composition to a ready link or an
// upload handoff. A session belongs to a single sender flow and shares
// nothing with its siblings; all methods are safe for concurrent use.
type ShareSession struct {
	client *Client

	mu       sync.RWMutex
	state    ShareState
	mode     ShareMode
	secret   string
	filename string
	data     []byte

	pkg        []byte
	transport  Transport
	locator    Locator
	validation *ValidationError
	err        error
}

func newShareSession(c *Client) *ShareSession {
	return &ShareSession{
		client: c,
		state:  ShareStateIdle,
	}
}

// State returns the session's current lifecycle position.
func (s *ShareSession) State() ShareState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Mode returns the composing mode, or "" before Compose.
func (s *ShareSession) Mode() ShareMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Compose moves the session into composition with the given mode. Called
// again while composing it switches the mode and drops any staged
// content; the secret survives the switch.
func (s *ShareSession) Compose(mode ShareMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode != ShareModeMessage && mode != ShareModeFile {
		return &ValidationError{Errors: []string{fmt.Sprintf("unknown share mode %q", mode)}}
	}

	switch s.state {
	case ShareStateIdle, ShareStateComposing:
		s.state = ShareStateComposing
		s.mode = mode
		s.filename = ""
		s.data = nil
		s.validation = nil
		return nil
	default:
		return fmt.Errorf("%w: cannot compose while %s", ErrInvalidState, s.state)
	}
}

// SetSecret stages the shared secret. Length is checked at Seal, not
// here, so a UI can stage keystrokes as they come.
func (s *ShareSession) SetSecret(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != ShareStateComposing {
		return fmt.Errorf("%w: cannot set secret while %s", ErrInvalidState, s.state)
	}
	s.secret = secret
	return nil
}

// SetMessage stages message content. The filename is fixed to
// DefaultMessageFilename.
func (s *ShareSession) SetMessage(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != ShareStateComposing {
		return fmt.Errorf("%w: cannot set message while %s", ErrInvalidState, s.state)
	}
	if s.mode != ShareModeMessage {
		return fmt.Errorf("%w: session is composing a %s share", ErrInvalidState, s.mode)
	}

	s.filename = DefaultMessageFilename
	s.data = []byte(message)
	return nil
}

// SetFile stages file content under its filename.
func (s *ShareSession) SetFile(filename string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != ShareStateComposing {
		return fmt.Errorf("%w: cannot set file while %s", ErrInvalidState, s.state)
	}
	if s.mode != ShareModeFile {
		return fmt.Errorf("%w: session is composing a %s share", ErrInvalidState, s.mode)
	}

	s.filename = filename
	s.data = bytes.Clone(data)
	return nil
}

// Seal validates the staged input and builds the encrypted package.
//
// A validation failure keeps the session in Composing, with the message
// also available from ValidationMessage, so the input can be corrected
// and Seal called again. A crypto failure is terminal. On success the
// session is EmbedReady with a share link, or NeedsStore when the
// package is too large to embed.
func (s *ShareSession) Seal(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != ShareStateComposing {
		return fmt.Errorf("%w: cannot seal while %s", ErrInvalidState, s.state)
	}

	if verr := s.validate(); verr != nil {
		s.validation = verr
		return verr
	}
	s.validation = nil

	if err := ctx.Err(); err != nil {
		return err
	}

	s.state = ShareStatePackaging

	pkg, err := s.buildPackage()
	if err != nil {
		s.fail(err)
		return err
	}

	s.pkg = pkg
	s.transport = DecideTransport(len(pkg))

	if s.transport == TransportEmbed {
		link, err := BuildShareLink(s.client.linkBase, pkg)
		if err != nil {
			s.fail(err)
			return err
		}
		s.locator = EmbeddedLocator(link)
		s.state = ShareStateEmbedReady
		return nil
	}

	s.state = ShareStateNeedsStore
	return nil
}

// Upload sends an oversized package to the configured blob store and
// returns a reference locator for it, also recording it for Locator. The
// session stays in NeedsStore either way, so a failed handoff can simply
// be retried.
func (s *ShareSession) Upload(ctx context.Context) (Locator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != ShareStateNeedsStore {
		return Locator{}, fmt.Errorf("%w: cannot upload while %s", ErrInvalidState, s.state)
	}
	if s.client.store == nil {
		return Locator{}, ErrStoreRequired
	}

	id, err := s.client.store.Put(ctx, s.pkg)
	if err != nil {
		return Locator{}, err
	}

	s.locator = ReferenceLocator(id)
	return s.locator, nil
}

// Link returns the share link once the session is EmbedReady, or "".
func (s *ShareSession) Link() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locator.Link()
}

// Locator returns where the sealed share lives: an embedded link after
// an EmbedReady seal, or a store reference after Upload. The zero
// Locator means neither has happened yet.
func (s *ShareSession) Locator() Locator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locator
}

// PackageBytes returns a copy of the sealed package, or nil before Seal.
func (s *ShareSession) PackageBytes() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bytes.Clone(s.pkg)
}

// Transport returns how the sealed package travels, or "" before Seal.
func (s *ShareSession) Transport() Transport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transport
}

// ValidationMessage returns the most recent Seal validation failure,
// or "".
func (s *ShareSession) ValidationMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.validation == nil {
		return ""
	}
	return s.validation.Error()
}

// Err returns the terminal failure, or nil.
func (s *ShareSession) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ShareSession) fail(err error) {
	s.state = ShareStateFailed
	s.err = err
	s.pkg = nil
}

func (s *ShareSession) validate() *ValidationError {
	var problems []string

	if len(s.secret) != SecretLength {
		problems = append(problems, fmt.Sprintf("secret must be exactly %d characters, got %d", SecretLength, len(s.secret)))
	}
	if len(s.data) == 0 {
		problems = append(problems, "content must not be empty")
	}
	if s.filename == "" {
		problems = append(problems, "filename must not be empty")
	} else if len(s.filename) > wire.MaxFilenameLen {
		problems = append(problems, fmt.Sprintf("filename must be at most %d bytes, got %d", wire.MaxFilenameLen, len(s.filename)))
	}

	if len(problems) > 0 {
		return &ValidationError{Errors: problems}
	}
	return nil
}

func (s *ShareSession) buildPackage() ([]byte, error) {
	// 1. Fresh salt for this share
	salt, err := crypto.NewSalt(s.client.random)
	if err != nil {
		return nil, &CryptoError{Op: "salt", Err: err}
	}

	// 2. Stretch the secret into the content key
	key, err := crypto.DeriveKey([]byte(s.secret), salt)
	if err != nil {
		return nil, &CryptoError{Op: "derive", Err: err}
	}

	// 3. Seal the content
	blob, err := crypto.EncryptAES(key, s.data, s.client.random)
	if err != nil {
		return nil, &CryptoError{Op: "encrypt", Err: err}
	}

	// 4. Assemble the package
	pkg, err := wire.Pack(salt, s.filename, blob)
	if err != nil {
		return nil, &CryptoError{Op: "pack", Err: err}
	}

	return pkg, nil
}
