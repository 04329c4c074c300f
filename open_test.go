package burnzip

import (
	"context"
	"errors"
	"testing"
)

// sealMessageLink seals a message behind a secret and returns the share
// link.
func sealMessageLink(t *testing.T, secret, message string) string {
	t.Helper()

	client, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	share := composeMessage(t, client, secret, message)
	if err := share.Seal(context.Background()); err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	return share.Link()
}

// openLink builds a recipient session for a link.
func openLink(t *testing.T, link string) *OpenSession {
	t.Helper()

	client, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	session, err := client.Open(context.Background(), EmbeddedLocator(link))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return session
}

func TestOpenSession_Unlock(t *testing.T) {
	link := sealMessageLink(t, "ABCD123456", "hello")
	session := openLink(t, link)

	payload, err := session.Unlock(context.Background(), "ABCD123456")
	if err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}

	if session.State() != OpenStateReady {
		t.Errorf("State() = %s, want %s", session.State(), OpenStateReady)
	}
	if payload.Filename != DefaultMessageFilename {
		t.Errorf("Filename = %q, want %q", payload.Filename, DefaultMessageFilename)
	}
	if payload.Text() != "hello" {
		t.Errorf("Text() = %q, want hello", payload.Text())
	}
	if !payload.IsText() {
		t.Error("IsText() = false for a text message")
	}

	got, err := session.Payload()
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}
	if got != payload {
		t.Error("Payload() should return the unlocked payload")
	}
}

func TestOpenSession_WrongSecret_ThenRetry(t *testing.T) {
	link := sealMessageLink(t, "ABCD123456", "hello")
	session := openLink(t, link)

	_, err := session.Unlock(context.Background(), "WRONG00000")
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("Unlock() error = %v, want ErrDecryptionFailed", err)
	}
	if session.State() != OpenStateFailed {
		t.Errorf("State() = %s, want %s", session.State(), OpenStateFailed)
	}
	if !errors.Is(session.Err(), ErrDecryptionFailed) {
		t.Errorf("Err() = %v, want ErrDecryptionFailed", session.Err())
	}

	// A wrong guess does not consume the package.
	payload, err := session.Unlock(context.Background(), "ABCD123456")
	if err != nil {
		t.Fatalf("retried Unlock() error = %v", err)
	}
	if payload.Text() != "hello" {
		t.Errorf("Text() = %q, want hello", payload.Text())
	}
	if session.State() != OpenStateReady {
		t.Errorf("State() = %s, want %s", session.State(), OpenStateReady)
	}
	if session.Err() != nil {
		t.Errorf("Err() = %v, want nil after recovery", session.Err())
	}
}

func TestOpenSession_Unlock_SecretLength(t *testing.T) {
	link := sealMessageLink(t, "ABCD123456", "hello")
	session := openLink(t, link)

	_, err := session.Unlock(context.Background(), "short")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}

	// Length validation causes no transition.
	if session.State() != OpenStateAwaitingSecret {
		t.Errorf("State() = %s, want %s", session.State(), OpenStateAwaitingSecret)
	}

	if _, err := session.Unlock(context.Background(), "ABCD123456"); err != nil {
		t.Fatalf("Unlock() after validation error = %v", err)
	}
}

func TestOpenSession_MalformedPackage_Terminal(t *testing.T) {
	// A link can carry bytes that never were a package.
	link, err := BuildShareLink(defaultLinkBase, []byte("junk"))
	if err != nil {
		t.Fatalf("BuildShareLink() error = %v", err)
	}
	session := openLink(t, link)

	_, err = session.Unlock(context.Background(), "ABCD123456")
	if !errors.Is(err, ErrMalformedPackage) {
		t.Fatalf("Unlock() error = %v, want ErrMalformedPackage", err)
	}
	if session.State() != OpenStateFailed {
		t.Errorf("State() = %s, want %s", session.State(), OpenStateFailed)
	}

	// Structural failures are not retryable.
	if _, err := session.Unlock(context.Background(), "ABCD123456"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("retried Unlock() error = %v, want ErrInvalidState", err)
	}
}

func TestOpenSession_Payload_BeforeReady(t *testing.T) {
	link := sealMessageLink(t, "ABCD123456", "hello")
	session := openLink(t, link)

	if _, err := session.Payload(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Payload() error = %v, want ErrInvalidState", err)
	}
}

func TestOpenSession_Unlock_CancelledContext(t *testing.T) {
	link := sealMessageLink(t, "ABCD123456", "hello")
	session := openLink(t, link)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := session.Unlock(ctx, "ABCD123456"); !errors.Is(err, context.Canceled) {
		t.Errorf("Unlock() error = %v, want context.Canceled", err)
	}
	if session.State() != OpenStateAwaitingSecret {
		t.Errorf("State() = %s, want %s", session.State(), OpenStateAwaitingSecret)
	}
}

func TestOpenSession_Clear(t *testing.T) {
	link := sealMessageLink(t, "ABCD123456", "hello")
	session := openLink(t, link)

	payload, err := session.Unlock(context.Background(), "ABCD123456")
	if err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}

	session.Clear()

	if session.State() != OpenStateCleared {
		t.Errorf("State() = %s, want %s", session.State(), OpenStateCleared)
	}
	if _, err := session.Payload(); !errors.Is(err, ErrSessionCleared) {
		t.Errorf("Payload() error = %v, want ErrSessionCleared", err)
	}
	if _, err := session.Unlock(context.Background(), "ABCD123456"); !errors.Is(err, ErrSessionCleared) {
		t.Errorf("Unlock() error = %v, want ErrSessionCleared", err)
	}

	// The payload bytes handed out earlier are wiped in place.
	for i, b := range payload.Data {
		if b != 0 {
			t.Errorf("payload byte %d = %#x after Clear, want 0", i, b)
			break
		}
	}
}

func TestOpenSession_Clear_BeforeUnlock(t *testing.T) {
	link := sealMessageLink(t, "ABCD123456", "hello")
	session := openLink(t, link)

	session.Clear()

	if session.State() != OpenStateCleared {
		t.Errorf("State() = %s, want %s", session.State(), OpenStateCleared)
	}
	if _, err := session.Unlock(context.Background(), "ABCD123456"); !errors.Is(err, ErrSessionCleared) {
		t.Errorf("Unlock() error = %v, want ErrSessionCleared", err)
	}
}
