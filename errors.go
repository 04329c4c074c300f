package burnzip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/burnzip/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrDecryptionFailed is returned when a package cannot be decrypted.
	// A wrong secret produces the same error as tampered or truncated
	// data; the cause is deliberately withheld.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptionFailed is returned when sealing a package fails.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrMalformedPackage is returned when bytes do not parse as a package.
	ErrMalformedPackage = errors.New("malformed package")

	// ErrMalformedLink is returned when a share link or fragment cannot be
	// decoded.
	ErrMalformedLink = errors.New("malformed share link")

	// ErrBlobNotFound is returned when the blob store holds nothing under
	// the requested id.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrStoreRequired is returned when an operation needs a blob store and
	// the client was built without one.
	ErrStoreRequired = errors.New("no blob store configured")

	// ErrInvalidState is returned when a session method is called in a
	// state that does not allow it.
	ErrInvalidState = errors.New("operation not allowed in current session state")

	// ErrSessionCleared is returned when a session's content has been
	// wiped and can no longer be read.
	ErrSessionCleared = errors.New("session has been cleared")
)

// BurnZipError is implemented by all SDK errors.
type BurnZipError interface {
	error
	BurnZipError() // marker method
}

// APIError represents an HTTP error from the blob store.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string // if returned by server
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("store error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("store error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("store error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("store error %d", e.StatusCode)
}

// BurnZipError implements the BurnZipError interface.
func (e *APIError) BurnZipError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 404:
		return target == ErrBlobNotFound
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BurnZipError implements the BurnZipError interface.
func (e *NetworkError) BurnZipError() {}

// ValidationError contains multiple validation failures. A session that
// reports one stays in its composing state so the caller can fix the input
// and try again.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Errors)
}

// BurnZipError implements the BurnZipError interface.
func (e *ValidationError) BurnZipError() {}

// FormatError describes a structurally invalid package: truncated header,
// a filename length that overruns the data, or too few trailing bytes to
// hold an encrypted payload.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed package: %s", e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *FormatError) Is(target error) bool {
	return target == ErrMalformedPackage
}

// BurnZipError implements the BurnZipError interface.
func (e *FormatError) BurnZipError() {}

// DecodeError describes a share link or fragment that cannot be decoded.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed share link: %s", e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformedLink
}

// BurnZipError implements the BurnZipError interface.
func (e *DecodeError) BurnZipError() {}

// CryptoError represents a failure while sealing a package. It only ever
// describes the sender's own encryption pipeline; decryption failures are
// always the bare ErrDecryptionFailed, which carries no stage.
type CryptoError struct {
	Op  string // "salt", "derive", "encrypt", "pack"
	Err error
}

func (e *CryptoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("encryption failed at %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("encryption failed at %s", e.Op)
}

// Unwrap returns the underlying error.
func (e *CryptoError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *CryptoError) Is(target error) bool {
	return target == ErrEncryptionFailed
}

// BurnZipError implements the BurnZipError interface.
func (e *CryptoError) BurnZipError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			RequestID:  apiErr.RequestID,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}

// trimSentinel strips a wrapped sentinel's text so a public error built
// from it does not repeat the prefix.
func trimSentinel(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
