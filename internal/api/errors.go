package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrBlobNotFound indicates the requested blob does not exist. A blob
	// that expired or was already burned looks identical to one that never
	// existed.
	ErrBlobNotFound = errors.New("blob not found")
)

// APIError represents an HTTP error from the blob store.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
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

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BurnZipError implements the BurnZipError interface.
func (e *NetworkError) BurnZipError() {}
