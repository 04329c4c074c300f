package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			"status only",
			&APIError{StatusCode: 500},
			"store error 500",
		},
		{
			"with message",
			&APIError{StatusCode: 404, Message: "blob not found"},
			"store error 404: blob not found",
		},
		{
			"with request id",
			&APIError{StatusCode: 500, RequestID: "req-1"},
			"store error 500 (request_id: req-1)",
		},
		{
			"message and request id",
			&APIError{StatusCode: 413, Message: "too large", RequestID: "req-2"},
			"store error 413: too large (request_id: req-2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	notFound := &APIError{StatusCode: 404, Message: "blob not found"}

	if !errors.Is(notFound, ErrBlobNotFound) {
		t.Error("404 should match ErrBlobNotFound")
	}

	serverErr := &APIError{StatusCode: 500}
	if errors.Is(serverErr, ErrBlobNotFound) {
		t.Error("500 should not match ErrBlobNotFound")
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &NetworkError{Err: cause, URL: "https://store.example.com", Attempt: 2}

	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
}
