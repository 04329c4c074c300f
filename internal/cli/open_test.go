package cli

import (
	"errors"
	"fmt"
	"testing"

	burnzip "github.com/burnzip/client-go"
)

func TestRetryableUnlock(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"wrong secret", burnzip.ErrDecryptionFailed, true},
		{"wrapped wrong secret", fmt.Errorf("unlock: %w", burnzip.ErrDecryptionFailed), true},
		{"length mistake", &burnzip.ValidationError{Errors: []string{"secret must be exactly 10 characters, got 4"}}, true},
		{"broken package", &burnzip.FormatError{Reason: "truncated"}, false},
		{"state misuse", burnzip.ErrInvalidState, false},
		{"anything else", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableUnlock(tt.err); got != tt.want {
				t.Errorf("retryableUnlock(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
