package wire

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// FragmentMarker prefixes the fragment payload of a share link. It doubles
// as the format version: a future layout ships under a new marker, and
// readers ignore fragments they don't recognize.
const FragmentMarker = "share:"

// ErrFragment is returned when a fragment cannot be decoded into a package.
var ErrFragment = errors.New("malformed share fragment")

// EncodeFragment renders a package as a link fragment: the marker followed
// by the standard base64 encoding of the package bytes.
func EncodeFragment(pkg []byte) string {
	return FragmentMarker + base64.StdEncoding.EncodeToString(pkg)
}

// DecodeFragment recovers the package bytes from a link fragment.
func DecodeFragment(fragment string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(fragment, FragmentMarker)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q marker", ErrFragment, FragmentMarker)
	}

	pkg, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFragment, err)
	}

	return pkg, nil
}

// IsShareFragment reports whether a fragment carries a share payload.
// Fragments without the marker belong to someone else and are left alone.
func IsShareFragment(fragment string) bool {
	return strings.HasPrefix(fragment, FragmentMarker)
}
