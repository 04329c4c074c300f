package burnzip

import (
	"fmt"
	"net/url"

	"github.com/burnzip/client-go/internal/wire"
)

// LocatorKind distinguishes how a share travels.
type LocatorKind string

const (
	// LocatorEmbedded means the package rides inside the link itself.
	LocatorEmbedded LocatorKind = "embedded"
	// LocatorReference means the package sits in a blob store and the
	// locator carries only its id.
	LocatorReference LocatorKind = "reference"
)

// Locator says where a share's package lives. The zero value is not a
// valid locator; use EmbeddedLocator or ReferenceLocator.
type Locator struct {
	kind LocatorKind
	link string
	id   string
}

// EmbeddedLocator wraps a full share link.
func EmbeddedLocator(link string) Locator {
	return Locator{kind: LocatorEmbedded, link: link}
}

// ReferenceLocator wraps a blob store id.
func ReferenceLocator(id string) Locator {
	return Locator{kind: LocatorReference, id: id}
}

// Kind returns how the share travels.
func (l Locator) Kind() LocatorKind { return l.kind }

// Link returns the share link of an embedded locator, or "".
func (l Locator) Link() string { return l.link }

// ID returns the blob id of a reference locator, or "".
func (l Locator) ID() string { return l.id }

// BuildShareLink renders a share link: the base URL with the encoded
// package as its fragment. The fragment stays on the client; user agents
// do not transmit it with requests.
func BuildShareLink(base string, pkg []byte) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", &DecodeError{Reason: fmt.Sprintf("invalid base URL: %v", err)}
	}

	u.Fragment = wire.EncodeFragment(pkg)
	return u.String(), nil
}

// ParseShareLink extracts the package bytes from a share link.
func ParseShareLink(link string) ([]byte, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, &DecodeError{Reason: fmt.Sprintf("invalid URL: %v", err)}
	}

	if !wire.IsShareFragment(u.Fragment) {
		return nil, &DecodeError{Reason: "fragment carries no share payload"}
	}

	pkg, err := wire.DecodeFragment(u.Fragment)
	if err != nil {
		return nil, &DecodeError{Reason: trimSentinel(err, wire.ErrFragment)}
	}

	return pkg, nil
}

// HasSharePayload reports whether a link's fragment carries a share
// payload. Links with foreign fragments are not ours to interpret and are
// left alone.
func HasSharePayload(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return wire.IsShareFragment(u.Fragment)
}
