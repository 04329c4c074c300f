package burnzip

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"net/url"
)

// Client mints share and open sessions. It carries only immutable
// configuration; sessions never share mutable state, so any number of them
// can run concurrently from one client.
type Client struct {
	linkBase string
	random   io.Reader
	store    BlobStore
}

// New creates a new BurnZip client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		linkBase: defaultLinkBase,
		random:   rand.Reader,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	var problems []string
	if cfg.random == nil {
		problems = append(problems, "random source must not be nil")
	}
	if u, err := url.Parse(cfg.linkBase); err != nil || u.Scheme == "" {
		problems = append(problems, fmt.Sprintf("invalid link base %q", cfg.linkBase))
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Errors: problems}
	}

	return &Client{
		linkBase: cfg.linkBase,
		random:   cfg.random,
		store:    cfg.store,
	}, nil
}

// NewShare starts a sender session in its idle state.
func (c *Client) NewShare() *ShareSession {
	return newShareSession(c)
}

// Open resolves a locator to package bytes and returns a recipient
// session awaiting the shared secret. An embedded locator is decoded
// locally; a reference locator is fetched from the blob store. A failure
// here is terminal for that locator and no session is created.
func (c *Client) Open(ctx context.Context, loc Locator) (*OpenSession, error) {
	var pkg []byte

	switch loc.Kind() {
	case LocatorEmbedded:
		var err error
		pkg, err = ParseShareLink(loc.Link())
		if err != nil {
			return nil, err
		}
	case LocatorReference:
		if c.store == nil {
			return nil, ErrStoreRequired
		}
		var err error
		pkg, err = c.store.Get(ctx, loc.ID())
		if err != nil {
			return nil, err
		}
	default:
		return nil, &ValidationError{Errors: []string{
			"locator has no kind; use EmbeddedLocator or ReferenceLocator",
		}}
	}

	return newOpenSession(pkg), nil
}
