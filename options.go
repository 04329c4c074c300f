package burnzip

import (
	"io"
	"net/http"
	"time"
)

const (
	defaultLinkBase     = "https://burnzip.app/"
	defaultStoreTimeout = 30 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	linkBase string
	random   io.Reader
	store    BlobStore
}

// storeConfig holds configuration for the HTTP blob store.
type storeConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryOn    []int
}

// Option configures the client.
type Option func(*clientConfig)

// StoreOption configures the HTTP blob store.
type StoreOption func(*storeConfig)

// WithLinkBase sets the base URL share links are built on. The package
// rides in the URL fragment, which user agents never transmit, so the base
// decides only where the recipient's viewer loads from.
func WithLinkBase(base string) Option {
	return func(c *clientConfig) {
		c.linkBase = base
	}
}

// WithRandom sets the source used for salts and nonces.
// Intended for tests; production callers should keep the default crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(c *clientConfig) {
		c.random = r
	}
}

// WithStore sets the blob store used for packages too large to embed in a
// link.
func WithStore(store BlobStore) Option {
	return func(c *clientConfig) {
		c.store = store
	}
}

// WithHTTPClient sets a custom HTTP client for store requests.
func WithHTTPClient(client *http.Client) StoreOption {
	return func(c *storeConfig) {
		c.httpClient = client
	}
}

// WithStoreTimeout sets the per-request timeout for store calls.
func WithStoreTimeout(timeout time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries for store calls.
func WithRetries(count int) StoreOption {
	return func(c *storeConfig) {
		c.retries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) StoreOption {
	return func(c *storeConfig) {
		c.retryOn = statusCodes
	}
}
