package burnzip

import (
	"bytes"
	"net/http"
	"testing"
	"time"
)

func TestDefaultConstants(t *testing.T) {
	if defaultLinkBase != "https://burnzip.app/" {
		t.Errorf("defaultLinkBase = %s, want https://burnzip.app/", defaultLinkBase)
	}
	if defaultStoreTimeout != 30*time.Second {
		t.Errorf("defaultStoreTimeout = %v, want 30s", defaultStoreTimeout)
	}
}

func TestWithLinkBase(t *testing.T) {
	cfg := &clientConfig{}
	WithLinkBase("https://example.com/view")(cfg)
	if cfg.linkBase != "https://example.com/view" {
		t.Errorf("linkBase = %s, want https://example.com/view", cfg.linkBase)
	}
}

func TestWithRandom(t *testing.T) {
	cfg := &clientConfig{}
	r := bytes.NewReader([]byte{1, 2, 3})
	WithRandom(r)(cfg)
	if cfg.random != r {
		t.Error("random was not set")
	}
}

func TestWithStore(t *testing.T) {
	cfg := &clientConfig{}
	store := NewMemoryStore()
	WithStore(store)(cfg)
	if cfg.store != BlobStore(store) {
		t.Error("store was not set")
	}
}

func TestWithHTTPClient(t *testing.T) {
	cfg := &storeConfig{}
	customClient := &http.Client{Timeout: 99 * time.Second}
	WithHTTPClient(customClient)(cfg)
	if cfg.httpClient != customClient {
		t.Error("httpClient was not set")
	}
}

func TestWithStoreTimeout(t *testing.T) {
	cfg := &storeConfig{}
	WithStoreTimeout(120 * time.Second)(cfg)
	if cfg.timeout != 120*time.Second {
		t.Errorf("timeout = %v, want 120s", cfg.timeout)
	}
}

func TestWithRetries(t *testing.T) {
	cfg := &storeConfig{}
	WithRetries(5)(cfg)
	if cfg.retries != 5 {
		t.Errorf("retries = %d, want 5", cfg.retries)
	}
}

func TestWithRetryOn(t *testing.T) {
	cfg := &storeConfig{}
	codes := []int{500, 502, 503}
	WithRetryOn(codes)(cfg)

	if len(cfg.retryOn) != 3 {
		t.Errorf("retryOn length = %d, want 3", len(cfg.retryOn))
	}
	for i, code := range codes {
		if cfg.retryOn[i] != code {
			t.Errorf("retryOn[%d] = %d, want %d", i, cfg.retryOn[i], code)
		}
	}
}
