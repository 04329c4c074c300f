package burnzip

import (
	"bytes"
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/burnzip/client-go/internal/api"
)

// BlobStore stores packages that are too large to embed in a link. Put
// must return an id that Get accepts; a blob that is gone, for whatever
// reason, surfaces from Get as ErrBlobNotFound.
//
// Stored bytes are always an encrypted package, so implementations hold
// only ciphertext and cleartext header fields, never payload content.
type BlobStore interface {
	// Put stores data and returns the id it can be fetched under.
	Put(ctx context.Context, data []byte) (string, error)
	// Get fetches the data stored under id.
	Get(ctx context.Context, id string) ([]byte, error)
}

// MemoryStore is an in-process BlobStore for tests and examples.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
	}
}

// Put stores a copy of data under a fresh random id.
func (s *MemoryStore) Put(_ context.Context, data []byte) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[id] = bytes.Clone(data)

	return id, nil
}

// Get fetches a copy of the data stored under id.
func (s *MemoryStore) Get(_ context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[id]
	if !ok {
		return nil, ErrBlobNotFound
	}

	return bytes.Clone(data), nil
}

// Len reports how many blobs the store holds.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

// HTTPStore is a BlobStore backed by a BurnZip storage service.
type HTTPStore struct {
	api *api.Client
}

// NewHTTPStore creates a store client for the service at baseURL.
func NewHTTPStore(baseURL string, opts ...StoreOption) (*HTTPStore, error) {
	cfg := &storeConfig{
		timeout: defaultStoreTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.retries > 0 {
		apiOpts = append(apiOpts, api.WithRetries(cfg.retries))
	}
	if len(cfg.retryOn) > 0 {
		apiOpts = append(apiOpts, api.WithRetryOn(cfg.retryOn))
	}

	apiClient, err := api.New(baseURL, apiOpts...)
	if err != nil {
		return nil, &ValidationError{Errors: []string{err.Error()}}
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &HTTPStore{api: apiClient}, nil
}

// Put uploads data and returns its blob id.
func (s *HTTPStore) Put(ctx context.Context, data []byte) (string, error) {
	id, err := s.api.PutBlob(ctx, data)
	if err != nil {
		return "", wrapError(err)
	}
	return id, nil
}

// Get downloads the blob stored under id.
func (s *HTTPStore) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := s.api.GetBlob(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}
