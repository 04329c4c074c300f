package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPutBlob(t *testing.T) {
	payload := []byte{0x01, 0x02, 0xfe, 0xff}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1/blobs" {
			t.Errorf("path = %s, want /v1/blobs", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/octet-stream" {
			t.Errorf("Content-Type = %s, want application/octet-stream", ct)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read body: %v", err)
		}
		if !bytes.Equal(body, payload) {
			t.Error("uploaded bytes don't match")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"b7a9c2"}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	id, err := client.PutBlob(context.Background(), payload)
	if err != nil {
		t.Fatalf("PutBlob() error = %v", err)
	}
	if id != "b7a9c2" {
		t.Errorf("id = %q, want b7a9c2", id)
	}
}

func TestPutBlob_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"error":"blob exceeds size limit","request_id":"req-42"}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.PutBlob(context.Background(), make([]byte, 10))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("StatusCode = %d, want 413", apiErr.StatusCode)
	}
	if apiErr.Message != "blob exceeds size limit" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.RequestID != "req-42" {
		t.Errorf("RequestID = %q, want req-42", apiErr.RequestID)
	}
}

func TestPutBlob_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := client.PutBlob(context.Background(), []byte("data")); err == nil {
		t.Error("expected error for response without a blob id")
	}
}

func TestGetBlob(t *testing.T) {
	stored := bytes.Repeat([]byte{0xaa, 0x00}, 512)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/v1/blobs/b7a9c2" {
			t.Errorf("path = %s, want /v1/blobs/b7a9c2", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(stored)
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	data, err := client.GetBlob(context.Background(), "b7a9c2")
	if err != nil {
		t.Fatalf("GetBlob() error = %v", err)
	}
	if !bytes.Equal(data, stored) {
		t.Error("downloaded bytes don't match")
	}
}

func TestGetBlob_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"blob not found"}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.GetBlob(context.Background(), "gone")
	if !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("expected ErrBlobNotFound, got %v", err)
	}
}

func TestGetBlob_EscapesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/v1/blobs/a%2Fb" {
			t.Errorf("escaped path = %s, want /v1/blobs/a%%2Fb", r.URL.EscapedPath())
		}
		w.Write([]byte("x"))
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := client.GetBlob(context.Background(), "a/b"); err != nil {
		t.Fatalf("GetBlob() error = %v", err)
	}
}

func TestGetBlob_EmptyID(t *testing.T) {
	client, err := New("https://store.example.com")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := client.GetBlob(context.Background(), ""); err == nil {
		t.Error("expected error for empty blob id")
	}
}

func TestParseErrorResponse_PlainBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded\n"))
	}))
	defer server.Close()

	client, err := New(server.URL, WithRetries(0))
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.GetBlob(context.Background(), "b")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "upstream exploded" {
		t.Errorf("Message = %q, want the trimmed body", apiErr.Message)
	}
}
