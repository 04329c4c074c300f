package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// blobsPath is the blob collection endpoint.
const blobsPath = "/v1/blobs"

// PutBlob uploads a package and returns the server-assigned blob id.
// The body is opaque bytes; the store never learns what it holds.
func (c *Client) PutBlob(ctx context.Context, data []byte) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, blobsPath, "application/octet-stream", data)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", parseErrorResponse(resp)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("store response carried no blob id")
	}

	return result.ID, nil
}

// GetBlob downloads the blob stored under id.
func (c *Client) GetBlob(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, fmt.Errorf("blob id is required")
	}

	path := fmt.Sprintf("%s/%s", blobsPath, url.PathEscape(id))
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, parseErrorResponse(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}

	return data, nil
}
