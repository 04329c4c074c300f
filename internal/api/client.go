package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the default per-request timeout.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP client for a BurnZip blob store.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      *RetryConfig
}

// Option configures the API client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetries sets the maximum number of retry attempts.
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = retries
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
func WithRetryOn(statusCodes []int) Option {
	return func(c *Client) {
		codes := make(map[int]struct{}, len(statusCodes))
		for _, code := range statusCodes {
			codes[code] = struct{}{}
		}
		c.retry.RetryableOn = func(statusCode int) bool {
			_, ok := codes[statusCode]
			return ok
		}
	}
}

// New creates a client for the blob store at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retry: DefaultRetryConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// do performs one HTTP call with retries. A fresh request is built for
// every attempt so the body can be resent. The caller owns the returned
// response body.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte) (*http.Response, error) {
	requestURL := c.baseURL + path

	for attempt := 0; ; attempt++ {
		var bodyReader io.Reader
		if body != nil {
			bodyReader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if attempt >= c.retry.MaxRetries {
				return nil, &NetworkError{Err: err, URL: requestURL, Attempt: attempt + 1}
			}
			if waitErr := c.retry.Wait(ctx, attempt); waitErr != nil {
				return nil, waitErr
			}
			continue
		}

		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			resp.Body.Close()
			if waitErr := c.retry.Wait(ctx, attempt); waitErr != nil {
				return nil, waitErr
			}
			continue
		}

		return resp, nil
	}
}

func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Error     string `json:"error"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
		// The message field is for humans; the error field is a code.
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			RequestID:  errResp.RequestID,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}
