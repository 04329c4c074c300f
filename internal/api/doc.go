// Package api provides the HTTP client for the BurnZip blob store. It
// handles request/response plumbing and automatic retry with exponential
// backoff for transient failures.
//
// # Endpoints
//
// The store exposes two operations:
//
//   - [Client.PutBlob]: POST /v1/blobs with an application/octet-stream
//     body. The response is JSON carrying the server-assigned blob id.
//   - [Client.GetBlob]: GET /v1/blobs/{id}. The response body is the
//     stored bytes.
//
// Blob content is always an encrypted package. The store never sees
// plaintext, filenames, or anything derived from the shared secret.
//
// # Retry Behavior
//
// Failed requests are retried with exponential backoff and jitter. By
// default, requests are retried up to 3 times for these HTTP status codes:
//
//   - 408 Request Timeout
//   - 429 Too Many Requests
//   - 500 Internal Server Error
//   - 502 Bad Gateway
//   - 503 Service Unavailable
//   - 504 Gateway Timeout
//
// Waits honor the request context; a cancelled context aborts the retry
// loop immediately.
//
// # Error Handling
//
// HTTP errors surface as [*APIError], transport failures as
// [*NetworkError]. A 404 matches [ErrBlobNotFound] via errors.Is:
//
//	if errors.Is(err, api.ErrBlobNotFound) {
//	    // The blob is gone. Expired looks the same as never-existed.
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// call methods on a single Client simultaneously.
package api
