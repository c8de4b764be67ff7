// Package storage downloads uploaded resume files from blob storage over
// HTTP. The core only ever needs bytes in, text out.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single blob download
const DefaultTimeout = 30 * time.Second

// Error represents a blob download failure
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("storage error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Client fetches file bytes from a blob storage endpoint by object path
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a storage client rooted at the given base URL
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// Download retrieves the raw bytes of a stored object
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	requestURL := c.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &Error{Path: path, Message: "failed to create request", Cause: err}
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Path: path, Message: "download failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Path: path, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Path: path, Message: "failed to read body", Cause: err}
	}
	return data, nil
}

// PathFromURL derives the object path from a stored public URL: everything
// after the bucket segment. Returns "" when the URL doesn't reference the
// bucket.
func PathFromURL(rawURL, bucket string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	marker := "/" + bucket + "/"
	idx := strings.Index(parsed.Path, marker)
	if idx < 0 {
		return ""
	}
	return parsed.Path[idx+len(marker):]
}
