package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the archive.org site root used for search and
	// metadata lookups.
	DefaultBaseURL = "https://archive.org"

	// DefaultDownloadBaseURL is the root used for per-item file downloads,
	// including the closed-caption endpoint.
	DefaultDownloadBaseURL = "https://archive.org/download"

	// DefaultTimeout bounds every request to the archive. The endpoint
	// availability is not under our control, so requests never hang
	// indefinitely.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "iatv/1.0 (+https://archive.org/details/tv)"
)

// Config holds client configuration. Zero-value fields fall back to the
// archive.org defaults, so Config{} is a usable production configuration.
type Config struct {
	// BaseURL overrides the archive.org site root (search + metadata).
	BaseURL string

	// DownloadBaseURL overrides the download root (caption chunks).
	DownloadBaseURL string

	// Timeout overrides the per-request timeout.
	Timeout time.Duration

	// UserAgent overrides the User-Agent header sent on every request.
	UserAgent string
}

// Client talks to the archive.org TV News Archive. It holds no mutable
// state beyond its configuration; every Show handle created from it is
// independent.
type Client struct {
	baseURL         string
	downloadBaseURL string
	userAgent       string
	httpClient      *http.Client
}

// NewClient creates a client for the TV News Archive.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.DownloadBaseURL == "" {
		cfg.DownloadBaseURL = DefaultDownloadBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	return &Client{
		baseURL:         cfg.BaseURL,
		downloadBaseURL: cfg.DownloadBaseURL,
		userAgent:       cfg.UserAgent,
		httpClient:      &http.Client{Timeout: cfg.Timeout},
	}
}

// get fetches url and returns the response body. A 404 maps to ErrNotFound,
// any other non-2xx status or transport failure maps to ErrRequestFailed.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrRequestFailed, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	return body, nil
}
