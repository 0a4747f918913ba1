// Package client provides a typed HTTP client for the PlexTrac REST API.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags and used in User-Agent headers.
var Version = "dev"

// APIPath is appended to the instance hostname to form the API base URL.
const APIPath = "/api/v1"

// DefaultTimeout bounds a single API call, upload included.
const DefaultTimeout = 10 * time.Minute

// Client talks to the PlexTrac API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Options tunes the underlying HTTP transport.
type Options struct {
	Insecure bool
	// Timeout of zero disables the per-request deadline.
	Timeout time.Duration
}

// BaseURL returns the API root for an instance hostname such as
// "https://acme.plextrac.com".
func BaseURL(hostname string) string {
	return strings.TrimRight(strings.TrimSpace(hostname), "/") + APIPath
}

// New creates a Client for the given instance hostname.
func New(hostname string, opts Options) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: opts.Insecure,
	}
	return &Client{
		BaseURL: BaseURL(hostname),
		HTTPClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		Logger: log.Logger,
	}
}

// FromConfig creates a Client using the transport settings from the current viper config.
func FromConfig(hostname string) *Client {
	timeout := DefaultTimeout
	if viper.IsSet("timeout") {
		timeout = viper.GetDuration("timeout")
	}
	return New(hostname, Options{
		Insecure: viper.GetBool("insecure"),
		Timeout:  timeout,
	})
}

// request builds and executes an HTTP request, decoding a JSON body into result
// when result is non-nil. Only HTTP 200 counts as success.
func (c *Client) request(ctx context.Context, method, path string, auth *AuthHeader, body io.Reader, contentType string, result any) error {
	u, err := url.JoinPath(c.BaseURL, path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if auth != nil {
		auth.apply(req)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ptimport/"+Version)
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Debug().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("api call failed")
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "reading response", Err: err}
	}

	c.Logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("request_id", requestID).
		Msg("api call")

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if result == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, auth *AuthHeader, result any) error {
	return c.request(ctx, http.MethodGet, path, auth, nil, "", result)
}

func (c *Client) postJSON(ctx context.Context, path string, auth *AuthHeader, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}
	return c.request(ctx, http.MethodPost, path, auth, bytes.NewReader(body), "application/json", result)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
