package vaultapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/genvault/genvault-go/internal/model"
)

const (
	opListEntries = "list entries"
	opSaveEntry   = "save entry"
	opGenerate    = "generate password"

	defaultTimeout = 10 * time.Second

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 10 << 20
)

// Client talks to the remote vault API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	token      string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. A nil client keeps
// the default one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout. The http.Client passed to
// WithHTTPClient is never modified; the client uses a copy instead.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.httpClient == nil:
		timeout := c.timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	case c.timeout > 0:
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// ListEntries fetches every entry of the user, in the order the server returns them.
func (c *Client) ListEntries(ctx context.Context, userID string) ([]model.VaultEntry, error) {
	var entries []model.VaultEntry
	if err := c.do(ctx, opListEntries, http.MethodGet, "/api/entries/"+url.PathEscape(userID), nil, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.VaultEntry{}
	}
	return entries, nil
}

// SaveEntry stores draft as a new entry of the user. The response body is ignored.
func (c *Client) SaveEntry(ctx context.Context, userID string, draft model.Draft) error {
	return c.do(ctx, opSaveEntry, http.MethodPost, "/api/save/"+url.PathEscape(userID), draft, nil)
}

// GeneratePassword asks the server for a password built from opts.
// opts are sent as given; the server is responsible for validating them.
func (c *Client) GeneratePassword(ctx context.Context, opts model.GeneratorOptions) (string, error) {
	var resp model.GenerateResponse
	if err := c.do(ctx, opGenerate, http.MethodPost, "/api/generate", opts, &resp); err != nil {
		return "", err
	}
	return resp.Password, nil
}

// do sends one request. body is JSON-encoded when non-nil; out receives the
// decoded response when non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	target := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encoding request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &TransportError{Op: op, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, URL: target, Err: err}
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "vault api call",
		"op", op,
		"method", method,
		"url", target,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	limited := io.LimitReader(resp.Body, maxResponseBytes)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(limited)}
	}

	if out == nil {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, limited)
		return nil
	}

	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return &ServerError{Op: op, StatusCode: resp.StatusCode, Message: "invalid response body: " + err.Error()}
	}
	return nil
}

// errorMessage extracts the {"error": "..."} payload, falling back to the raw body text.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
