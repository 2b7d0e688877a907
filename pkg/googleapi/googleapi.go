package googleapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/observability"
)

// TokenSource supplies the Google OAuth access token for outbound calls.
// Implementations return an empty token when no user is signed in.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken wraps a fixed access token as a TokenSource.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

// Client issues authenticated JSON requests against Google REST endpoints.
type Client struct {
	http   *http.Client
	tokens TokenSource
	logger zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient constructs a Google REST client around the given token source.
func NewClient(tokens TokenSource, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{Timeout: 30 * time.Second},
		tokens: tokens,
		logger: logger.With().Str("component", "googleapi").Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// doJSON performs one authenticated round trip. A nil in skips the request
// body, a nil out discards the response body. The service/op pair labels the
// outbound-call metrics.
func (c *Client) doJSON(ctx context.Context, method, url string, in, out interface{}, service, op string) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("resolve access token: %w", err)
	}
	if token == "" {
		return ErrUnauthenticated
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		observability.GoogleAPICalls().WithLabelValues(service, op, "transport_error").Inc()
		return fmt.Errorf("%s %s: %w", service, op, err)
	}
	defer resp.Body.Close()

	observability.GoogleAPICalls().WithLabelValues(service, op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn().Str("service", service).Str("op", op).Msg("access token rejected")
		return &AuthExpiredError{}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", service, op, err)
		}
	}

	return nil
}
