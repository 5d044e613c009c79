package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

// Client talks to the HR backend REST API. It is safe for concurrent use;
// the bearer token travels on each call's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL is the backend origin, used to build links to served files.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type tokenKey struct{}

// WithToken returns a context whose backend calls carry token as bearer.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// clientFor wraps the base transport in an oauth2 transport when ctx holds a token.
func (c *Client) clientFor(ctx context.Context) *http.Client {
	token := TokenFromContext(ctx)
	if token == "" {
		return c.httpClient
	}
	return &http.Client{
		Timeout: c.httpClient.Timeout,
		Transport: &oauth2.Transport{
			Base:   c.httpClient.Transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		},
	}
}

type requestOption func(req *http.Request)

func withHeader(key, value string) requestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

func withQuery(query url.Values) requestOption {
	return func(req *http.Request) {
		if len(query) > 0 {
			req.URL.RawQuery = query.Encode()
		}
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any, opts ...requestOption) error {
	resp, err := c.send(ctx, method, path, body, opts...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send performs the request and maps non-2xx responses to *APIError. The
// caller owns the returned body.
func (c *Client) send(ctx context.Context, method, path string, body any, opts ...requestOption) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.clientFor(ctx).Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	slog.Debug("backend call", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, newAPIError(resp.StatusCode, respBody)
	}
	return resp, nil
}

// Download opens a streamed GET, used for server generated files. The caller
// must close the response body.
func (c *Client) Download(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	return c.send(ctx, http.MethodGet, path, nil, withQuery(query), withHeader("Accept", "*/*"))
}

// FileURL turns a server-relative file path into an absolute URL.
func (c *Client) FileURL(path string) string {
	if path == "" {
		return ""
	}
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	if path[0] != '/' {
		path = "/" + path
	}
	return c.baseURL + path
}
