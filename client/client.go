package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccessDenied       = errors.New("access denied for this application")
	ErrSessionExpired     = errors.New("session expired, please log in again")
)

// APIError is a non-2xx backend response that is not an auth failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Response is the backend's standard envelope with the payload left raw
// for the caller to decode.
type Response struct {
	StatusCode int
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Meta       json.RawMessage `json:"meta"`
}

// Client is the single request path to the Brewhouse API. It attaches the
// bearer token to outgoing requests and recovers from an expired access
// token at most once per logical request: on a 401 it refreshes, replaces
// the stored access token and retries; a second 401, or a failed refresh,
// tears the session down.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	store        *Store
	requiredRole string
	onExpired    func()
	refreshing   singleflight.Group
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRequiredRole makes Login reject users whose role differs, even when
// their credentials are valid. The admin dashboard sets "admin".
func WithRequiredRole(role string) Option {
	return func(c *Client) { c.requiredRole = role }
}

// WithSessionExpiredHandler registers the hook invoked when the session is
// torn down after an unrecoverable 401. The UI uses it to redirect to the
// login view.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) { c.onExpired = fn }
}

func New(baseURL string, store *Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the currently persisted session.
func (c *Client) Session() Session {
	return loadSession(c.store)
}

// Login authenticates against the backend and persists the returned token
// pair and identity. When a required role is configured, a valid login
// with any other role returns ErrAccessDenied and nothing is persisted.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", body, "")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: resp.Message}
	}

	var payload struct {
		Token        string   `json:"token"`
		RefreshToken string   `json:"refreshToken"`
		User         Identity `json:"user"`
	}
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		return nil, fmt.Errorf("malformed login response: %w", err)
	}

	if c.requiredRole != "" && payload.User.Role != c.requiredRole {
		return nil, ErrAccessDenied
	}

	sess := Session{
		AccessToken:  payload.Token,
		RefreshToken: payload.RefreshToken,
		User:         payload.User,
	}
	saveSession(c.store, sess)

	return &sess, nil
}

// Logout clears the persisted session. Purely local: the access token
// simply ages out server-side.
func (c *Client) Logout() {
	clearSession(c.store)
}

// Do performs an authenticated request. body may be nil or any
// JSON-marshalable value. On 401 the one-shot refresh-and-retry described
// on Client runs; when it cannot recover, the session is cleared, the
// expiry hook fires and ErrSessionExpired is returned.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	sess := loadSession(c.store)

	resp, err := c.do(ctx, method, path, body, sess.AccessToken)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return checkStatus(resp)
	}

	if sess.RefreshToken == "" {
		c.expireSession()
		return nil, ErrSessionExpired
	}

	newToken, err := c.Refresh(ctx)
	if err != nil {
		c.expireSession()
		return nil, ErrSessionExpired
	}

	resp, err = c.do(ctx, method, path, body, newToken)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		// refresh succeeded but the new token was still rejected; give up
		// rather than loop
		c.expireSession()
		return nil, ErrSessionExpired
	}

	return checkStatus(resp)
}

// Refresh exchanges the stored refresh token for a new access token and
// persists it in place. Concurrent callers are coalesced so only a single
// refresh request is ever in flight; every waiter observes its result.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	v, err, _ := c.refreshing.Do("refresh", func() (interface{}, error) {
		sess := loadSession(c.store)
		if sess.RefreshToken == "" {
			return "", ErrSessionExpired
		}

		body := map[string]string{"refreshToken": sess.RefreshToken}
		// the outcome is shared by every coalesced waiter, so one caller's
		// cancellation must not abort the request
		resp, err := c.do(context.WithoutCancel(ctx), http.MethodPost, "/api/auth/refresh-token", body, "")
		if err != nil {
			return "", err
		}
		if resp.StatusCode != http.StatusOK {
			return "", &APIError{StatusCode: resp.StatusCode, Message: resp.Message}
		}

		var payload struct {
			AccessToken string `json:"accessToken"`
		}
		if err := json.Unmarshal(resp.Data, &payload); err != nil {
			return "", fmt.Errorf("malformed refresh response: %w", err)
		}
		if payload.AccessToken == "" {
			return "", errors.New("refresh returned an empty token")
		}

		c.store.Set(keyAccessToken, payload.AccessToken)
		return payload.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// do performs a single HTTP round trip with no retry logic.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, token string) (*Response, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	resp := &Response{StatusCode: httpResp.StatusCode}
	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		// a body that is not the standard envelope is not fatal; the
		// status code still drives control flow
		json.Unmarshal(raw, resp)
	}

	return resp, nil
}

func (c *Client) expireSession() {
	clearSession(c.store)
	if c.onExpired != nil {
		c.onExpired()
	}
}

func checkStatus(resp *Response) (*Response, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	return nil, &APIError{StatusCode: resp.StatusCode, Message: resp.Message}
}
