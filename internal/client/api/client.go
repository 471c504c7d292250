// Package api is the single chokepoint for all backend calls. It owns
// credential attachment, anti-forgery attachment, and the one-shot
// refresh-and-retry recovery on authentication failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/leettrack/internal/client/session"
	"github.com/dmitrijs2005/leettrack/internal/common"
	"github.com/dmitrijs2005/leettrack/internal/logging"
)

const refreshPath = "/auth/token/refresh/"

// Config holds client configuration. Session and OnAuthExpired are
// injected rather than reached for globally: the session is the only
// credential source, and OnAuthExpired is the capability invoked when
// refresh recovery fails (the CLI uses it to fall back to the login
// prompt).
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	Session       *session.Session
	Logger        logging.Logger
	HTTPClient    *http.Client
	OnAuthExpired func()
}

// Client is the REST transport.
type Client struct {
	baseURL       string
	http          *http.Client
	session       *session.Session
	log           logging.Logger
	onAuthExpired func()
}

// New creates a Client. A cookie jar is always installed so the
// anti-forgery cookie set by the bootstrap call survives across
// requests.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}
	if cfg.Session == nil {
		return nil, fmt.Errorf("Session is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	log := cfg.Logger
	if log == nil {
		log = logging.NewZerologLogger(zerolog.Nop())
	}

	return &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		http:          httpClient,
		session:       cfg.Session,
		log:           log,
		onAuthExpired: cfg.OnAuthExpired,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, params, nil, false)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, nil, body, false)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body, false)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, false)
}

// do performs one request. retried threads the one-shot retry state
// through the pipeline explicitly, so no request descriptor is ever
// mutated: a request that has already been retried once is returned
// as-is even if it fails with 401 again.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, retried bool) (*Response, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	c.setAuthHeaders(req)

	c.log.Debug(ctx, "sending request", "method", method, "path", path, "request_id", reqID, "retried", retried)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !retried {
		if err := c.refresh(ctx); err != nil {
			// Recovery failed: the session is over. Clear credentials
			// and hand control back to the login flow.
			c.log.Warn(ctx, "token refresh failed", "error", err)
			if clearErr := c.session.Clear(ctx); clearErr != nil {
				c.log.Error(ctx, "failed to clear session", "error", clearErr)
			}
			if c.onAuthExpired != nil {
				c.onAuthExpired()
			}
			return nil, fmt.Errorf("%w: %v", common.ErrSessionExpired, err)
		}
		return c.do(ctx, method, path, params, body, true)
	}

	if resp.StatusCode >= 400 {
		return &Response{StatusCode: resp.StatusCode, Body: data, Header: resp.Header},
			parseError(resp.StatusCode, data)
	}

	return &Response{StatusCode: resp.StatusCode, Body: data, Header: resp.Header}, nil
}

// setAuthHeaders attaches the bearer token when one is stored, and the
// anti-forgery header on state-changing methods when the cookie is
// present. A missing cookie never fails the request; the backend
// handles it.
func (c *Client) setAuthHeaders(req *http.Request) {
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	if req.Method != http.MethodGet {
		if token := c.csrfToken(); token != "" {
			req.Header.Set(common.CSRFHeaderName, token)
		}
	}
}

// csrfToken reads the anti-forgery cookie fresh from the jar.
func (c *Client) csrfToken() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.http.Jar.Cookies(u) {
		if cookie.Name == common.CSRFCookieName {
			return cookie.Value
		}
	}
	return ""
}

// refresh exchanges the stored refresh token for a new access token and
// stores it. It bypasses do to keep the recovery path out of the retry
// logic.
func (c *Client) refresh(ctx context.Context) error {
	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		return common.ErrorUnauthorized
	}

	payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.csrfToken(); token != "" {
		req.Header.Set(common.CSRFHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("refresh request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read refresh response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, data)
	}

	var body struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}
	if body.Access == "" {
		return common.ErrInvalidToken
	}

	c.log.Debug(ctx, "access token refreshed")

	return c.session.SetAccessToken(ctx, body.Access)
}
