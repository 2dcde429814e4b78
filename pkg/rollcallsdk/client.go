package rollcallsdk

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client is a client for the rollcall service. It holds at most one session
// credential, set by Login or SetToken and refreshed by the presence
// transitions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a client without a session.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			// Never follow the login page redirect.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Token returns the current session credential.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the session credential. An empty token drops it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Login authenticates and keeps the returned credential.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/session/login", req)
	if err != nil {
		return nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	c.SetToken(out.Session)
	return &out, nil
}

// Logout ends the session and drops the credential.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/session/logout", nil)
	if err != nil {
		return err
	}
	if err := checkStatusNoContent(resp); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

// GetSession describes the current session.
func (c *Client) GetSession(ctx context.Context) (*SessionInfo, error) {
	var out SessionInfo
	if err := c.getJSON(ctx, "/v1/session", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnrollMFA starts TOTP enrollment.
func (c *Client) EnrollMFA(ctx context.Context) (*MFAEnrollResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/session/mfa/enroll", nil)
	if err != nil {
		return nil, err
	}

	var out MFAEnrollResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyMFA confirms enrollment with a code and enables MFA.
func (c *Client) VerifyMFA(ctx context.Context, code string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/session/mfa/verify", MFACodeRequest{Code: code})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// DisableMFA turns MFA off; a current code is required.
func (c *Client) DisableMFA(ctx context.Context, code string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/session/mfa", MFACodeRequest{Code: code})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
