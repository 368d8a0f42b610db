package couriersdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the Courier messaging service. Unauthenticated
// operations (Register, Login, health checks) work immediately; Login and
// Register store the issued bearer token so subsequent calls are
// authenticated. Use SetToken to resume with a previously issued token.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a Courier service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken installs a bearer token for authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the bearer token currently held by the client.
func (c *Client) Token() string { return c.token }

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// Register creates a new account and stores the issued token on the client.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (TokenResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/register", req)
	if err != nil {
		return TokenResponse{}, err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return TokenResponse{}, err
	}

	c.token = out.Token
	return out, nil
}

// Login authenticates with a username and password and stores the issued
// token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return TokenResponse{}, err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return TokenResponse{}, err
	}

	c.token = out.Token
	return out, nil
}

// Users returns the full roster ordered by username.
func (c *Client) Users(ctx context.Context) ([]UserSummary, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/users", nil)
	if err != nil {
		return nil, err
	}

	var out UsersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// User returns the full record of a single user.
func (c *Client) User(ctx context.Context, username string) (UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(username), nil)
	if err != nil {
		return UserResponse{}, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return UserResponse{}, err
	}
	return out, nil
}

// MessagesFrom returns every message the user has sent, oldest first. Only
// the user's own outbox is accessible.
func (c *Client) MessagesFrom(ctx context.Context, username string) ([]MessageResponse, error) {
	return c.listMessages(ctx, "/v1/users/"+url.PathEscape(username)+"/messages/from")
}

// MessagesTo returns every message the user has received, oldest first. Only
// the user's own inbox is accessible.
func (c *Client) MessagesTo(ctx context.Context, username string) ([]MessageResponse, error) {
	return c.listMessages(ctx, "/v1/users/"+url.PathEscape(username)+"/messages/to")
}

func (c *Client) listMessages(ctx context.Context, path string) ([]MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out MessagesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// Send delivers a message from the authenticated user to another user.
func (c *Client) Send(ctx context.Context, req SendMessageRequest) (MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/messages", req)
	if err != nil {
		return MessageResponse{}, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return MessageResponse{}, err
	}
	return out, nil
}

// Message returns a single message. Only the sender or recipient may fetch it.
func (c *Client) Message(ctx context.Context, id int64) (MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/messages/%d", id), nil)
	if err != nil {
		return MessageResponse{}, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return MessageResponse{}, err
	}
	return out, nil
}

// MarkRead marks a message as read. Only the recipient may do this; marking
// an already-read message is a no-op.
func (c *Client) MarkRead(ctx context.Context, id int64) (MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/v1/messages/%d/read", id), nil)
	if err != nil {
		return MessageResponse{}, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return MessageResponse{}, err
	}
	return out, nil
}

// GetLiveness checks whether the service process is up.
func (c *Client) GetLiveness(ctx context.Context) (HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks whether the service can reach its database.
func (c *Client) GetReadiness(ctx context.Context) (HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return HealthResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return HealthResponse{}, fmt.Errorf("failed to read response body: %w", err)
	}

	// readyz reports degradation as a 503 carrying the same body shape, so
	// decode it too and let callers inspect the failing checks.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return HealthResponse{}, parseErrorResponse(resp, body)
	}

	var out HealthResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return HealthResponse{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}
