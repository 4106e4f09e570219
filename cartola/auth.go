package cartola

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

const (
	tokenHeader = "X-GLB-Token"
	serviceID   = 4728
)

// session holds the account used to re-authenticate and the current token.
// The token is replaced whenever an authentication succeeds.
type session struct {
	mu       sync.Mutex
	email    string
	password string
	token    string
}

func (s *session) getToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *session) credentials() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email, s.password
}

func (s *session) set(email, password, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = email
	s.password = password
	s.token = token
}

type authRequest struct {
	Payload authPayload `json:"payload"`
}

type authPayload struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	ServiceID int    `json:"serviceId"`
}

type authResponse struct {
	ID          string `json:"id"`
	UserMessage string `json:"userMessage"`
	GlbID       string `json:"glbId"`
}

// Authenticate logs in with the given account and keeps the returned token
// for the following requests. It is a no-op when both email and password are
// empty, and fails without any request when only one of them is given.
func (c *Client) Authenticate(ctx context.Context, email, password string) error {
	if email == "" && password == "" {
		return nil
	}
	if email == "" || password == "" {
		return newAPIError(msgCredentialsMissing)
	}

	body, err := json.Marshal(authRequest{
		Payload: authPayload{Email: email, Password: password, ServiceID: serviceID},
	})
	if err != nil {
		return fmt.Errorf("error encoding authentication request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating authentication request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending authentication request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading authentication response: %w", err)
	}

	var parsed authResponse
	jsonErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode != http.StatusOK {
		if jsonErr == nil && parsed.UserMessage != "" {
			return &APIError{Message: parsed.UserMessage}
		}
		return newAPIError("%s: status code %d", msgAuthenticationError, resp.StatusCode)
	}
	if jsonErr != nil {
		return newAPIError("%s: invalid response", msgAuthenticationError)
	}
	if parsed.GlbID == "" {
		return newAPIError("%s: no token in response", msgAuthenticationError)
	}

	c.session.set(email, password, parsed.GlbID)
	c.logger.Debug("cartola: authenticated", "email", email)
	return nil
}

// IsAuthenticated reports whether the client holds a session token.
func (c *Client) IsAuthenticated() bool {
	return c.session.getToken() != ""
}

// reauthenticate replaces an expired token using the stored account.
func (c *Client) reauthenticate(ctx context.Context) error {
	email, password := c.session.credentials()
	c.metrics.RecordReauth()
	c.logger.Info("cartola: token expired, authenticating again", "email", email)
	return c.Authenticate(ctx, email, password)
}

// requireAuth guards the endpoints under /auth.
func (c *Client) requireAuth() error {
	if !c.IsAuthenticated() {
		return newAPIError(msgRequiresAuth)
	}
	return nil
}
