package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// AuthUser is the identity the external provider vouches for. The backend
// never sees credentials; it only ever holds this pair.
type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// AuthClient talks to the hosted identity provider's REST API (GoTrue).
// Magic-link issuance, session lookup and sign-out are all delegated there.
type AuthClient struct {
	baseURL string
	anonKey string
	client  *http.Client
}

func NewAuthClient(baseURL, anonKey string) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		anonKey: anonKey,
		client:  &http.Client{},
	}
}

// SendMagicLink asks the provider to email a one-time sign-in link.
func (a *AuthClient) SendMagicLink(ctx context.Context, email string) error {
	body, err := json.Marshal(map[string]interface{}{
		"email":       email,
		"create_user": true,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/auth/v1/otp", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", a.anonKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("magic link request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("magic link request returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}

// GetUser resolves a bearer token to the user it belongs to. Returns false
// when the provider does not recognize the token.
func (a *AuthClient) GetUser(ctx context.Context, token string) (AuthUser, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return AuthUser{}, false, err
	}
	req.Header.Set("apikey", a.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return AuthUser{}, false, fmt.Errorf("user lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return AuthUser{}, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return AuthUser{}, false, fmt.Errorf("user lookup returned %d: %s", resp.StatusCode, string(detail))
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return AuthUser{}, false, fmt.Errorf("user lookup decode failed: %w", err)
	}

	userID, err := uuid.Parse(payload.ID)
	if err != nil {
		return AuthUser{}, false, fmt.Errorf("provider returned invalid user id: %w", err)
	}

	return AuthUser{ID: userID, Email: payload.Email}, true, nil
}

// SignOut invalidates the token at the provider. An already-dead token is not
// an error.
func (a *AuthClient) SignOut(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", a.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("sign out failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusNotFound {
		return nil
	}
	detail, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("sign out returned %d: %s", resp.StatusCode, string(detail))
}
