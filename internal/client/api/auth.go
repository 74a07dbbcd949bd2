package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/RaginiSharma01/GoPay-Lite/internal/client/models"
)

// AuthResponse is returned by /auth/register and /auth/login.
// RefreshToken is only present on backends that rotate credentials.
type AuthResponse struct {
	Message      string   `json:"message"`
	Token        string   `json:"token,omitempty"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	ExpiresIn    int64    `json:"expiresIn,omitempty"`
	User         *UserRef `json:"user,omitempty"`
}

type UserRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by /auth/refresh.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// Register creates a new user account.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	raw, err := c.request(ctx, "/auth/register", requestOptions{
		method: http.MethodPost,
		body:   registerRequest{Name: name, Email: email, Password: password},
	})
	if err != nil {
		return nil, err
	}
	return unmarshal[AuthResponse](raw)
}

// Login authenticates the user and returns the bearer credential.
// Persisting it is the caller's job.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	raw, err := c.request(ctx, "/auth/login", requestOptions{
		method: http.MethodPost,
		body:   loginRequest{Email: email, Password: password},
	})
	if err != nil {
		return nil, err
	}
	return unmarshal[AuthResponse](raw)
}

// Me fetches the authenticated user's profile, including the dashboard
// fields (balance, transactions, status) when the server supplies them.
func (c *HTTPClient) Me(ctx context.Context) (*models.Profile, error) {
	raw, err := c.request(ctx, "/auth/me", requestOptions{auth: true})
	if err != nil {
		return nil, err
	}
	return unmarshal[models.Profile](raw)
}

// Logout invalidates the session on the server. The stored credential is
// cleared by the auth service regardless of the outcome.
func (c *HTTPClient) Logout(ctx context.Context) (*MessageResponse, error) {
	raw, err := c.request(ctx, "/auth/logout", requestOptions{
		method: http.MethodPost,
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return unmarshal[MessageResponse](raw)
}

// Refresh exchanges a refresh token for a fresh bearer credential.
func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	raw, err := c.request(ctx, "/auth/refresh", requestOptions{
		method: http.MethodPost,
		body:   refreshRequest{RefreshToken: refreshToken},
	})
	if err != nil {
		return nil, err
	}
	return unmarshal[TokenResponse](raw)
}

// ForgotPassword requests a password-reset mail for the given address.
func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	raw, err := c.request(ctx, "/auth/forgot-password", requestOptions{
		method: http.MethodPost,
		body:   forgotPasswordRequest{Email: email},
	})
	if err != nil {
		return nil, err
	}
	return unmarshal[MessageResponse](raw)
}

// VerifyEmail confirms an email address with a verification token.
func (c *HTTPClient) VerifyEmail(ctx context.Context, token string) (*MessageResponse, error) {
	raw, err := c.request(ctx, "/auth/verify-email?token="+url.QueryEscape(token), requestOptions{})
	if err != nil {
		return nil, err
	}
	return unmarshal[MessageResponse](raw)
}
