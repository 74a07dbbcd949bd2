// Package services contains application services for the GoPay-Lite
// dashboard client. This file defines the authentication service:
// register/login/logout, refresh, password reset, email verification,
// and the protected-page session guard.
package services

import (
	"context"
	"time"

	"github.com/RaginiSharma01/GoPay-Lite/internal/client/api"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/models"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/session"
	"github.com/RaginiSharma01/GoPay-Lite/internal/common"
	"github.com/RaginiSharma01/GoPay-Lite/internal/logging"
)

// now is a test seam.
var now = time.Now

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account; persist the session when the server
//     issues a credential right away.
//   - Login: authenticate and persist the session.
//   - Logout: invalidate the session server-side; the local credential
//     is destroyed regardless of the server outcome.
//   - Bootstrap: the protected-page guard. Verifies a credential exists
//     and is still accepted, fails closed on any error.
//   - RefreshSession: exchange the stored refresh token for a fresh
//     credential.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, name, email string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	Bootstrap(ctx context.Context) (*models.Account, error)
	RefreshSession(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyEmail(ctx context.Context, token string) (string, error)
}

// authService is the concrete AuthService backed by the API client and
// the durable session store.
type authService struct {
	client   api.Client
	sessions session.Store
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sessions session.Store, log logging.Logger) AuthService {
	return &authService{client: client, sessions: sessions, log: log}
}

func (a *authService) saveSession(ctx context.Context, token, refreshToken string, expiresIn int64) error {
	return a.sessions.Save(ctx, session.Session{
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    session.TokenExpiry(token, expiresIn, now()),
	})
}

// Register creates a new account. Some backends log the user in
// immediately and return a credential with the registration response;
// when that happens the session is persisted so no separate login is
// needed.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) (string, error) {
	resp, err := a.client.Register(ctx, name, email, string(password))
	if err != nil {
		return "", err
	}
	if resp.Token != "" {
		if err := a.saveSession(ctx, resp.Token, resp.RefreshToken, resp.ExpiresIn); err != nil {
			return "", err
		}
	}
	return resp.Message, nil
}

// Login authenticates against the server and persists the returned
// credential in the durable store.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	resp, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	return a.saveSession(ctx, resp.Token, resp.RefreshToken, resp.ExpiresIn)
}

// Logout invalidates the session on the server and destroys the stored
// credential. The local clear happens even when the server call fails:
// a credential the user asked to drop must not outlive the request.
func (a *authService) Logout(ctx context.Context) error {
	_, err := a.client.Logout(ctx)

	if clearErr := a.sessions.Clear(ctx); clearErr != nil {
		a.log.Error(ctx, "failed to clear stored session", "error", clearErr)
		return clearErr
	}
	return err
}

// Bootstrap verifies the stored credential on entry to a protected view.
//
// With no stored credential it fails with common.ErrUnauthorized without
// calling the server. Otherwise it fetches the profile; on any failure,
// including timeouts and transport errors, the credential is cleared
// and the error propagates unchanged (fail closed), sending the caller
// back to the login screen. On success the normalized account is
// returned.
func (a *authService) Bootstrap(ctx context.Context) (*models.Account, error) {
	token, err := a.sessions.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, common.ErrUnauthorized
	}

	profile, err := a.client.Me(ctx)
	if err != nil {
		if clearErr := a.sessions.Clear(ctx); clearErr != nil {
			a.log.Error(ctx, "failed to clear stored session", "error", clearErr)
		}
		return nil, err
	}

	acc := models.FromProfile(profile)
	return &acc, nil
}

// RefreshSession exchanges the stored refresh token for a fresh bearer
// credential and persists it. Without a stored refresh token it fails
// with common.ErrUnauthorized.
func (a *authService) RefreshSession(ctx context.Context) error {
	sess, err := a.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if sess.RefreshToken == "" {
		return common.ErrUnauthorized
	}

	resp, err := a.client.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		return err
	}
	return a.saveSession(ctx, resp.Token, sess.RefreshToken, resp.ExpiresIn)
}

// ForgotPassword asks the server to start a password reset.
func (a *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	resp, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// VerifyEmail confirms an email address with the token from the
// verification mail.
func (a *authService) VerifyEmail(ctx context.Context, token string) (string, error) {
	resp, err := a.client.VerifyEmail(ctx, token)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}
