package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials, authenticates, and opens the dashboard
// on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login successful")

	return a.openDashboard(ctx)
}

// Register prompts for the account details and creates an account. When
// the server issues a credential right away the dashboard opens
// immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer WipeByteArray(password)

	msg, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)

	if token, err := a.sessions.Token(ctx); err == nil && token != "" {
		return a.openDashboard(ctx)
	}
	return nil
}

// Logout invalidates the session and drops the dashboard state.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	a.account = nil
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Refresh exchanges the stored refresh token for a fresh credential.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.auth.RefreshSession(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Session refreshed")
	return nil
}

// ForgotPassword starts a password reset for an email address.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	msg, err := a.auth.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// VerifyEmail confirms an email address with a verification token.
func (a *App) VerifyEmail(ctx context.Context, token string) error {
	msg, err := a.auth.VerifyEmail(ctx, token)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
