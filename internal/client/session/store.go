// Package session owns the client-side credential: a bearer token (plus
// its refresh token and expiry) kept in a durable key-value store. The
// store is injected into the transport client and the services so tests
// can swap in the in-memory implementation.
package session

import (
	"context"
	"time"
)

// Fixed keys under which the credential material is persisted.
const (
	tokenKey        = "token"
	refreshTokenKey = "refresh_token"
	expiresAtKey    = "expires_at"
)

// Session is the stored credential material. A zero Token means
// "unauthenticated".
type Session struct {
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
}

// Store persists the session across process restarts.
//
// Clear must be idempotent: any layer that detects an unusable
// credential may clear it, and concurrent clears are last-write-wins.
type Store interface {
	// Token returns the stored bearer credential, or "" when none is
	// stored.
	Token(ctx context.Context) (string, error)

	// Current returns the full stored session. A missing session is not
	// an error; it is reported as a zero-valued Session.
	Current(ctx context.Context) (Session, error)

	// Save replaces the stored session atomically.
	Save(ctx context.Context, s Session) error

	// Clear removes the stored session.
	Clear(ctx context.Context) error
}
