// Package common defines shared constants and sentinel errors used across
// the GoPay-Lite client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrRequestTimeout = errors.New("request timed out (8s)")

	// Session errors: no credential is stored, so the operation cannot
	// be issued at all.
	ErrUnauthorized = errors.New("not authenticated")

	// Payment precondition errors (raised before any network call).
	ErrInsufficientFunds = errors.New("insufficient funds")
)
