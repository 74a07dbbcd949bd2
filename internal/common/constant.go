// Package common contains shared constants and sentinel errors used across
// GoPay-Lite client components.
package common

// AuthorizationHeaderName is the HTTP header that carries the bearer
// credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is prepended to the credential in the Authorization header.
const BearerPrefix = "Bearer "
