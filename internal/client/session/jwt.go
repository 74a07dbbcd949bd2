package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reports when a bearer credential expires. A server-supplied
// expiresIn (seconds) wins; otherwise the JWT exp claim is consulted. The
// token is parsed without signature verification; the client holds no
// signing key and only needs the timestamp for display and refresh
// decisions. Returns the zero time when neither source yields an expiry.
func TokenExpiry(token string, expiresIn int64, now time.Time) time.Time {
	if expiresIn > 0 {
		return now.Add(time.Duration(expiresIn) * time.Second)
	}
	if token == "" {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
