// Package token reads claims from the rental API bearer token.
//
// The signature is not checked here; the rental API is the verifier. The
// service only needs the expiry to drop a session before the API rejects it.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry returns the exp claim of a JWT. ok is false when the token cannot be
// parsed or carries no exp.
func Expiry(raw string) (exp time.Time, ok bool) {
	if raw == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	at, err := claims.GetExpirationTime()
	if err != nil || at == nil {
		return time.Time{}, false
	}
	return at.Time, true
}

// Expired reports whether the token has an exp claim at or before now.
// Tokens without exp are treated as live.
func Expired(raw string, now time.Time) bool {
	exp, ok := Expiry(raw)
	if !ok {
		return false
	}
	return !now.Before(exp)
}
