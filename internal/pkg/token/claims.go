package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt peeks at the exp claim of a JWT without verifying its signature.
// The portal never trusts claims for authorization decisions; the upstream API
// is the authority. This is only used to bound cookie lifetimes and to skip
// sending tokens that are already dead.
func ExpiresAt(raw string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the token carries an exp claim in the past. Tokens
// without a parseable exp claim are not considered expired here.
func Expired(raw string) bool {
	exp, ok := ExpiresAt(raw)
	if !ok {
		return false
	}
	return time.Now().After(exp)
}
