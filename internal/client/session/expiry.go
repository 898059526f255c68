package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expiryFor picks the session expiry: an explicit lifetime in seconds wins,
// then the exp claim of a JWT access token, then the default lifetime.
// The token signature is not checked; the server does that.
func expiryFor(token string, expiresIn int64, now time.Time, fallback time.Duration) time.Time {
	if expiresIn > 0 {
		return now.Add(time.Duration(expiresIn) * time.Second)
	}
	if exp, ok := jwtExpiry(token); ok {
		return exp
	}
	return now.Add(fallback)
}

func jwtExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
