package auth

import (
	"time"
)

// NewTestJWTService creates a JWT service with an injectable time function
// for testing token expiry and validation behavior deterministically.
// It bypasses config validation, so tests can use any secret.
func NewTestJWTService(secret string, tokenLifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}

	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0, // No leeway so expiry tests are exact
	}
}
