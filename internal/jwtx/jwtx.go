// Package jwtx inspects JWT-shaped credential tokens on the client. The
// client never holds the signing key, so tokens are decoded, not verified:
// the backend remains the only authority on validity.
package jwtx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrNoExpiry       = errors.New("token has no exp claim")
)

var parser = jwt.NewParser()

// Claims decodes the payload segment of token. Claim types are not checked
// here; each claim is validated only when it is read.
func Claims(token string) (jwt.MapClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	claims := jwt.MapClaims{}
	if err := dec.Decode(&claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}

// ExpiresAt returns the exp claim of token.
func ExpiresAt(token string) (time.Time, error) {
	claims, err := Claims(token)
	if err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// IsExpiring reports whether token expires within buffer of now. Tokens
// that cannot be decoded, or carry no exp, count as expiring.
func IsExpiring(token string, now time.Time, buffer time.Duration) bool {
	exp, err := ExpiresAt(token)
	if err != nil {
		return true
	}
	return exp.Sub(now) <= buffer
}
