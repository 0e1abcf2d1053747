// Package jwtx extracts claims from bearer tokens without verifying them.
//
// The client never holds the signing secret, so decoding here is strictly a
// UX optimization (deciding whether a cached session is worth presenting).
// The backend remains the authority and rejects expired or forged tokens on
// every authorized call.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed means the token could not be decoded at all.
	ErrMalformed = errors.New("malformed token")
	// ErrNoExpiry means the token decoded but carries no exp claim.
	ErrNoExpiry = errors.New("token has no expiry claim")
)

var parser = jwt.NewParser()

// Expiry returns the exp claim of a compact JWT. The signature is NOT
// checked.
func Expiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, ErrMalformed
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}
