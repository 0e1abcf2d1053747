package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	s := signedToken(t, jwt.MapClaims{"sub": "u1", "exp": exp.Unix()})

	got, err := Expiry(s)
	require.NoError(t, err)
	require.True(t, got.Equal(exp))
}

func TestExpiry_NoExpClaim(t *testing.T) {
	s := signedToken(t, jwt.MapClaims{"sub": "u1"})
	_, err := Expiry(s)
	require.ErrorIs(t, err, ErrNoExpiry)
}

func TestExpiry_Malformed(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b", "not.a.jwt"} {
		_, err := Expiry(token)
		require.ErrorIs(t, err, ErrMalformed, "token %q", token)
	}
}

// Expiry must not care about the signature: a tampered token with a valid
// payload still yields its exp claim.
func TestExpiry_IgnoresSignature(t *testing.T) {
	exp := time.Now().Add(time.Minute).Truncate(time.Second)
	s := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})
	tampered := s[:len(s)-2] + "xx"

	got, err := Expiry(tampered)
	require.NoError(t, err)
	require.True(t, got.Equal(exp))
}
