// Package quickunlock caches a local verifier of the user's PIN so the
// returning-user screen can fail a wrong PIN without a network round trip.
//
// This is a UX shortcut only, never a security boundary: a local match still
// goes through the normal online login, and the backend remains free to
// reject the PIN.
package quickunlock

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/afriwallet/afriwallet/internal/client/store"
)

// Store keys for the cached credential material. Derived data; wiped on
// logout.
const (
	KeySalt     = "quickUnlockSalt"
	KeyVerifier = "quickUnlockVerifier"
)

var (
	// ErrNotEnrolled means no verifier is cached on this device.
	ErrNotEnrolled = errors.New("quick unlock not enrolled")
	// ErrMismatch means the candidate PIN does not match the cached verifier.
	ErrMismatch = errors.New("PIN does not match")
)

const saltLen = 32

// Service derives and checks PIN verifiers against the on-device store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Enroll derives a fresh salt+verifier for the PIN and stores both
// atomically, replacing any previous enrollment.
func (s *Service) Enroll(ctx context.Context, pin []byte) error {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	return s.store.SetAll(ctx, map[string][]byte{
		KeySalt:     salt,
		KeyVerifier: makeVerifier(deriveKey(pin, salt)),
	})
}

// Verify checks a candidate PIN against the cached verifier in constant
// time. ErrNotEnrolled when nothing is cached, ErrMismatch on a wrong PIN.
func (s *Service) Verify(ctx context.Context, pin []byte) error {
	salt, err := s.store.Get(ctx, KeySalt)
	if err != nil {
		return err
	}
	verifier, err := s.store.Get(ctx, KeyVerifier)
	if err != nil {
		return err
	}
	if salt == nil || verifier == nil {
		return ErrNotEnrolled
	}

	candidate := makeVerifier(deriveKey(pin, salt))
	if subtle.ConstantTimeCompare(verifier, candidate) == 0 {
		return ErrMismatch
	}
	return nil
}

// Clear wipes the cached credential material. Safe to call when nothing is
// enrolled.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, KeySalt, KeyVerifier)
}

func deriveKey(pin, salt []byte) []byte {
	return argon2.IDKey(pin, salt, 1, 64*1024, 4, 32)
}

func makeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// Wipe zeroes a sensitive byte slice once it is no longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
