// Package session is the single authority for "is a user logged in, and
// with what credentials". It owns the in-memory session pair and its
// persisted copy in the on-device store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/afriwallet/afriwallet/internal/client/store"
	"github.com/afriwallet/afriwallet/internal/jwtx"
)

// Store keys. KeyAuthData is the only authoritative record; everything else
// is derived convenience data.
const (
	KeyAuthData        = "authData"
	KeyLastPhoneNumber = "lastPhoneNumber"
)

// ErrIncomplete is returned by Set when either credential is blank. A
// session is all-or-nothing; partial state is never stored or observable.
var ErrIncomplete = errors.New("session requires both phone number and token")

// Session is the phone-number + bearer-token pair identifying a logged-in
// user on this device. The zero value means logged out.
type Session struct {
	PhoneNumber string `json:"phoneNumber"`
	Token       string `json:"token"`
}

// LoggedIn reports whether the session holds credentials.
func (s Session) LoggedIn() bool {
	return s.PhoneNumber != "" && s.Token != ""
}

// Manager guards the current session and keeps it in sync with the store.
// Construct one per process and pass it explicitly to whatever needs it.
type Manager struct {
	store store.Store
	now   func() time.Time

	mu   sync.RWMutex
	sess Session
}

func NewManager(st store.Store) *Manager {
	return &Manager{store: st, now: time.Now}
}

// Set replaces the current session and persists it: the pair lands under
// KeyAuthData and the phone number additionally under KeyLastPhoneNumber,
// atomically. The token is not inspected here; expiry is only checked when
// the session is restored.
func (m *Manager) Set(ctx context.Context, phoneNumber, token string) error {
	if phoneNumber == "" || token == "" {
		return ErrIncomplete
	}

	sess := Session{PhoneNumber: phoneNumber, Token: token}
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := m.store.SetAll(ctx, map[string][]byte{
		KeyAuthData:        payload,
		KeyLastPhoneNumber: []byte(phoneNumber),
	}); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	m.mu.Lock()
	m.sess = sess
	m.mu.Unlock()
	return nil
}

// Restore loads the persisted session, if any, into memory. It must complete
// before any routing decision that depends on authentication state.
//
// A stored token that cannot be decoded, carries no expiry, or has expired
// counts as invalid: the record is deleted and the restored state is logged
// out.
func (m *Manager) Restore(ctx context.Context) (Session, error) {
	raw, err := m.store.Get(ctx, KeyAuthData)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}
	if raw == nil {
		return Session{}, nil
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || !sess.LoggedIn() {
		return Session{}, m.discard(ctx)
	}

	exp, err := jwtx.Expiry(sess.Token)
	if err != nil || !exp.After(m.now()) {
		return Session{}, m.discard(ctx)
	}

	m.mu.Lock()
	m.sess = sess
	m.mu.Unlock()
	return sess, nil
}

// Logout clears the in-memory session and deletes the persisted record.
// Calling it while already logged out is safe. KeyLastPhoneNumber survives:
// it feeds the returning-user sign-in screen.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.sess = Session{}
	m.mu.Unlock()

	if err := m.store.Delete(ctx, KeyAuthData); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Current returns the in-memory session. Always available, never blocks on
// the store.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess
}

// Token returns the current bearer token, or "" when logged out. It is the
// token source handed to the API client.
func (m *Manager) Token() string {
	return m.Current().Token
}

// LastPhoneNumber returns the most recently used phone number, or "" if none
// was ever stored.
func (m *Manager) LastPhoneNumber(ctx context.Context) (string, error) {
	raw, err := m.store.Get(ctx, KeyLastPhoneNumber)
	if err != nil {
		return "", fmt.Errorf("read last phone number: %w", err)
	}
	return string(raw), nil
}

func (m *Manager) discard(ctx context.Context) error {
	m.mu.Lock()
	m.sess = Session{}
	m.mu.Unlock()
	return m.store.Delete(ctx, KeyAuthData)
}
