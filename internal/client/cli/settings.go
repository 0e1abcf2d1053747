package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/afriwallet/afriwallet/internal/client/store"
	"github.com/afriwallet/afriwallet/internal/phone"
)

// keyDeviceID identifies this installation; generated once, never rotated.
const keyDeviceID = "deviceId"

// ensureDeviceID returns the stored device id, minting one on first run.
func ensureDeviceID(ctx context.Context, st store.Store) (string, error) {
	raw, err := st.Get(ctx, keyDeviceID)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}
	if raw != nil {
		return string(raw), nil
	}

	id := uuid.NewString()
	if err := st.Set(ctx, keyDeviceID, []byte(id)); err != nil {
		return "", fmt.Errorf("persist device id: %w", err)
	}
	return id, nil
}

// Settings shows the current account, server and device identifiers.
func (a *App) Settings(ctx context.Context) error {
	sess := a.session.Current()
	if sess.LoggedIn() {
		printlnFn("Account:", phone.Localize(sess.PhoneNumber))
	} else {
		printlnFn("Account: not signed in")
	}
	printlnFn("Server: ", a.config.ServerBaseURL)
	printlnFn("Device: ", a.deviceID)
	if sess.LoggedIn() {
		printlnFn("Type 'logout' to sign out")
	}
	return nil
}
