package cli

import (
	"context"
	"fmt"
	"strings"
)

// Receive shows the full wallet address so the user can copy it and share
// it with a sender. This is the one place the address is printed
// unabbreviated.
func (a *App) Receive(ctx context.Context) error {
	sess := a.session.Current()
	if !sess.LoggedIn() {
		printlnFn("Sign in first")
		return nil
	}

	d, err := a.api.Dashboard(ctx, sess.PhoneNumber)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	printlnFn(fmt.Sprintf("Network: %s", strings.ToUpper(d.Blockchain)))
	printlnFn("Share this address to receive funds:")
	printlnFn(d.WalletAddress)
	return nil
}
