package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/afriwallet/afriwallet/internal/phone"
)

// Dashboard fetches and prints the wallet overview for the signed-in user.
func (a *App) Dashboard(ctx context.Context) error {
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

	printlnFn(fmt.Sprintf("Account:    %s", phone.Localize(d.PhoneNumber)))
	printlnFn(fmt.Sprintf("Balance:    %s %s", formatBalance(d.Balance), d.Currency))
	printlnFn(fmt.Sprintf("Wallet:     %s (%s)", shortenAddress(d.WalletAddress), strings.ToUpper(d.Blockchain)))
	return nil
}
