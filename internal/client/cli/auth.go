package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/afriwallet/afriwallet/internal/phone"
	"github.com/afriwallet/afriwallet/internal/pin"
	"github.com/afriwallet/afriwallet/internal/quickunlock"
)

// getSimpleText, getDigits and getPIN are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getDigits     = GetDigits
	getPIN        = GetPIN
)

// SignIn prompts for a phone number and PIN and authenticates against the
// backend. On success the session is persisted and quick unlock is enrolled
// with the PIN just used.
func (a *App) SignIn(ctx context.Context) error {
	cc, err := getSimpleText(a.reader, fmt.Sprintf("Country code [%s]", a.config.DefaultCountryCode), os.Stdout)
	if err != nil {
		return err
	}
	if cc == "" {
		cc = a.config.DefaultCountryCode
	}

	local, err := getDigits(a.reader, "Phone number", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if !phone.ValidLocal(local) {
		printlnFn(fmt.Sprintf("Phone number must have at least %d digits", phone.MinLocalLen))
		return nil
	}

	p, err := getPIN("Enter PIN", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	defer quickunlock.Wipe(p)

	if len(p) != pin.LoginLen {
		printlnFn(fmt.Sprintf("PIN must be %d digits", pin.LoginLen))
		return nil
	}

	number := phone.Compose(cc, local)
	return a.login(ctx, number, p)
}

// Unlock signs the returning user in: the last used phone number is read
// from the device and only the PIN is asked for. A cached verifier lets us
// reject a wrong PIN before spending a network round trip; the backend stays
// authoritative either way.
func (a *App) Unlock(ctx context.Context) error {
	number, err := a.session.LastPhoneNumber(ctx)
	if err != nil {
		return err
	}
	if number == "" {
		printlnFn("No previous sign-in on this device, use 'signin'")
		return nil
	}

	printlnFn("Signing in as", phone.Localize(number))

	p, err := getPIN("Enter PIN", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	defer quickunlock.Wipe(p)

	if err := a.unlock.Verify(ctx, p); err != nil {
		if errors.Is(err, quickunlock.ErrMismatch) {
			printlnFn("Incorrect PIN")
			return nil
		}
		if !errors.Is(err, quickunlock.ErrNotEnrolled) {
			return err
		}
	}

	return a.login(ctx, number, p)
}

func (a *App) login(ctx context.Context, number string, p []byte) error {
	res, err := a.api.Login(ctx, number, string(p))
	if err != nil {
		a.logger.Warn("login failed", "error", err)
		printlnFn(err.Error())
		return nil
	}

	if err := a.session.Set(ctx, number, res.Token); err != nil {
		return err
	}
	if err := a.unlock.Enroll(ctx, p); err != nil {
		a.logger.Warn("enrolling quick unlock", "error", err)
	}

	printlnFn("Signed in as", phone.Localize(number))
	return nil
}

// Logout drops the persisted session and the quick unlock verifier. The
// last used phone number stays so the next launch can offer 'unlock'.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	if err := a.unlock.Clear(ctx); err != nil {
		return err
	}
	printlnFn("Signed out")
	return nil
}
