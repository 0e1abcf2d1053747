package cli

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"os"

	"github.com/afriwallet/afriwallet/internal/phone"
	"github.com/afriwallet/afriwallet/internal/pin"
	"github.com/afriwallet/afriwallet/internal/quickunlock"
)

const otpLen = 6

// SignUp walks the registration flow: phone number, one-time code, PIN
// choice, account creation, then a regular login with the new credentials.
func (a *App) SignUp(ctx context.Context) error {
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
	if !phone.ValidRegistrationLocal(local) {
		printlnFn("Phone number must be 10 to 15 digits")
		return nil
	}

	number := phone.Compose(cc, local)

	if err := a.api.SendOTP(ctx, number); err != nil {
		printlnFn(err.Error())
		return nil
	}
	printlnFn("A verification code was sent to", phone.Format(number))

	code, err := getDigits(a.reader, "Verification code", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(code) != otpLen {
		printlnFn(fmt.Sprintf("Code must be %d digits", otpLen))
		return nil
	}

	sid, err := a.api.VerifyOTP(ctx, number, code)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	p, err := a.choosePIN()
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	defer quickunlock.Wipe(p)

	if err := a.api.Register(ctx, number, string(p), sid); err != nil {
		printlnFn(err.Error())
		return nil
	}
	printlnFn("Account created")

	return a.login(ctx, number, p)
}

// choosePIN asks for a new PIN twice and validates it against the wallet
// PIN rules. A nil, nil return means the user entered something invalid and
// the flow should stop without a hard error.
func (a *App) choosePIN() ([]byte, error) {
	p, err := getPIN("Choose a PIN", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return nil, err
	}

	if err := pin.Validate(string(p)); err != nil {
		quickunlock.Wipe(p)
		switch {
		case errors.Is(err, pin.ErrLength):
			printlnFn(fmt.Sprintf("PIN must be %d to %d digits", pin.MinLen, pin.MaxLen))
		case errors.Is(err, pin.ErrRepeated):
			printlnFn("PIN cannot be a single repeated digit")
		case errors.Is(err, pin.ErrSequential):
			printlnFn("PIN cannot be a sequential run of digits")
		default:
			printlnFn(err.Error())
		}
		return nil, nil
	}

	confirm, err := getPIN("Confirm PIN", os.Stdout)
	if err != nil {
		quickunlock.Wipe(p)
		printlnFn(err.Error())
		return nil, err
	}
	defer quickunlock.Wipe(confirm)

	if subtle.ConstantTimeCompare(p, confirm) != 1 {
		quickunlock.Wipe(p)
		printlnFn("PINs do not match")
		return nil, nil
	}
	return p, nil
}
