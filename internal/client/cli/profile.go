package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/afriwallet/afriwallet/internal/phone"
)

// Profile shows the user's profile and offers editing it. Each field prompt
// defaults to the current value; entering nothing keeps it.
func (a *App) Profile(ctx context.Context) error {
	sess := a.session.Current()
	if !sess.LoggedIn() {
		printlnFn("Sign in first")
		return nil
	}

	p, err := a.api.UserInfo(ctx, sess.PhoneNumber)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	printlnFn("Phone:  ", phone.Localize(sess.PhoneNumber))
	printlnFn("Name:   ", p.FirstName, p.LastName)
	printlnFn("Email:  ", p.Email)
	printlnFn("Country:", p.Country)

	answer, err := getSimpleText(a.reader, "Edit profile? (y/N)", os.Stdout)
	if err != nil || answer != "y" {
		return err
	}

	fields := []struct {
		label string
		dst   *string
	}{
		{"First name", &p.FirstName},
		{"Last name", &p.LastName},
		{"Email", &p.Email},
		{"Country", &p.Country},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, *f.dst), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	if err := a.api.UpdateUserInfo(ctx, sess.PhoneNumber, p); err != nil {
		printlnFn(err.Error())
		return nil
	}
	printlnFn("Profile updated")
	return nil
}
