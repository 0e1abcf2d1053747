// Package phone composes and formats dial strings for wallet accounts.
//
// Numbers are kept in a loose E.164 form: a leading '+', the country code,
// then the subscriber number with any single leading trunk zero removed.
package phone

import (
	"regexp"
	"strings"
)

// MinLocalLen is the minimum number of digits a local subscriber number must
// have before it may be composed into a dial string. Callers check this
// before calling Compose.
const MinLocalLen = 7

var registrationLocalRe = regexp.MustCompile(`^\d{10,15}$`)

// Compose joins a user-selected country code and a raw local number into a
// single dial string. A single leading '0' (the trunk prefix) is stripped
// from the local part:
//
//	Compose("+234", "08012345678") == "+2348012345678"
//	Compose("+1", "5551234567")    == "+15551234567"
func Compose(countryCode, local string) string {
	local = strings.TrimSpace(local)
	if strings.HasPrefix(local, "0") {
		local = local[1:]
	}
	return countryCode + local
}

// ValidLocal reports whether a local number is long enough to compose.
func ValidLocal(local string) bool {
	return len(strings.TrimSpace(local)) >= MinLocalLen
}

// ValidRegistrationLocal applies the stricter rule used on the sign-up
// screen: 10 to 15 digits, nothing else.
func ValidRegistrationLocal(local string) bool {
	return registrationLocalRe.MatchString(strings.TrimSpace(local))
}

var (
	ngGroups = regexp.MustCompile(`^(\+234)(\d{3})(\d{3})(\d{4})$`)
	usGroups = regexp.MustCompile(`^(\+1)(\d{3})(\d{3})(\d{4})$`)
)

// Format renders a composed number for display, grouping the digits of
// Nigerian and US numbers. Anything else is returned unchanged.
func Format(number string) string {
	if m := ngGroups.FindStringSubmatch(number); m != nil {
		return m[1] + " " + m[2] + " " + m[3] + " " + m[4]
	}
	if m := usGroups.FindStringSubmatch(number); m != nil {
		return m[1] + " " + m[2] + " " + m[3] + " " + m[4]
	}
	return number
}

// Localize rewrites a +234 number back to its local 0-prefixed form for the
// dashboard greeting. Other prefixes are left as-is.
func Localize(number string) string {
	if strings.HasPrefix(number, "+234") {
		return "0" + number[len("+234"):]
	}
	return number
}
