// Package pin enforces the wallet PIN policy used during registration.
package pin

import (
	"errors"
	"strings"
)

const (
	// MinLen and MaxLen bound the accepted PIN length in digits.
	MinLen = 4
	MaxLen = 8

	// LoginLen is the exact length the sign-in screens collect.
	LoginLen = 4
)

// Rejection reasons, in the order the rules are checked. The messages are
// shown to the user verbatim.
var (
	ErrLength     = errors.New("PIN must be between 4 and 8 digits")
	ErrRepeated   = errors.New("avoid repeated digits like 1111")
	ErrSequential = errors.New("avoid sequential digits like 1234")
)

// sequentialRuns are the 4-digit ascending/descending prefixes a PIN must
// not start with.
var sequentialRuns = []string{
	"0123", "1234", "2345", "3456", "4567", "5678", "6789", "7890",
	"9876", "8765", "7654", "6543", "5432", "4321", "3210",
}

// Validate checks a candidate PIN against the policy and returns the first
// rule it violates: length, then repeated digits, then sequential digits.
// A nil return means the PIN is acceptable.
func Validate(candidate string) error {
	if len(candidate) < MinLen || len(candidate) > MaxLen {
		return ErrLength
	}
	if allSame(candidate) {
		return ErrRepeated
	}
	for _, run := range sequentialRuns {
		if strings.HasPrefix(candidate, run) {
			return ErrSequential
		}
	}
	return nil
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
