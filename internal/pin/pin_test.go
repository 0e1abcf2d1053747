package pin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantErr   error
	}{
		{"too short", "123", ErrLength},
		{"too long", "123456789", ErrLength},
		{"empty", "", ErrLength},
		{"repeated digits", "1111", ErrRepeated},
		{"repeated digits long", "77777777", ErrRepeated},
		{"ascending run", "1234", ErrSequential},
		{"ascending run with suffix", "12349", ErrSequential},
		{"descending run", "4321", ErrSequential},
		{"descending run with suffix", "98761", ErrSequential},
		{"wraps 7890", "7890", ErrSequential},
		{"run not at start is fine", "91234", nil},
		{"good pin", "2580", nil},
		{"good long pin", "20481357", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.candidate)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// Length is checked before the weak-digit rules, so a short repeated PIN
// reports the length problem.
func TestValidate_RuleOrder(t *testing.T) {
	require.ErrorIs(t, Validate("111"), ErrLength)
	require.ErrorIs(t, Validate("1111"), ErrRepeated)
}
