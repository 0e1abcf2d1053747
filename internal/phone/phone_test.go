package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name        string
		countryCode string
		local       string
		want        string
	}{
		{"strips single leading zero", "+234", "08012345678", "+2348012345678"},
		{"no leading zero unchanged", "+1", "5551234567", "+15551234567"},
		{"only first zero stripped", "+44", "007700900123", "+4407700900123"},
		{"whitespace trimmed", "+234", " 08012345678 ", "+2348012345678"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.countryCode, tt.local))
		})
	}
}

func TestValidLocal(t *testing.T) {
	assert.False(t, ValidLocal("123456"))
	assert.True(t, ValidLocal("1234567"))
	assert.True(t, ValidLocal("08012345678"))
}

func TestValidRegistrationLocal(t *testing.T) {
	assert.True(t, ValidRegistrationLocal("8012345678"))
	assert.True(t, ValidRegistrationLocal("080123456789012"))
	assert.False(t, ValidRegistrationLocal("123456789"))        // too short
	assert.False(t, ValidRegistrationLocal("0801234567890123")) // too long
	assert.False(t, ValidRegistrationLocal("80123a5678"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "+234 801 234 5678", Format("+2348012345678"))
	assert.Equal(t, "+1 555 123 4567", Format("+15551234567"))
	assert.Equal(t, "+447700900123", Format("+447700900123"))
}

func TestLocalize(t *testing.T) {
	assert.Equal(t, "08012345678", Localize("+2348012345678"))
	assert.Equal(t, "+15551234567", Localize("+15551234567"))
}
