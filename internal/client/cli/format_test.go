package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-9876.5, "-9,876.50"},
		{999, "999.00"},
		{1000, "1,000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in))
	}
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "25,000.00", formatBalance("25000"))
	assert.Equal(t, "1,500.75", formatBalance(" 1500.75 "))
	// unparseable input passes through untouched
	assert.Equal(t, "N/A", formatBalance("N/A"))
}

func TestShortenAddress(t *testing.T) {
	assert.Equal(t, "0x1a2b...9f0e", shortenAddress("0x1a2b3c4d5e6f7a8b9f0e"))
	assert.Equal(t, "0xshort", shortenAddress("0xshort"))
	assert.Equal(t, "", shortenAddress(""))
}

func TestMaskCardNumber(t *testing.T) {
	// first and last four digits stay visible
	assert.Equal(t, "4111 **** **** 1111", maskCardNumber("4111111111111111"))
	assert.Equal(t, "3782 **** **** 0005", maskCardNumber("3782 8224 6310 0005"))
	assert.Equal(t, "1234", maskCardNumber("1234"))
}
