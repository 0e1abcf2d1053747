package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// formatAmount renders a monetary value with thousands separators and two
// decimal places: 1234567.5 -> "1,234,567.50".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}

// formatBalance formats a balance the backend reports as a decimal string.
// Unparseable input is returned unchanged rather than hidden.
func formatBalance(s string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return s
	}
	return formatAmount(v)
}

// shortenAddress abbreviates a wallet address for display, keeping the
// leading and trailing runs: 0x12345678abcd -> "0x1234...abcd". Short
// addresses come back unchanged.
func shortenAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// maskCardNumber hides the middle of a card number, keeping the first and
// last four digits: "1234 **** **** 5678".
func maskCardNumber(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if len(digits) <= 8 {
		return digits
	}
	return fmt.Sprintf("%s **** **** %s", digits[:4], digits[len(digits)-4:])
}
