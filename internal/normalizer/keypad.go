// Package normalizer turns raw phone number text into validated NANP numbers.
package normalizer

import (
	"strings"
	"unicode"
)

// keypad holds the digit printed on a telephone keypad for 'A'..'Z'.
const keypad = "22233344455566677778889999"

// KeypadDigit returns the keypad digit for a letter, ignoring case.
func KeypadDigit(r rune) (byte, bool) {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return 0, false
	}

	return keypad[r-'A'], true
}

// Normalize converts letters to keypad digits, drops everything that is not
// an ASCII digit and strips a leading country code 1 from numbers longer than
// ten digits. The result is not validated.
func Normalize(raw string) string {
	var b strings.Builder

	b.Grow(len(raw))

	for _, r := range raw {
		if d, ok := KeypadDigit(r); ok {
			b.WriteByte(d)
			continue
		}

		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) > 10 && digits[0] == '1' {
		digits = digits[1:]
	}

	return digits
}
