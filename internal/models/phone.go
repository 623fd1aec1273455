package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// RegionUS is the region used when handing numbers to libphonenumber.
const RegionUS = "US"

// Phone number construction errors.
var (
	ErrBusinessRule        = errors.New("numbering plan rule violated")
	ErrMalformedParts      = errors.New("phone number parts must be 3, 3 and 4 digits")
	ErrInvalidAreaCode     = fmt.Errorf("%w: area code cannot start with 0 or 1", ErrBusinessRule)
	ErrInvalidExchangeCode = fmt.Errorf("%w: exchange code cannot start with 0 or 1", ErrBusinessRule)
	ErrReservedAreaCode    = fmt.Errorf("%w: area code cannot be an N11 code", ErrBusinessRule)
	ErrReservedLineNumber  = fmt.Errorf("%w: line number cannot end with 11", ErrBusinessRule)
)

// PhoneNumber is a validated ten digit NANP number.
type PhoneNumber struct {
	AreaCode     string `json:"areaCode"`
	ExchangeCode string `json:"exchangeCode"`
	LineNumber   string `json:"lineNumber"`
}

// NewPhoneNumber builds a PhoneNumber from its parts, enforcing the NANP rules.
func NewPhoneNumber(areaCode, exchangeCode, lineNumber string) (PhoneNumber, error) {
	if !isDigits(areaCode, 3) || !isDigits(exchangeCode, 3) || !isDigits(lineNumber, 4) {
		return PhoneNumber{}, fmt.Errorf("%w: %q %q %q", ErrMalformedParts, areaCode, exchangeCode, lineNumber)
	}

	switch {
	case areaCode[0] == '0' || areaCode[0] == '1':
		return PhoneNumber{}, fmt.Errorf("%w (%s)", ErrInvalidAreaCode, areaCode)
	case exchangeCode[0] == '0' || exchangeCode[0] == '1':
		return PhoneNumber{}, fmt.Errorf("%w (%s)", ErrInvalidExchangeCode, exchangeCode)
	case strings.HasSuffix(areaCode, "11"):
		return PhoneNumber{}, fmt.Errorf("%w (%s)", ErrReservedAreaCode, areaCode)
	case strings.HasSuffix(lineNumber, "11"):
		return PhoneNumber{}, fmt.Errorf("%w (%s)", ErrReservedLineNumber, lineNumber)
	}

	return PhoneNumber{
		AreaCode:     areaCode,
		ExchangeCode: exchangeCode,
		LineNumber:   lineNumber,
	}, nil
}

// ParsePhoneNumber splits a ten digit string into its parts and validates it.
func ParsePhoneNumber(digits string) (PhoneNumber, error) {
	if !isDigits(digits, 10) {
		return PhoneNumber{}, fmt.Errorf("%w: %q", ErrMalformedParts, digits)
	}

	return NewPhoneNumber(digits[:3], digits[3:6], digits[6:])
}

// Digits returns the ten digit canonical form.
func (p PhoneNumber) Digits() string {
	return p.AreaCode + p.ExchangeCode + p.LineNumber
}

// Int returns the integer value of the canonical form.
func (p PhoneNumber) Int() int64 {
	// Parts are digit-only by construction, so this cannot fail.
	n, _ := strconv.ParseInt(p.Digits(), 10, 64)
	return n
}

// Compare orders two numbers by their integer value.
func Compare(a, b PhoneNumber) int {
	x, y := a.Int(), b.Int()

	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before other.
func (p PhoneNumber) Less(other PhoneNumber) bool {
	return Compare(p, other) < 0
}

// Display renders the number as "(AAA) EEE-LLLL".
func (p PhoneNumber) Display() string {
	return fmt.Sprintf("(%s) %s-%s", p.AreaCode, p.ExchangeCode, p.LineNumber)
}

// Debug renders a tagged form for logs.
func (p PhoneNumber) Debug() string {
	return fmt.Sprintf("PhoneNumber('%s')", p.Digits())
}

// E164 renders the number as "+1AAAEEELLLL".
func (p PhoneNumber) E164() string {
	num, err := p.parsed()
	if err != nil {
		return "+1" + p.Digits()
	}

	return phonenumbers.Format(num, phonenumbers.E164)
}

// IsAssigned reports whether libphonenumber considers the number valid for the US region.
func (p PhoneNumber) IsAssigned() bool {
	num, err := p.parsed()
	if err != nil {
		return false
	}

	return phonenumbers.IsValidNumberForRegion(num, RegionUS)
}

func (p PhoneNumber) parsed() (*phonenumbers.PhoneNumber, error) {
	num, err := phonenumbers.Parse(p.Digits(), RegionUS)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p.Debug(), err)
	}

	return num, nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
