package normalizer

import (
	"errors"
	"fmt"

	"phonenorm/internal/models"
)

// NumberLength is the length of a canonical NANP number.
const NumberLength = 10

// Validation errors.
var (
	ErrTooShort    = errors.New("fewer than 10 digits")
	ErrNotAssigned = errors.New("number is not valid for the US numbering plan")
)

// Validator turns a normalized digit string into a PhoneNumber.
type Validator struct {
	strict bool
}

// NewValidator creates a new validator. In strict mode numbers must also be
// recognised by libphonenumber's US metadata.
func NewValidator(strict bool) *Validator {
	return &Validator{strict: strict}
}

// Validate checks the length, takes the last ten digits and applies the
// numbering plan rules.
func (v *Validator) Validate(digits string) (models.PhoneNumber, error) {
	if len(digits) < NumberLength {
		return models.PhoneNumber{}, fmt.Errorf("%w: got %d", ErrTooShort, len(digits))
	}

	number, err := models.ParsePhoneNumber(digits[len(digits)-NumberLength:])
	if err != nil {
		return models.PhoneNumber{}, err
	}

	if v.strict && !number.IsAssigned() {
		return models.PhoneNumber{}, fmt.Errorf("%w: %s", ErrNotAssigned, number.Digits())
	}

	return number, nil
}
