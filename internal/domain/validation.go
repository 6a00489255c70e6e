package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxNameLength    = 50
	MaxEmailLength   = 254
	MaxDecimalPlaces = 2
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateName validates a user's full name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)

	if len(email) > MaxEmailLength {
		return fmt.Errorf("%w: email exceeds %d characters", ErrInvalidEmail, MaxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateAmount validates a transfer amount: strictly positive with at most
// two fractional digits.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return validateScale(amount)
}

// ValidateInitialBalance validates an opening deposit: non-negative with at
// most two fractional digits. The boundary layer already checks this; the
// provisioner re-checks in case it is called directly.
func ValidateInitialBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return ErrInvalidInitialBalance
	}

	return validateScale(balance)
}

func validateScale(d decimal.Decimal) error {
	// Trailing zeros are fine (1.500 == 1.50); a real third digit is not.
	if !d.Equal(d.Truncate(MaxDecimalPlaces)) {
		return fmt.Errorf("%w: got %s", ErrTooManyDecimalPlaces, d.String())
	}

	return nil
}
