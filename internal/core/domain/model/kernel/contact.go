package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var contactNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// ErrContactNumberIsNotConstructed is returned when validating a zero-value ContactNumber.
var ErrContactNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"contact number must be created via NewContactNumber constructor")

// ContactNumber is the unique key of an account: exactly ten digits.
// It doubles as the only credential the application asks for.
type ContactNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewContactNumber validates raw input, ignoring surrounding whitespace.
//
// Example:
//
//	contact, err := kernel.NewContactNumber("0771234567")
//	if err != nil {
//	    // re-prompt the user
//	}
func NewContactNumber(raw string) (ContactNumber, error) {
	value := strings.TrimSpace(raw)
	if !contactNumberPattern.MatchString(value) {
		return ContactNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"contact number is invalid",
			fmt.Errorf("%q is not a 10-digit number", value),
		)
	}

	return ContactNumber{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the ContactNumber was built by NewContactNumber.
func (c ContactNumber) Validate() error {
	return c.guard.Validate(ErrContactNumberIsNotConstructed)
}

// IsEqual compares two contact numbers by value.
func (c ContactNumber) IsEqual(other ContactNumber) bool {
	return c.value == other.value
}

func (c ContactNumber) String() string {
	return c.value
}
