package order

import (
	"fmt"
	"regexp"
	"strings"

	"sourcing/internal/pkg/errs"

	"github.com/google/uuid"
)

const numberPrefix = "ORD-"

var numberPattern = regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)

// Number is the human-readable order reference shown to buyers and the
// production team, formatted as "ORD-" followed by 8 uppercase hex characters.
type Number struct {
	value string
}

// NewNumber derives a fresh order number from a random UUID.
func NewNumber() Number {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return Number{value: numberPrefix + strings.ToUpper(raw[:8])}
}

// ParseNumber validates a stored order number.
func ParseNumber(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q does not match ORD-XXXXXXXX", s))
	}
	return Number{value: s}, nil
}

// String returns the formatted number.
func (n Number) String() string {
	return n.value
}

// Validate rejects the zero value.
func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}
