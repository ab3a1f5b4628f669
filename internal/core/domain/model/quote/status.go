package quote

import (
	"fmt"

	"sourcing/internal/pkg/errs"
)

// Status is the review state of a buyer's request for quote.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the status of a newly submitted quote.
	Pending

	// Accepted means the admin accepted the quote; exactly one order exists for it.
	Accepted

	// Rejected means the admin declined the quote with comments.
	Rejected
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
	}
}

// ParseStatus converts "Pending", "Accepted" or "Rejected".
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid quote status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid quote status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
