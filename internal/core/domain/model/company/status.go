package company

import (
	"fmt"

	"sourcing/internal/pkg/errs"
)

// Status is the verification workflow state of a buyer company.
type Status string

const (
	Pending     Status = "Pending"
	UnderReview Status = "Under Review"
	Approved    Status = "Approved"
	Rejected    Status = "Rejected"
)

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, UnderReview, Approved, Rejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid company status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// VerifiedFilter converts the listing filter into a hasBeenVerified value.
// "All Status" and the empty string return nil; "Verified" returns true and
// any other value returns false.
func VerifiedFilter(filter string) *bool {
	if filter == "" || filter == "All Status" {
		return nil
	}
	verified := filter == "Verified"
	return &verified
}
