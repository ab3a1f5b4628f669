package order

import (
	"fmt"

	"sourcing/internal/pkg/errs"
)

// Status is the overall state of an order, derived from its production steps.
//
// State transitions reachable through the production workflow:
//
//	Confirmed ──> In Production ──> Completed
//	    │                               ▲
//	    └───────────────────────────────┘
//	         (all eight steps completed at once)
//
// Delivered is a valid stored value but no transition in this service produces
// it; a shipping confirmation flow owns it. Reverting a step never moves the
// status backwards.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Confirmed is the initial status of an order created from an accepted quote.
	Confirmed

	// InProduction indicates at least one production step is completed.
	InProduction

	// Completed indicates every production step is completed.
	Completed

	// Delivered indicates the goods reached the buyer.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Confirmed:    "Confirmed",
		InProduction: "In Production",
		Completed:    "Completed",
		Delivered:    "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed:    "Confirmed",
		InProduction: "In Production",
		Completed:    "Completed",
		Delivered:    "Delivered",
	}
}

// ParseStatus converts the stored representation of an overall status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Confirmed, In Production, Completed, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
