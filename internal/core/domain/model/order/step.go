package order

import (
	"fmt"

	"sourcing/internal/pkg/errs"
)

var (
	// ErrInvalidStep is returned for a step name outside the fixed production ledger.
	ErrInvalidStep = errs.NewValueIsInvalidError("step")

	// ErrInvalidStepStatus is returned for a step status outside
	// Not Started, In Progress and Completed.
	ErrInvalidStepStatus = errs.NewValueIsInvalidError("step status")
)

// StepName identifies one of the eight production steps every order carries.
// The set is closed: steps can be neither added nor removed after an order
// is created. The numeric order is the display order; aggregation ignores it.
type StepName int

const (
	// UnknownStep is the zero value and never names a real step.
	UnknownStep StepName = iota
	SampleConfirmation
	FabricInhoused
	FabricQualityCheck
	Production
	Packaging
	QualityCheck
	OutForDelivery
	ConfirmPaymentTerms
)

// StepCount is the fixed number of production steps.
const StepCount = int(ConfirmPaymentTerms)

func getStepNameStrings() map[StepName]string {
	//nolint:exhaustive // UnknownStep is intentionally excluded as it's invalid
	return map[StepName]string{
		SampleConfirmation:  "sampleConfirmation",
		FabricInhoused:      "fabricInhoused",
		FabricQualityCheck:  "fabricQualityCheck",
		Production:          "production",
		Packaging:           "packaging",
		QualityCheck:        "qualityCheck",
		OutForDelivery:      "outForDelivery",
		ConfirmPaymentTerms: "confirmPaymentTerms",
	}
}

// AllStepNames returns the production steps in display order.
func AllStepNames() []StepName {
	names := make([]StepName, 0, StepCount)
	for n := SampleConfirmation; n <= ConfirmPaymentTerms; n++ {
		names = append(names, n)
	}
	return names
}

// ParseStepName converts the wire name (e.g. "fabricQualityCheck") of a step.
// Names are case sensitive, matching the keys used by the tracking API.
func ParseStepName(s string) (StepName, error) {
	for name, str := range getStepNameStrings() {
		if str == s {
			return name, nil
		}
	}
	return UnknownStep, fmt.Errorf("%w: %q is not a production step", ErrInvalidStep, s)
}

// Validate reports whether the step belongs to the fixed ledger.
func (n StepName) Validate() error {
	if _, ok := getStepNameStrings()[n]; !ok {
		return fmt.Errorf("%w: %d is not a production step", ErrInvalidStep, n)
	}
	return nil
}

// String returns the wire name of the step, or "unknown".
func (n StepName) String() string {
	if str, ok := getStepNameStrings()[n]; ok {
		return str
	}
	return "unknown"
}

// StepStatus is the progress of a single production step.
//
// Steps move freely between all three values; the workflow does not enforce
// Not Started -> In Progress -> Completed and allows reverting a completed step.
type StepStatus int

const (
	// UnknownStepStatus is the zero value and is never persisted.
	UnknownStepStatus StepStatus = iota

	// NotStarted is the default status of every step of a new order.
	NotStarted

	// InProgress marks a step that has begun.
	InProgress

	// StepCompleted marks a finished step. Only a transition to this value
	// can move the order's overall status forward.
	StepCompleted
)

func getStepStatusStrings() map[StepStatus]string {
	//nolint:exhaustive // UnknownStepStatus is intentionally excluded as it's invalid
	return map[StepStatus]string{
		NotStarted:    "Not Started",
		InProgress:    "In Progress",
		StepCompleted: "Completed",
	}
}

// ParseStepStatus converts "Not Started", "In Progress" or "Completed".
func ParseStepStatus(s string) (StepStatus, error) {
	for status, str := range getStepStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStepStatus, fmt.Errorf("%w: %q is not a valid step status", ErrInvalidStepStatus, s)
}

// Validate reports whether the status is one of the three known values.
func (s StepStatus) Validate() error {
	if _, ok := getStepStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid step status", ErrInvalidStepStatus, s)
	}
	return nil
}

// String returns the display value, or "Unknown".
func (s StepStatus) String() string {
	if str, ok := getStepStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
