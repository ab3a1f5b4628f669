package order

import (
	"fmt"
	"iter"

	"sourcing/internal/pkg/errs"
)

// Steps is the production step ledger of an order: exactly one status per
// StepName. It is a value type; With returns a modified copy and never
// mutates the receiver, which lets the workflow merge a pending update and
// aggregate it before anything is persisted.
type Steps struct {
	statuses [StepCount]StepStatus
}

// NewSteps returns a ledger with every step Not Started.
func NewSteps() Steps {
	var s Steps
	for i := range s.statuses {
		s.statuses[i] = NotStarted
	}
	return s
}

// RestoreSteps rebuilds a ledger from persisted values.
// Every one of the eight steps must be present with a valid status.
func RestoreSteps(statuses map[StepName]StepStatus) (Steps, error) {
	if len(statuses) != StepCount {
		return Steps{}, errs.NewValueIsOutOfRangeError("steps", len(statuses), StepCount, StepCount)
	}

	var s Steps
	for name, status := range statuses {
		if err := name.Validate(); err != nil {
			return Steps{}, err
		}
		if err := status.Validate(); err != nil {
			return Steps{}, fmt.Errorf("step %s: %w", name, err)
		}
		s.statuses[name-1] = status
	}
	return s, nil
}

// Get returns the status of one step.
func (s Steps) Get(name StepName) (StepStatus, error) {
	if err := name.Validate(); err != nil {
		return UnknownStepStatus, err
	}
	return s.statuses[name-1], nil
}

// With returns a copy of the ledger where name is set to status.
func (s Steps) With(name StepName, status StepStatus) (Steps, error) {
	if err := name.Validate(); err != nil {
		return Steps{}, err
	}
	if err := status.Validate(); err != nil {
		return Steps{}, err
	}

	merged := s
	merged.statuses[name-1] = status
	return merged, nil
}

// CompletedCount returns how many steps are Completed.
func (s Steps) CompletedCount() int {
	count := 0
	for _, status := range s.statuses {
		if status == StepCompleted {
			count++
		}
	}
	return count
}

// All yields every step with its status in display order.
func (s Steps) All() iter.Seq2[StepName, StepStatus] {
	return func(yield func(StepName, StepStatus) bool) {
		for i, status := range s.statuses {
			if !yield(StepName(i+1), status) {
				return
			}
		}
	}
}

// Map returns the ledger as a map keyed by step name.
func (s Steps) Map() map[StepName]StepStatus {
	m := make(map[StepName]StepStatus, StepCount)
	for name, status := range s.All() {
		m[name] = status
	}
	return m
}

// ParseSteps rebuilds a ledger keyed by step and status names, the form the
// ledger takes in storage and on the wire.
func ParseSteps(raw map[string]string) (Steps, error) {
	statuses := make(map[StepName]StepStatus, len(raw))
	for rawName, rawStatus := range raw {
		name, err := ParseStepName(rawName)
		if err != nil {
			return Steps{}, err
		}
		status, err := ParseStepStatus(rawStatus)
		if err != nil {
			return Steps{}, err
		}
		statuses[name] = status
	}
	return RestoreSteps(statuses)
}

// Strings returns the ledger keyed by step name with display statuses.
func (s Steps) Strings() map[string]string {
	m := make(map[string]string, StepCount)
	for name, status := range s.All() {
		m[name.String()] = status.String()
	}
	return m
}
