package order

// DeriveStatus maps a complete step ledger to the overall order status.
//
// Rules, with completed = number of Completed steps:
//   - completed == StepCount: Completed
//   - completed > 0: InProduction
//   - otherwise: no status is derived and ok is false, leaving the current
//     overall status untouched (there is no reset to Confirmed)
//
// The ledger passed in must already contain the pending step update; callers
// merge with Steps.With before deriving instead of re-reading storage.
//
// Example:
//
//	merged, _ := o.Steps().With(order.Production, order.StepCompleted)
//	if status, ok := order.DeriveStatus(merged); ok {
//	    fmt.Println(status) // "In Production"
//	}
func DeriveStatus(steps Steps) (status Status, ok bool) {
	completed := steps.CompletedCount()

	switch {
	case completed == StepCount:
		return Completed, true
	case completed > 0:
		return InProduction, true
	default:
		return Unknown, false
	}
}
