// Package errs provides standardized error types for the sourcing service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value exceeds its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when a write collides with an existing record
//   - StoreUnavailableError: For when the database or media host fails
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP adapter classifies responses by sentinel, so every error that leaves
// the core should unwrap to one of them.
package errs
