// Package errs provides standardized error types for the courier core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The error taxonomy maps onto four caller-visible classes:
//   - NotFound: ObjectNotFoundError (missing status, shipment, zone, user)
//   - ValidationError: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - ConflictError: ConflictError and VersionIsInvalidError (illegal transition, stale write)
//   - AuthorizationError: AuthorizationError (wrong role or ownership)
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Batch workflows never return these for a single bad item; they render the
// error into the per-item error list of their result instead.
package errs
