// Package errs provides standardized error types for the delivery marketplace.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when an object's state does not allow the operation
//   - ForbiddenError: For when the caller is not the authorized actor
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter relies on the sentinels to map failures to response codes:
// ErrObjectNotFound maps to 404, ErrConflict to 409, ErrForbidden to 403, and
// the validation sentinels to 400. A conflicting accept therefore reaches the
// caller as a distinguishable "already taken" signal rather than a generic
// failure.
package errs
