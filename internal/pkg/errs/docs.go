// Package errs provides standardized error types for the purchase order cost application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes the error kinds callers need to distinguish:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but malformed or not allowed
//   - ObjectNotFoundError: a referenced order, item, product or supplier does not exist
//
// ValueIsRequiredError and ValueIsInvalidError together form the validation kind;
// IsValidation reports whether an error (or anything it wraps) belongs to it.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
