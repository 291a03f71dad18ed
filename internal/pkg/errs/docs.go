// Package errs provides standardized error types for the pizzeria application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: an order, account or product identifier matched nothing
//   - InvalidStateError: the target exists but its state forbids the operation
//     (feedback on an undelivered order, a status write on a missing or terminal order)
//   - ValueIsInvalidError, ValueIsOutOfRangeError, ValueIsRequiredError: malformed input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is works through %w wrapping
package errs
