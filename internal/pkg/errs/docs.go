// Package errs provides standardized error types for the laundry application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed range
//   - ObjectNotFoundError: a referenced object cannot be found
//   - ObjectAlreadyExistsError: a uniqueness constraint was violated
//   - ConcurrentModificationError: a writer lost a read-modify-write race
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting, Unwrap() for errors.Is classification
//
// The transport layer maps these classes onto HTTP status codes: required,
// invalid and out-of-range become 400, not-found becomes 404, already-exists
// and concurrent-modification become 409.
package errs
