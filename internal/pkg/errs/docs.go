// Package errs provides standardized error types for the seller-operations service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an entity cannot be found by its id
//   - ObjectAlreadyExistsError: For when a natural id is already taken
//   - ObjectStateConflictError: For when an entity is not in a state that allows the operation
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its allowed bounds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// FromDatabase translates store errors (GORM, PostgreSQL, SQLite) into these types
// so adapters above the repositories can classify failures with errors.Is.
package errs
