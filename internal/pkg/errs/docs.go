// Package errs provides the standardized error taxonomy for the parcel
// delivery service.
//
// The package defines one structured error type per failure class:
//   - ValueIsRequiredError: a required value is missing (400-equivalent)
//   - ValueIsInvalidError: a value failed validation (400-equivalent)
//   - ObjectNotFoundError: a referenced entity does not exist (404-equivalent)
//   - ConflictError: an operation was rejected by the current entity state,
//     such as claiming a rider already bound to a delivery (409-equivalent)
//   - PartialApplicationError: a multi-row mutation matched fewer rows than
//     expected; the enclosing transaction is rolled back
//
// Each type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - Constructor functions with and without an underlying cause
//   - Error() producing a single-line, log-safe message
//   - Unwrap() returning the sentinel, so call sites classify with errors.Is
//
// The HTTP adapter is the only place that maps these classes to status codes;
// core code deals exclusively in the taxonomy.
package errs
