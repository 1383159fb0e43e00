/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error types for date format inference. Every failure mode surfaces to the
caller as one typed error with a human-readable message; partial inference is never
returned.
*/

package infer

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when no non-sentinel inputs remain after filtering
var ErrEmptyInput = errors.New("no date strings provided")

// ErrUnresolvableFormat is returned when resolution leaves no position with a
// legal date component role
var ErrUnresolvableFormat = errors.New("could not resolve any date components")

// InconsistentFormatsError is returned when no signature bucket holds a
// strict majority of the non-sentinel inputs
type InconsistentFormatsError struct {
	MajoritySize int // size of the largest signature bucket
	Total        int // non-sentinel inputs considered
}

func (e *InconsistentFormatsError) Error() string {
	return fmt.Sprintf("date strings have inconsistent formats: largest group holds %d of %d", e.MajoritySize, e.Total)
}

// LowConfidenceError is returned when the computed confidence falls below the
// caller's threshold
type LowConfidenceError struct {
	Got      float64
	Required float64
}

func (e *LowConfidenceError) Error() string {
	return fmt.Sprintf("confidence %.2f below required threshold %.2f", e.Got, e.Required)
}

// UnknownAlphaTokenError is returned when every example in the winning bucket
// carries a text token outside the recognized name tables
type UnknownAlphaTokenError struct {
	Token string
}

func (e *UnknownAlphaTokenError) Error() string {
	return fmt.Sprintf("unrecognized text token %q in date strings", e.Token)
}

// StrictValidationError is returned in strict mode when some inputs are
// incompatible with the inferred format
type StrictValidationError struct {
	Bad   int // inputs that failed compatibility
	Total int // all inputs, including skipped sentinels
}

func (e *StrictValidationError) Error() string {
	return fmt.Sprintf("strict validation failed: %d of %d dates incompatible with inferred format", e.Bad, e.Total)
}
