package anthro

import (
	"errors"
	"fmt"
)

// ErrIncompleteProfile is returned when an estimate needs profile
// fields that are missing. Callers can tell "not computable" apart
// from a computed zero.
var ErrIncompleteProfile = errors.New("profile is missing fields required for this estimate")

// OutOfRangeError reports an input or derived value outside the bounds
// the underlying formula is valid for. Out-of-range results are
// surfaced, never clamped.
type OutOfRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %g out of range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

func checkRange(field string, value, min, max float64) error {
	if value < min || value > max {
		return &OutOfRangeError{Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}
