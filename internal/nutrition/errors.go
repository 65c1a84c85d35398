package nutrition

import "errors"

var (
	// ErrInvalidQuantity is returned when a logged quantity is missing,
	// NaN/Inf, or not strictly positive.
	ErrInvalidQuantity = errors.New("quantity must be a positive number")

	// ErrNoMeasurement is returned when a conversion is requested with a
	// method the food record does not define an encoding for.
	ErrNoMeasurement = errors.New("food has no encoding for the requested measurement method")
)
