package framework

import "errors"

var (
	// ErrInvalidArgument is returned for malformed dimensions, populations
	// that are too small, mismatched vector lengths and bad parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when a gene index is outside [0, length).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEvaluation is returned when an objective evaluation fails or yields NaN.
	ErrEvaluation = errors.New("objective evaluation failed")
)
