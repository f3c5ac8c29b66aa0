package dcm

import "errors"

// Sentinel errors for the dcm package's malformed-input conditions.
var (
	// ErrInvalidSequence indicates an unrecognized Sequence or
	// TwoVectorSeq value.
	ErrInvalidSequence = errors.New("dcm: invalid rotation sequence")

	// ErrDimensionMismatch indicates the number of angle/derivative
	// arguments did not match the arity the Sequence requires.
	ErrDimensionMismatch = errors.New("dcm: dimension mismatch")
)
