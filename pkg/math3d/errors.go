package math3d

import "errors"

// ErrInvalidArgument is returned when an operand is not a numeric sequence,
// a Vector or, for ScaleBy, a numeric scalar.
var ErrInvalidArgument = errors.New("invalid argument")
