package math3d

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ScaleBy is Scale for a dynamically typed factor. It accepts Go numeric
// types, json.Number and numeric strings such as "2", "-0.5" or "1e3".
// Sequences, vectors and non-numeric strings yield ErrInvalidArgument.
func (v Vector) ScaleBy(s any) (Vector, error) {
	factor, err := ParseScalar(s)
	if err != nil {
		return Vector{}, err
	}
	return v.Scale(factor), nil
}

// ParseScalar converts a numeric value or numeric string into a float64.
func ParseScalar(s any) (float64, error) {
	switch t := s.(type) {
	case string:
		return parseNumeric(t)
	case json.Number:
		return parseNumeric(t.String())
	}
	if f, ok := toFloat(s); ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %T is not numeric", ErrInvalidArgument, s)
}

// float64 overflows past 1e308 and underflows below 5e-324, so decimal
// magnitudes outside this order range convert without building 10^exp.
const maxDecimalOrder = 400

func parseNumeric(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidArgument, s)
	}
	if d.IsZero() {
		return 0, nil
	}

	order := int64(d.Exponent()) + int64(d.NumDigits())
	switch {
	case order > maxDecimalOrder:
		return math.Inf(d.Sign()), nil
	case order < -maxDecimalOrder:
		return math.Copysign(0, float64(d.Sign())), nil
	}

	f, _ := d.Float64()
	return f, nil
}
