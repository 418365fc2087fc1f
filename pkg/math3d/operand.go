package math3d

import (
	"encoding/json"
	"fmt"
)

// Operand is anything the arithmetic methods of Vector accept: a raw
// Components sequence or another Vector. The set is closed.
type Operand interface {
	components() []float64
}

// Components is a raw numeric sequence used as an operand. Missing indices
// are treated as zero by Add and Multiply and as absent by Dot.
type Components []float64

func (c Components) components() []float64 { return c }

var (
	_ Operand = Components(nil)
	_ Operand = Vector{}
)

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// normalize turns an operand into its plain component sequence.
func normalize(o Operand) ([]float64, error) {
	switch t := o.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil operand", ErrInvalidArgument)
	case *Vector:
		if t == nil {
			return nil, fmt.Errorf("%w: nil vector", ErrInvalidArgument)
		}
		return t.values(), nil
	}
	return o.components(), nil
}

// AsOperand converts a dynamically typed value into an Operand. Accepted are
// Vector, *Vector, Components, slices of Go numeric types, []any holding
// numbers, and maps keyed by contiguous zero-based indices.
func AsOperand(v any) (Operand, error) {
	switch t := v.(type) {
	case Vector:
		return t, nil
	case *Vector:
		if t == nil {
			return nil, fmt.Errorf("%w: nil vector", ErrInvalidArgument)
		}
		return *t, nil
	case Components:
		return t, nil
	case []float64:
		return Components(t), nil
	case []float32:
		return Components(convert(t)), nil
	case []int:
		return Components(convert(t)), nil
	case []int32:
		return Components(convert(t)), nil
	case []int64:
		return Components(convert(t)), nil
	case []uint:
		return Components(convert(t)), nil
	case []any:
		return fromAnySlice(t)
	case map[int]float64:
		return fromIndexed(t)
	case map[int]int:
		return fromIndexed(t)
	case map[int]any:
		values := make(map[int]float64, len(t))
		for idx, elem := range t {
			f, ok := toFloat(elem)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T, not a number", ErrInvalidArgument, idx, elem)
			}
			values[idx] = f
		}
		return fromIndexed(values)
	default:
		return nil, fmt.Errorf("%w: %T is not a numeric sequence or vector", ErrInvalidArgument, v)
	}
}

func convert[T number](src []T) []float64 {
	out := make([]float64, len(src))
	for idx, value := range src {
		out[idx] = float64(value)
	}
	return out
}

func fromAnySlice(src []any) (Operand, error) {
	out := make(Components, len(src))
	for idx, elem := range src {
		f, ok := toFloat(elem)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T, not a number", ErrInvalidArgument, idx, elem)
		}
		out[idx] = f
	}
	return out, nil
}

// fromIndexed accepts an index-keyed map only when its keys are exactly
// 0..len-1.
func fromIndexed[T number](src map[int]T) (Operand, error) {
	out := make(Components, len(src))
	for idx, value := range src {
		if idx < 0 || idx >= len(src) {
			return nil, fmt.Errorf("%w: index %d breaks zero-based contiguous indexing", ErrInvalidArgument, idx)
		}
		out[idx] = float64(value)
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
