// Package math3d provides an immutable numeric vector with at least three
// components and elementwise arithmetic over it.
package math3d

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/zeusync/gravity/pkg/sequence"
)

// Dimensions is the minimum number of components every Vector holds.
const Dimensions = 3

// defaultComponents is shared and must never be written to.
var defaultComponents = []float64{0, 0, 0}

// Vector is a numeric tuple with at least Dimensions components. A Vector is
// never modified after construction; every operation returns a new one. The
// zero value is the vector [0 0 0].
type Vector struct {
	c []float64
}

// New builds a Vector from the given components. Components 0..2 default to
// zero when absent; components past index 2 are kept as given.
func New(components ...float64) Vector {
	return Vector{c: sequence.Overlay(defaultComponents, components)}
}

// FromOperand builds a Vector from a raw sequence or copies another Vector.
func FromOperand(o Operand) (Vector, error) {
	values, err := normalize(o)
	if err != nil {
		return Vector{}, err
	}
	return New(values...), nil
}

// Parse builds a Vector from a dynamically typed value. See AsOperand for
// the accepted shapes; anything else yields ErrInvalidArgument.
func Parse(v any) (Vector, error) {
	o, err := AsOperand(v)
	if err != nil {
		return Vector{}, err
	}
	return FromOperand(o)
}

func (v Vector) values() []float64 {
	if len(v.c) == 0 {
		return defaultComponents
	}
	return v.c
}

func (v Vector) components() []float64 { return v.values() }

// Components returns a copy of the vector's components.
func (v Vector) Components() []float64 {
	return slices.Clone(v.values())
}

// Len returns the number of components, never less than Dimensions.
func (v Vector) Len() int { return len(v.values()) }

// At returns component i, or 0 when the vector has no such component.
func (v Vector) At(i int) float64 {
	values := v.values()
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}

// Add returns the elementwise sum. The result is as long as the longer
// operand; missing components count as zero.
func (v Vector) Add(o Operand) (Vector, error) {
	values, err := normalize(o)
	if err != nil {
		return Vector{}, err
	}
	return v.combine(values, func(a, b float64) float64 { return a + b }), nil
}

// Multiply returns the elementwise product. The result is as long as the
// longer operand; missing components count as zero.
func (v Vector) Multiply(o Operand) (Vector, error) {
	values, err := normalize(o)
	if err != nil {
		return Vector{}, err
	}
	return v.multiply(values), nil
}

// Scale multiplies every component by s.
func (v Vector) Scale(s float64) Vector {
	return v.multiply(sequence.Fill(v.Len(), s))
}

// Subtract returns v minus o, computed as v plus o scaled by -1.
func (v Vector) Subtract(o Operand) (Vector, error) {
	values, err := normalize(o)
	if err != nil {
		return Vector{}, err
	}
	return v.Add(New(values...).Scale(-1))
}

// Magnitude returns the Euclidean norm over all components.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(sequence.Reduce(v.values(), 0.0, func(acc, c float64) float64 {
		return acc + c*c
	}))
}

// Dot returns the dot product of v and o. Unlike Add and Multiply, only the
// indices present in both operands contribute.
func (v Vector) Dot(o Operand) (float64, error) {
	values, err := normalize(o)
	if err != nil {
		return 0, err
	}
	products := sequence.Zip(v.values(), values, func(a, b float64) float64 { return a * b })
	return sequence.Reduce(products, 0.0, func(acc, p float64) float64 { return acc + p }), nil
}

// Equal reports whether v and o agree componentwise within tol, treating
// missing components as zero. A nil operand is never equal.
func (v Vector) Equal(o Operand, tol float64) bool {
	values, err := normalize(o)
	if err != nil {
		return false
	}
	diffs := sequence.Join(v.values(), values, func(a, b float64) float64 { return math.Abs(a - b) })
	return !slices.ContainsFunc(diffs, func(d float64) bool { return d > tol })
}

func (v Vector) String() string {
	parts := sequence.Transform(v.values(), func(c float64) string {
		return strconv.FormatFloat(c, 'g', -1, 64)
	})
	return "[" + strings.Join(parts, " ") + "]"
}

func (v Vector) multiply(values []float64) Vector {
	return v.combine(values, func(a, b float64) float64 { return a * b })
}

func (v Vector) combine(values []float64, op func(a, b float64) float64) Vector {
	return New(sequence.Join(v.values(), values, op)...)
}
