// Package sequence holds small generic helpers over slices.
package sequence

/*
Join combines first and second index by index and returns a new slice with
the results. The result has the length of the longer input; the zero value
of the element type stands in for elements missing from the shorter one.
*/
func Join[T any, S any, R any](first []T, second []S, join func(T, S) R) []R {
	n := max(len(first), len(second))
	joined := make([]R, n)

	var zeroT T
	var zeroS S
	for idx := range n {
		v, w := zeroT, zeroS
		if idx < len(first) {
			v = first[idx]
		}
		if idx < len(second) {
			w = second[idx]
		}
		joined[idx] = join(v, w)
	}
	return joined
}

// Zip combines first and second index by index, stopping at the end of the
// shorter slice.
func Zip[T any, S any, R any](first []T, second []S, join func(T, S) R) []R {
	n := min(len(first), len(second))
	zipped := make([]R, n)
	for idx := range n {
		zipped[idx] = join(first[idx], second[idx])
	}
	return zipped
}

// Transform applies mutate to each element of data and returns a new slice.
func Transform[T any, R any](data []T, mutate func(T) R) []R {
	transformed := make([]R, len(data))
	for idx, value := range data {
		transformed[idx] = mutate(value)
	}
	return transformed
}

// Reduce folds data into a single value starting from init.
func Reduce[T any, R any](data []T, init R, reducer func(R, T) R) R {
	acc := init
	for _, value := range data {
		acc = reducer(acc, value)
	}
	return acc
}

// Fill returns a slice of length n with every element set to value.
func Fill[T any](n int, value T) []T {
	filled := make([]T, n)
	for idx := range filled {
		filled[idx] = value
	}
	return filled
}

// Overlay copies src over base index by index and appends whatever src holds
// beyond the end of base. Neither input is modified.
func Overlay[T any](base, src []T) []T {
	out := make([]T, max(len(base), len(src)))
	copy(out, base)
	copy(out, src)
	return out
}
