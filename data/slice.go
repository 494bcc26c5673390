package data

import (
	"golang.org/x/exp/constraints"
)

// Number is a type constraint for all numeric types in Go (integers, float
// and complex numbers).
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Pred[A] is a predicate on type A.
type Pred[A any] func(A) bool

// All returns true when the supplied predicate evaluates to true for all of
// the values in the slice.
func All[A any](pred Pred[A], s []A) bool {
	for _, val := range s {
		if !pred(val) {
			return false
		}
	}

	return true
}

// Any returns true when the supplied predicate evaluates to true for any of
// the values in the slice.
func Any[A any](pred Pred[A], s []A) bool {
	for _, val := range s {
		if pred(val) {
			return true
		}
	}

	return false
}

// MapSlice transforms a pure function A -> B into one that applies it to
// every member of a slice, preserving order and length.
//
// MapSlice : (A -> B) -> []A -> []B.
func MapSlice[A, B any](f func(A) B) func([]A) []B {
	return func(s []A) []B {
		res := make([]B, 0, len(s))

		for _, val := range s {
			res = append(res, f(val))
		}

		return res
	}
}

// Filter creates a new slice of values where all the members of the returned
// slice pass the predicate that is supplied in the argument.
func Filter[A any](pred Pred[A], s []A) []A {
	res := make([]A, 0)

	for _, val := range s {
		if pred(val) {
			res = append(res, val)
		}
	}

	return res
}

// Foldl iterates through all members of the slice left to right and reduces
// them pairwise with an accumulator value that is seeded with the seed value
// in the argument.
func Foldl[A, B any](f func(B, A) B, seed B, s []A) B {
	acc := seed

	for _, val := range s {
		acc = f(acc, val)
	}

	return acc
}

// Flatten takes a slice of slices and returns a concatenation of those
// slices.
func Flatten[A any](s [][]A) []A {
	sz := Foldl(
		func(acc uint64, l []A) uint64 {
			return acc + uint64(len(l))
		}, 0, s,
	)

	res := make([]A, 0, sz)

	for _, val := range s {
		res = append(res, val...)
	}

	return res
}

// Sum computes the sum of the passed slice of numbers.
func Sum[B Number](items []B) B {
	return Foldl(func(acc, next B) B {
		return acc + next
	}, 0, items)
}
