package data

// T2 is the simplest 2-tuple type. It is useful for capturing ad hoc type
// conjunctions in a single value that can be easily dot-chained.
type T2[A, B any] struct {
	first  A
	second B
}

// NewT2 is the canonical constructor for a T2. We include it because the
// fields themselves are unexported.
func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{
		first:  a,
		second: b,
	}
}

// First returns the first value in the T2.
func (t2 T2[A, B]) First() A {
	return t2.first
}

// Second returns the second value in the T2.
func (t2 T2[A, B]) Second() B {
	return t2.second
}

// Unpack ejects the 2-tuple's members into the multiple return values that
// are customary in go idiom.
func (t2 T2[A, B]) Unpack() (A, B) {
	return t2.first, t2.second
}

// MapFirst lifts the argument function into one that applies to the first
// element of a 2-tuple.
//
// MapFirst : (A -> B) -> T2[A, C] -> T2[B, C].
func MapFirst[A, B, C any](f func(A) B) func(T2[A, C]) T2[B, C] {
	return func(t2 T2[A, C]) T2[B, C] {
		return NewT2[B, C](f(t2.first), t2.second)
	}
}

// MapSecond lifts the argument function into one that applies to the second
// element of a 2-tuple.
//
// MapSecond : (A -> B) -> T2[C, A] -> T2[C, B].
func MapSecond[A, B, C any](f func(A) B) func(T2[C, A]) T2[C, B] {
	return func(t2 T2[C, A]) T2[C, B] {
		return NewT2[C, B](t2.first, f(t2.second))
	}
}

// T3 is the positional 3-tuple type.
type T3[A, B, C any] struct {
	first  A
	second B
	third  C
}

// NewT3 is the canonical constructor for a T3.
func NewT3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{
		first:  a,
		second: b,
		third:  c,
	}
}

// First returns the first value in the T3.
func (t3 T3[A, B, C]) First() A {
	return t3.first
}

// Second returns the second value in the T3.
func (t3 T3[A, B, C]) Second() B {
	return t3.second
}

// Third returns the third value in the T3.
func (t3 T3[A, B, C]) Third() C {
	return t3.third
}

// Unpack ejects the 3-tuple's members into multiple return values.
func (t3 T3[A, B, C]) Unpack() (A, B, C) {
	return t3.first, t3.second, t3.third
}

// MapThird lifts the argument function into one that applies to the third
// element of a 3-tuple, leaving the first two in place.
//
// MapThird : (A -> B) -> T3[C, D, A] -> T3[C, D, B].
func MapThird[A, B, C, D any](f func(A) B) func(T3[C, D, A]) T3[C, D, B] {
	return func(t3 T3[C, D, A]) T3[C, D, B] {
		return NewT3[C, D, B](t3.first, t3.second, f(t3.third))
	}
}
