// Package data holds the plain container shapes the functor instances map
// over: Option, Either, Identity, Const, Pair, tuples, Reader and slice
// helpers. The types carry no behavior beyond construction, access and the
// curried Map* combinators.
package data

// Identity is the trivial one-value box. Mapping over it is plain function
// application.
type Identity[A any] struct {
	value A
}

// NewIdentity wraps a value in an Identity box.
//
// NewIdentity : A -> Identity[A].
func NewIdentity[A any](a A) Identity[A] {
	return Identity[A]{value: a}
}

// Unwrap ejects the value held by the Identity box.
func (i Identity[A]) Unwrap() A {
	return i.value
}

// Const is a box that carries a payload of type C while pretending, at the
// type level, to contain values of type A. The A parameter is phantom: no
// value of that type is ever stored, so mapping over a Const never invokes
// the mapped function.
type Const[C, A any] struct {
	payload C
}

// NewConst wraps a payload in a Const box. The element type must be supplied
// explicitly since nothing of that type is passed in.
//
// NewConst : C -> Const[C, A].
func NewConst[C, A any](c C) Const[C, A] {
	return Const[C, A]{payload: c}
}

// Payload returns the payload carried by the Const box.
func (c Const[C, A]) Payload() C {
	return c.payload
}

// RetagConst recasts the phantom element slot of a Const box. The payload is
// returned untouched.
//
// RetagConst : Const[C, A] -> Const[C, B].
func RetagConst[C, A, B any](c Const[C, A]) Const[C, B] {
	return Const[C, B]{payload: c.payload}
}

// Pair is an explicit two-field record, as opposed to the positional T2. The
// two are kept distinct so each can carry its own mapping conventions.
type Pair[A, B any] struct {
	first  A
	second B
}

// NewPair is the canonical Pair constructor.
//
// NewPair : (A, B) -> Pair[A, B].
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{
		first:  a,
		second: b,
	}
}

// First returns the first field of the Pair.
func (p Pair[A, B]) First() A {
	return p.first
}

// Second returns the second field of the Pair.
func (p Pair[A, B]) Second() B {
	return p.second
}

// MapPairSecond lifts the argument function into one that applies to the
// second field of a Pair, leaving the first in place.
//
// MapPairSecond : (A -> B) -> Pair[C, A] -> Pair[C, B].
func MapPairSecond[A, B, C any](f func(A) B) func(Pair[C, A]) Pair[C, B] {
	return func(p Pair[C, A]) Pair[C, B] {
		return NewPair[C, B](p.first, f(p.second))
	}
}
