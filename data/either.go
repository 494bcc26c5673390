package data

// Either is a type that can be either left or right. By convention the right
// variant carries the "interesting" value and the left variant carries the
// value that passes through combinators untouched.
type Either[L any, R any] struct {
	left  Option[L]
	right Option[R]
}

// NewLeft returns an Either with a left value.
//
// NewLeft : L -> Either[L, R].
func NewLeft[L any, R any](l L) Either[L, R] {
	return Either[L, R]{left: Some(l), right: None[R]()}
}

// NewRight returns an Either with a right value.
//
// NewRight : R -> Either[L, R].
func NewRight[L any, R any](r R) Either[L, R] {
	return Either[L, R]{left: None[L](), right: Some(r)}
}

// IsLeft returns true if the Either is left.
func (e Either[L, R]) IsLeft() bool {
	return e.left.IsSome()
}

// IsRight returns true if the Either is right.
func (e Either[L, R]) IsRight() bool {
	return e.right.IsSome()
}

// WhenLeft executes the given function if the Either is left.
func (e Either[L, R]) WhenLeft(f func(L)) {
	e.left.WhenSome(f)
}

// WhenRight executes the given function if the Either is right.
func (e Either[L, R]) WhenRight(f func(R)) {
	e.right.WhenSome(f)
}

// ElimEither is the universal Either eliminator. It covers both variants by
// taking one continuation per side.
//
// ElimEither : (Either[L, R], L -> O, R -> O) -> O.
func ElimEither[L, R, O any](e Either[L, R], f func(L) O, g func(R) O) O {
	if e.IsLeft() {
		return f(e.left.some)
	}

	return g(e.right.some)
}

// MapRight transforms a pure function R -> O into one that maps the right
// value of an Either, leaving a left value (and its payload type) untouched.
//
// MapRight : (R -> O) -> Either[L, R] -> Either[L, O].
func MapRight[L, R, O any](f func(R) O) func(Either[L, R]) Either[L, O] {
	return func(e Either[L, R]) Either[L, O] {
		return Either[L, O]{
			left:  e.left,
			right: MapOption(f)(e.right),
		}
	}
}

// MapLeft transforms a pure function L -> O into one that maps the left value
// of an Either, leaving a right value untouched.
//
// MapLeft : (L -> O) -> Either[L, R] -> Either[O, R].
func MapLeft[L, R, O any](f func(L) O) func(Either[L, R]) Either[O, R] {
	return func(e Either[L, R]) Either[O, R] {
		return Either[O, R]{
			left:  MapOption(f)(e.left),
			right: e.right,
		}
	}
}
