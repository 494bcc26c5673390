package functor

import (
	"github.com/fnlab/functor/data"
	"github.com/fnlab/functor/writer"
)

// The phantom discriminator tags, one per instance. None of them is ever
// instantiated; they exist so that, say, the Option instance over ints and
// the Identity instance over ints are different types.
type (
	// IdentityTag discriminates the Identity box instance.
	IdentityTag struct{}

	// OptionTag discriminates the Option instance.
	OptionTag struct{}

	// SliceTag discriminates the slice instance.
	SliceTag struct{}

	// ConstTag discriminates the Const box instance.
	ConstTag struct{}

	// T2Tag discriminates the positional 2-tuple instance.
	T2Tag struct{}

	// PairTag discriminates the two-field Pair record instance.
	PairTag struct{}

	// T3Tag discriminates the positional 3-tuple instance.
	T3Tag struct{}

	// EitherTag discriminates the Either instance.
	EitherTag struct{}

	// FuncTag discriminates the bare function-arrow instance.
	FuncTag struct{}

	// ReaderTag discriminates the Reader instance.
	ReaderTag struct{}

	// WriterTag discriminates the Writer instance.
	WriterTag struct{}
)

// IdentityFunctor builds the instance for the Identity box: mapping is plain
// function application to the held value.
func IdentityFunctor[A, B any]() Functor[
	IdentityTag, A, B, data.Identity[A], data.Identity[B]] {

	return Functor[IdentityTag, A, B, data.Identity[A], data.Identity[B]]{
		Fmap: func(f func(A) B) func(data.Identity[A]) data.Identity[B] {
			return func(i data.Identity[A]) data.Identity[B] {
				return data.NewIdentity(f(i.Unwrap()))
			}
		},
	}
}

// OptionFunctor builds the instance for Option: a present value is mapped,
// None passes through unchanged.
func OptionFunctor[A, B any]() Functor[
	OptionTag, A, B, data.Option[A], data.Option[B]] {

	return Functor[OptionTag, A, B, data.Option[A], data.Option[B]]{
		Fmap: func(f func(A) B) func(data.Option[A]) data.Option[B] {
			return data.MapOption(f)
		},
	}
}

// SliceFunctor builds the instance for slices: the function is applied to
// every element, preserving order and length.
func SliceFunctor[A, B any]() Functor[SliceTag, A, B, []A, []B] {
	return Functor[SliceTag, A, B, []A, []B]{
		Fmap: func(f func(A) B) func([]A) []B {
			return data.MapSlice(f)
		},
	}
}

// ConstFunctor builds the instance for the Const box. The element slot is
// phantom, so mapping never invokes the function: the payload is carried
// through untouched and only the phantom slot is retagged.
func ConstFunctor[C, A, B any]() Functor[
	ConstTag, A, B, data.Const[C, A], data.Const[C, B]] {

	return Functor[ConstTag, A, B, data.Const[C, A], data.Const[C, B]]{
		Fmap: func(func(A) B) func(data.Const[C, A]) data.Const[C, B] {
			return data.RetagConst[C, A, B]
		},
	}
}

// T2Functor builds the instance for the positional 2-tuple with its first
// component fixed: only the second component is mapped.
func T2Functor[C, A, B any]() Functor[
	T2Tag, A, B, data.T2[C, A], data.T2[C, B]] {

	return Functor[T2Tag, A, B, data.T2[C, A], data.T2[C, B]]{
		Fmap: func(f func(A) B) func(data.T2[C, A]) data.T2[C, B] {
			return data.MapSecond[A, B, C](f)
		},
	}
}

// PairFunctor builds the instance for the two-field Pair record with its
// first field fixed: only the second field is mapped.
func PairFunctor[C, A, B any]() Functor[
	PairTag, A, B, data.Pair[C, A], data.Pair[C, B]] {

	return Functor[PairTag, A, B, data.Pair[C, A], data.Pair[C, B]]{
		Fmap: func(f func(A) B) func(data.Pair[C, A]) data.Pair[C, B] {
			return data.MapPairSecond[A, B, C](f)
		},
	}
}

// T3Functor builds the instance for the positional 3-tuple with its first
// two components fixed: only the third component is mapped.
func T3Functor[C, D, A, B any]() Functor[
	T3Tag, A, B, data.T3[C, D, A], data.T3[C, D, B]] {

	return Functor[T3Tag, A, B, data.T3[C, D, A], data.T3[C, D, B]]{
		Fmap: func(f func(A) B) func(data.T3[C, D, A]) data.T3[C, D, B] {
			return data.MapThird[A, B, C, D](f)
		},
	}
}

// EitherFunctor builds the instance for Either over its right variant: a
// right value is mapped, a left value passes through with its payload type
// unaffected.
func EitherFunctor[L, A, B any]() Functor[
	EitherTag, A, B, data.Either[L, A], data.Either[L, B]] {

	return Functor[EitherTag, A, B, data.Either[L, A], data.Either[L, B]]{
		Fmap: func(f func(A) B) func(data.Either[L, A]) data.Either[L, B] {
			return data.MapRight[L, A, B](f)
		},
	}
}

// FuncFunctor builds the instance for the bare function arrow out of a fixed
// domain D: mapping f over g is post-composition, f after g.
func FuncFunctor[D, A, B any]() Functor[
	FuncTag, A, B, func(D) A, func(D) B] {

	return Functor[FuncTag, A, B, func(D) A, func(D) B]{
		Fmap: func(f func(A) B) func(func(D) A) func(D) B {
			return func(g func(D) A) func(D) B {
				return func(d D) B {
					return f(g(d))
				}
			}
		},
	}
}

// ReaderFunctor builds the instance for Reader: mapping post-composes the
// function wrapped by the reader, exactly as the bare function arrow does.
func ReaderFunctor[E, A, B any]() Functor[
	ReaderTag, A, B, data.Reader[E, A], data.Reader[E, B]] {

	return Functor[ReaderTag, A, B, data.Reader[E, A], data.Reader[E, B]]{
		Fmap: func(f func(A) B) func(data.Reader[E, A]) data.Reader[E, B] {
			return data.MapReader[E, A, B](f)
		},
	}
}

// WriterFunctor builds the instance for Writer values. The mapping is
// expressed through the monad's own machinery rather than by touching the
// log field directly: Kleisli-composing the identity arrow with the unit of
// the mapped value applies f to the value and concatenates the original log
// with the empty one, leaving the log unchanged.
func WriterFunctor[A, B any]() Functor[
	WriterTag, A, B, writer.Writer[A], writer.Writer[B]] {

	return Functor[WriterTag, A, B, writer.Writer[A], writer.Writer[B]]{
		Fmap: func(f func(A) B) func(writer.Writer[A]) writer.Writer[B] {
			return writer.Fish(
				func(w writer.Writer[A]) writer.Writer[A] {
					return w
				},
				func(a A) writer.Writer[B] {
					return writer.Pure(f(a))
				},
			)
		},
	}
}
