// Package functor provides a uniform, law-abiding "map a function over a
// container" operation for many container shapes: optional values, slices,
// tuples, sum types, constant boxes, function arrows, readers and writer
// (logging) values.
//
// Go has no higher-kinded type parameters, so "generic over the container
// shape" cannot be said directly. Instead each shape's functor instance is an
// ordinary generic record holding a single mapping transformer, produced by a
// factory function that hard-codes the association between a phantom
// discriminator tag and the concrete container types. Call sites pass the
// instance value they need explicitly, in dictionary-passing style.
package functor

// Functor is the mapping abstraction. Fmap lifts a pure function A -> B into
// one that operates on the container: FA is the concrete "container of A"
// type and FB the matching "container of B".
//
// Tag is a phantom discriminator. It carries no runtime value; its sole
// purpose is to let the type system tell apart two instances that otherwise
// share element and container types. The factory functions in this package
// are the intended producers and each hard-codes a consistent Tag/FA/FB
// association. Nothing enforces that consistency generically: constructing a
// Functor by hand with mismatched parameters is rejected at the use site by
// the compiler, never at run time.
type Functor[Tag, A, B, FA, FB any] struct {
	Fmap func(func(A) B) func(FA) FB
}

// Constant builds the function that ignores its argument and always returns
// the supplied value. The element type A must be given explicitly since it
// appears only in argument position.
//
// Constant : B -> (A -> B).
func Constant[A, B any](b B) func(A) B {
	return func(A) B {
		return b
	}
}

// Replace derives the shape-preserving substitution operation from any
// functor instance: every element slot of the container is overwritten with
// the supplied constant, while length, presence and variant tags stay exactly
// as they were. It is Fmap of a constant function.
//
// Replace : Functor[Tag, A, B, FA, FB] -> (B, FA) -> FB.
func Replace[Tag, A, B, FA, FB any](
	m Functor[Tag, A, B, FA, FB],
) func(B, FA) FB {

	return func(b B, fa FA) FB {
		return m.Fmap(Constant[A](b))(fa)
	}
}
