package functor

// ComposedTag is the phantom discriminator of a composite instance. It pairs
// the tags of the outer and inner instances so that distinct compositions
// stay distinct at the type level.
type ComposedTag[OTag, ITag any] struct{}

// Compose merges two functor instances into one over the nested container
// shape. The outer instance must map over containers whose elements are
// themselves the inner instance's containers: outer's element types GA and GB
// are inner's container types. The composite's mapping transformer is plain
// function composition of the two Fmaps, so it satisfies the functor laws
// whenever both inputs do.
//
// Compose : (Functor[OTag, GA, GB, FGA, FGB], Functor[ITag, A, B, GA, GB]) ->
// Functor[ComposedTag[OTag, ITag], A, B, FGA, FGB].
func Compose[OTag, ITag, A, B, GA, GB, FGA, FGB any](
	outer Functor[OTag, GA, GB, FGA, FGB],
	inner Functor[ITag, A, B, GA, GB],
) Functor[ComposedTag[OTag, ITag], A, B, FGA, FGB] {

	return Functor[ComposedTag[OTag, ITag], A, B, FGA, FGB]{
		Fmap: func(f func(A) B) func(FGA) FGB {
			return outer.Fmap(inner.Fmap(f))
		},
	}
}
