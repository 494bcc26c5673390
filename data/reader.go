package data

// Reader wraps a function from some environment type E to a value of type A.
// It is the nominal cousin of the bare function arrow: the wrapper exists so
// a reader value can be passed around and mapped like any other container.
type Reader[E, A any] struct {
	run func(E) A
}

// NewReader wraps a function in a Reader.
//
// NewReader : (E -> A) -> Reader[E, A].
func NewReader[E, A any](run func(E) A) Reader[E, A] {
	return Reader[E, A]{run: run}
}

// Run applies the wrapped function to an environment.
func (r Reader[E, A]) Run(e E) A {
	return r.run(e)
}

// MapReader transforms a pure function A -> B into one that post-composes
// with the function wrapped by a Reader.
//
// MapReader : (A -> B) -> Reader[E, A] -> Reader[E, B].
func MapReader[E, A, B any](f func(A) B) func(Reader[E, A]) Reader[E, B] {
	return func(r Reader[E, A]) Reader[E, B] {
		return NewReader(func(e E) B {
			return f(r.run(e))
		})
	}
}

// AskReader is the reader that returns its environment unchanged.
//
// AskReader : Reader[E, E].
func AskReader[E any]() Reader[E, E] {
	return NewReader(func(e E) E { return e })
}
