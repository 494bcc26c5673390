// Package writer implements a minimal logging monad: values tagged with an
// accumulated string log, composed so that logs concatenate in call order.
package writer

// Writer wraps a value together with an accumulated log. Values are immutable
// once constructed; composition produces new Writers rather than appending in
// place.
type Writer[A any] struct {
	value A
	log   string
}

// New constructs a Writer from a value and a log.
//
// New : (A, string) -> Writer[A].
func New[A any](a A, log string) Writer[A] {
	return Writer[A]{
		value: a,
		log:   log,
	}
}

// Pure injects a bare value into the Writer context with an empty log. This
// is the monad's unit operation.
//
// Pure : A -> Writer[A].
func Pure[A any](a A) Writer[A] {
	return Writer[A]{value: a}
}

// Tell produces a value-free log entry. The unit-ish struct{} value exists
// only so Tell composes with Fish and Bind like any other Writer.
//
// Tell : string -> Writer[struct{}].
func Tell(log string) Writer[struct{}] {
	return Writer[struct{}]{log: log}
}

// Value returns the value carried by the Writer.
func (w Writer[A]) Value() A {
	return w.value
}

// Log returns the log accumulated by the Writer.
func (w Writer[A]) Log() string {
	return w.log
}

// Fish is Kleisli composition for the Writer monad: it chains two
// log-producing computations into one, concatenating their logs in call
// order.
//
// Fish : (A -> Writer[B], B -> Writer[C]) -> A -> Writer[C].
func Fish[A, B, C any](
	m1 func(A) Writer[B],
	m2 func(B) Writer[C],
) func(A) Writer[C] {

	return func(a A) Writer[C] {
		wb := m1(a)
		wc := m2(wb.value)

		return Writer[C]{
			value: wc.value,
			log:   wb.log + wc.log,
		}
	}
}

// Bind sequences a Writer with a log-producing continuation. It is Fish
// specialized to an argument that is already wrapped.
//
// Bind : (Writer[A], A -> Writer[B]) -> Writer[B].
func Bind[A, B any](w Writer[A], f func(A) Writer[B]) Writer[B] {
	wb := f(w.value)

	return Writer[B]{
		value: wb.value,
		log:   w.log + wb.log,
	}
}
