package functor

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fnlab/functor/data"
	"github.com/fnlab/functor/writer"
)

func TestIdentityFunctor(t *testing.T) {
	fmap := IdentityFunctor[int, string]().Fmap(strconv.Itoa)

	require.Equal(t, data.NewIdentity("7"), fmap(data.NewIdentity(7)))
}

func TestOptionFunctor(t *testing.T) {
	double := func(n int) int { return n * 2 }
	fmap := OptionFunctor[int, int]().Fmap(double)

	require.Equal(t, data.Some(4), fmap(data.Some(2)))
	require.Equal(t, data.None[int](), fmap(data.None[int]()))
}

func TestSliceFunctor(t *testing.T) {
	increment := func(n int) int { return n + 1 }
	fmap := SliceFunctor[int, int]().Fmap(increment)

	require.Equal(t, []int{2, 3, 4}, fmap([]int{1, 2, 3}))
	require.Empty(t, fmap(nil))
}

func TestConstFunctorNeverInvokesFunction(t *testing.T) {
	calls := 0
	count := func(n int) string {
		calls++
		return strconv.Itoa(n)
	}

	fmap := ConstFunctor[string, int, string]().Fmap(count)
	out := fmap(data.NewConst[string, int]("payload"))

	require.Equal(t, "payload", out.Payload())
	require.Zero(t, calls)
}

func TestT2Functor(t *testing.T) {
	fmap := T2Functor[string, int, int]().Fmap(
		func(n int) int { return n * n },
	)

	require.Equal(t, data.NewT2("fixed", 9), fmap(data.NewT2("fixed", 3)))
}

func TestPairFunctor(t *testing.T) {
	negate := func(b bool) bool { return !b }
	fmap := PairFunctor[int, bool, bool]().Fmap(negate)

	require.Equal(t, data.NewPair(9, true), fmap(data.NewPair(9, false)))
}

func TestT3Functor(t *testing.T) {
	fmap := T3Functor[int, bool, string, int]().Fmap(
		func(s string) int { return len(s) },
	)

	require.Equal(
		t, data.NewT3(1, true, 5), fmap(data.NewT3(1, true, "hello")),
	)
}

func TestEitherFunctor(t *testing.T) {
	negate := func(b bool) bool { return !b }
	fmap := EitherFunctor[int, bool, bool]().Fmap(negate)

	require.Equal(
		t, data.NewLeft[int, bool](27),
		fmap(data.NewLeft[int, bool](27)),
	)
	require.Equal(
		t, data.NewRight[int, bool](true),
		fmap(data.NewRight[int, bool](false)),
	)
}

func TestFuncFunctor(t *testing.T) {
	addOne := func(n int) int { return n + 1 }
	fmap := FuncFunctor[int, int, string]().Fmap(strconv.Itoa)

	require.Equal(t, "3", fmap(addOne)(2))
}

func TestReaderFunctor(t *testing.T) {
	length := data.NewReader(func(s string) int { return len(s) })
	fmap := ReaderFunctor[string, int, int]().Fmap(
		func(n int) int { return n * 2 },
	)

	require.Equal(t, 10, fmap(length).Run("hello"))
}

func TestWriterFunctorKeepsLog(t *testing.T) {
	divisibleByFour := func(n int) bool { return n%4 == 0 }
	fmap := WriterFunctor[int, bool]().Fmap(divisibleByFour)

	out := fmap(writer.New(16, "message"))

	require.Equal(t, true, out.Value())
	require.Equal(t, "message", out.Log())
}
