package writer

import (
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestPureHasEmptyLog(t *testing.T) {
	w := Pure(42)

	require.Equal(t, 42, w.Value())
	require.Equal(t, "", w.Log())
}

func TestTell(t *testing.T) {
	require.Equal(t, "note", Tell("note").Log())
}

func TestFishConcatenatesLogsInOrder(t *testing.T) {
	m1 := func(a int) Writer[int] {
		return New(a+1, "incremented;")
	}
	m2 := func(b int) Writer[string] {
		return New(strconv.Itoa(b), "rendered;")
	}

	w := Fish(m1, m2)(1)

	require.Equal(t, "2", w.Value())
	require.Equal(t, "incremented;rendered;", w.Log())
}

func TestBind(t *testing.T) {
	w := Bind(New(3, "seed;"), func(a int) Writer[int] {
		return New(a*a, "squared;")
	})

	require.Equal(t, 9, w.Value())
	require.Equal(t, "seed;squared;", w.Log())
}

// TestPropFishNeitherDuplicatesNorReordersLogs checks that composing through
// the monad's machinery is byte-for-byte faithful to the source logs: each
// log appears exactly once, in call order, and Pure contributes nothing.
func TestPropFishNeitherDuplicatesNorReordersLogs(t *testing.T) {
	f := func(a int, log1, log2 string) bool {
		m1 := func(n int) Writer[int] { return New(n, log1) }
		m2 := func(n int) Writer[int] { return New(n, log2) }

		chained := Fish(m1, m2)(a)
		lifted := Fish(m1, Pure[int])(a)

		return chained.Log() == log1+log2 && lifted.Log() == log1
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestPropMonadLeftIdentity(t *testing.T) {
	f := func(a int, log string) bool {
		g := func(n int) Writer[int] { return New(n*2, log) }

		return Fish(Pure[int], g)(a) == g(a)
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestPropMonadRightIdentity(t *testing.T) {
	f := func(a int, log string) bool {
		g := func(n int) Writer[int] { return New(n-1, log) }

		return Fish(g, Pure[int])(a) == g(a)
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestPropMonadAssociativity(t *testing.T) {
	f := func(a int, log1, log2, log3 string) bool {
		m1 := func(n int) Writer[int] { return New(n+1, log1) }
		m2 := func(n int) Writer[int] { return New(n*3, log2) }
		m3 := func(n int) Writer[string] {
			return New(strconv.Itoa(n), log3)
		}

		left := Fish(Fish(m1, m2), m3)(a)
		right := Fish(m1, Fish(m2, m3))(a)

		return left == right
	}

	require.NoError(t, quick.Check(f, nil))
}
