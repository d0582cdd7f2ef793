package failable_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/failable/pkg/failable"
)

func TestMap(t *testing.T) {
	t.Parallel()

	out := failable.Map(failable.Success[int, string](2), strconv.Itoa)
	assert.Equal(t, failable.Success[string, string]("2"), out)

	called := false
	failed := failable.Map(failable.Failure[int]("e"), func(v int) string {
		called = true
		return strconv.Itoa(v)
	})
	assert.False(t, called, "map must not run on a failure")
	assert.Equal(t, failable.Failure[string]("e"), failed)
}

func TestMapPanicPropagates(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "bad mapper", func() {
		failable.Map(failable.Success[int, string](1), func(int) int { panic("bad mapper") })
	})
}

func TestMapError(t *testing.T) {
	t.Parallel()

	codes := map[string]int{"NOT_FOUND": 404}
	out := failable.MapError(failable.Failure[bool]("NOT_FOUND"), func(e string) int { return codes[e] })
	assert.Equal(t, failable.Failure[bool](404), out)

	ok := failable.MapError(failable.Success[bool, string](true), func(string) int {
		t.Fatal("mapError must not run on a success")
		return 0
	})
	assert.Equal(t, failable.Success[bool, int](true), ok)
}

func TestFlatMapShortCircuits(t *testing.T) {
	t.Parallel()

	var calls []string
	f1 := func() failable.Result[int, string] {
		calls = append(calls, "f1")
		return failable.Failure[int]("f1 failed")
	}
	f2 := func(v int) failable.Result[int, string] {
		calls = append(calls, "f2")
		return failable.Success[int, string](v + 1)
	}
	f3 := func(v int) failable.Result[string, string] {
		calls = append(calls, "f3")
		return failable.Success[string, string](strconv.Itoa(v))
	}

	out := failable.FlatMap(failable.FlatMap(f1(), f2), f3)

	assert.Equal(t, failable.Failure[string]("f1 failed"), out)
	assert.Equal(t, []string{"f1"}, calls)
}

func TestFlatMapChainsSuccess(t *testing.T) {
	t.Parallel()

	half := func(v int) failable.Result[int, string] {
		if v%2 != 0 {
			return failable.Failure[int]("odd " + strconv.Itoa(v))
		}
		return failable.Success[int, string](v / 2)
	}

	assert.Equal(t, failable.Success[int, string](3),
		failable.FlatMap(failable.FlatMap(failable.Success[int, string](12), half), half))
	assert.Equal(t, failable.Failure[int]("odd 3"),
		failable.FlatMap(failable.FlatMap(failable.FlatMap(failable.Success[int, string](12), half), half), half))
}

func TestTeeAndTeeError(t *testing.T) {
	t.Parallel()

	var seen []string
	ok := failable.Success[string, string]("v")
	bad := failable.Failure[string]("e")

	assert.Equal(t, ok, failable.Tee(ok, func(v string) { seen = append(seen, "tee:"+v) }))
	assert.Equal(t, bad, failable.Tee(bad, func(v string) { seen = append(seen, "tee:"+v) }))
	assert.Equal(t, ok, failable.TeeError(ok, func(e string) { seen = append(seen, "teeError:"+e) }))
	assert.Equal(t, bad, failable.TeeError(bad, func(e string) { seen = append(seen, "teeError:"+e) }))

	assert.Equal(t, []string{"tee:v", "teeError:e"}, seen)
}

func TestRecoverAndOrElse(t *testing.T) {
	t.Parallel()

	recovered := failable.Recover(failable.Failure[int]("missing"), func(e string) int { return len(e) })
	assert.Equal(t, failable.Success[int, string](7), recovered)

	untouched := failable.Recover(failable.Success[int, string](1), func(string) int { return 0 })
	assert.Equal(t, 1, untouched.Value())

	assert.Equal(t, 9, failable.OrElse(failable.Failure[int]("x"), 9))
	assert.Equal(t, 1, failable.OrElse(failable.Success[int, string](1), 9))
}

func TestTupleInterop(t *testing.T) {
	t.Parallel()

	res := failable.FromTuple(strconv.Atoi("10"))
	require.True(t, res.IsSuccess())
	v, err := failable.ToTuple(res)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	res = failable.FromTuple(strconv.Atoi("ten"))
	require.True(t, res.IsError())
	var numErr *strconv.NumError
	assert.True(t, errors.As(res.Err(), &numErr))
	_, err = failable.ToTuple(res)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}
