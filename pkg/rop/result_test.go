package rop

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success[int, string](5)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 5, r.Result())
	assert.Equal(t, "", r.Failure())

	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, failed := r.FailureValue()
	assert.False(t, failed)
}

func TestFail(t *testing.T) {
	t.Parallel()

	r := Fail[int]("boom")

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.Equal(t, 0, r.Result())

	f, ok := r.FailureValue()
	assert.True(t, ok)
	assert.Equal(t, "boom", f)

	_, ok = r.Value()
	assert.False(t, ok)
}

func TestZeroValueIsFailure(t *testing.T) {
	t.Parallel()

	var r Result[string, error]

	assert.True(t, r.IsFailure())
	assert.Nil(t, r.Failure())
}

func TestGet(t *testing.T) {
	t.Parallel()

	v, err := Success[string, int]("ok").Get()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	v, err = Fail[string](42).Get()
	require.Error(t, err)
	assert.Equal(t, "", v)

	f, ok := AsFailure[int](err)
	assert.True(t, ok)
	assert.Equal(t, 42, f)
	assert.Equal(t, "rop: failure 42", err.Error())

	_, ok = AsFailure[string](err)
	assert.False(t, ok)
}

func TestGet_UnwrapsErrorFailures(t *testing.T) {
	t.Parallel()

	_, err := Fail[int](io.EOF).Get()

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, io.EOF.Error(), err.Error())
}

func TestGet_NilErrorFailure(t *testing.T) {
	t.Parallel()

	_, err := Fail[int, error](nil).Get()
	require.Error(t, err)

	var fe *FailedError[error]
	require.True(t, errors.As(err, &fe))
	assert.Nil(t, fe.Failure)
	assert.Nil(t, errors.Unwrap(err))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	var got []string
	Success[string, int]("a").Match(
		func(s string) { got = append(got, "success:"+s) },
		func(int) { got = append(got, "failure") })
	Fail[string](1).Match(
		func(string) { got = append(got, "success") },
		func(int) { got = append(got, "failure") })
	Fail[string](1).Match(nil, nil)

	assert.Equal(t, []string{"success:a", "failure"}, got)
}

func TestFold(t *testing.T) {
	t.Parallel()

	length := func(s string) int { return len(s) }
	negate := func(f int) int { return -f }

	assert.Equal(t, 3, Fold(Success[string, int]("abc"), length, negate))
	assert.Equal(t, -7, Fold(Fail[string](7), length, negate))
}

func TestFailFrom(t *testing.T) {
	t.Parallel()

	r := FailFrom[int, string](Fail[int]("bad"))
	assert.True(t, r.IsFailure())
	assert.Equal(t, "bad", r.Failure())

	assert.Panics(t, func() {
		FailFrom[int, string](Success[int, string](1))
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "success(1)", Success[int, string](1).String())
	assert.Equal(t, "failure(x)", Fail[int]("x").String())
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var e error

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(e))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(struct{}{}))
	assert.False(t, IsNil(io.EOF))
}
